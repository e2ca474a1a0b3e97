package testutil

import (
	"github.com/specialistvlad/matgraph/internal/registry"
	"github.com/specialistvlad/matgraph/internal/schema"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a fixed set of BXDF kinds.
type SimpleModule struct {
	Defs []*schema.NodeDef
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, def := range m.Defs {
		r.RegisterBXDF(def)
	}
}
