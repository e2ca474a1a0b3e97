// Package lambert registers the ideal diffuse BXDF.
package lambert

import (
	"github.com/specialistvlad/matgraph/internal/registry"
	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// Kind is the node kind authors use in `node "lambert" "<name>"` blocks.
const Kind = "lambert"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Definition returns the property table of the lambert kind.
func Definition() *schema.NodeDef {
	return &schema.NodeDef{
		Kind:        Kind,
		Description: "Ideal diffuse reflection.",
		Properties: []schema.PropertyDef{
			{Name: "base_color", Socket: schema.SocketColor, Description: "Diffuse albedo.", Default: schema.Default(shading.White)},
			{Name: "normal", Socket: schema.SocketNormal, Description: "Shading normal override.", Default: schema.Default(shading.Vec3(0, 1, 0))},
		},
	}
}

// Register registers the kind with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBXDF(Definition())
}
