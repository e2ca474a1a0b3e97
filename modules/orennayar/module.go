// Package orennayar registers the Oren-Nayar rough diffuse BXDF.
package orennayar

import (
	"github.com/specialistvlad/matgraph/internal/registry"
	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// Kind is the node kind authors use in `node "oren_nayar" "<name>"` blocks.
const Kind = "oren_nayar"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Definition returns the property table of the oren_nayar kind.
func Definition() *schema.NodeDef {
	return &schema.NodeDef{
		Kind:        Kind,
		Description: "Diffuse reflection from a rough surface.",
		Properties: []schema.PropertyDef{
			{Name: "base_color", Socket: schema.SocketColor, Default: schema.Default(shading.White)},
			{Name: "roughness", Socket: schema.SocketFloat, Description: "Facet slope deviation in [0, 1].", Default: schema.Default(shading.Scalar(0))},
			{Name: "normal", Socket: schema.SocketNormal, Default: schema.Default(shading.Vec3(0, 1, 0))},
		},
	}
}

// Register registers the kind with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBXDF(Definition())
}
