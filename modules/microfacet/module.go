// Package microfacet registers the rough conductor reflection BXDF.
package microfacet

import (
	"github.com/specialistvlad/matgraph/internal/registry"
	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// Kind is the node kind authors use in `node "microfacet_reflection" "<name>"` blocks.
const Kind = "microfacet_reflection"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Definition returns the property table of the microfacet_reflection kind.
func Definition() *schema.NodeDef {
	return &schema.NodeDef{
		Kind:        Kind,
		Description: "Glossy reflection from a rough conductor.",
		Properties: []schema.PropertyDef{
			{Name: "base_color", Socket: schema.SocketColor, Default: schema.Default(shading.White)},
			{Name: "roughness_u", Socket: schema.SocketFloat, Default: schema.Default(shading.Scalar(0.2))},
			{Name: "roughness_v", Socket: schema.SocketFloat, Default: schema.Default(shading.Scalar(0.2))},
			// Complex index of refraction of gold, a common starting point.
			{Name: "eta", Socket: schema.SocketVector, Default: schema.Default(shading.Vec3(0.37, 0.37, 0.37))},
			{Name: "absorption", Socket: schema.SocketVector, Default: schema.Default(shading.Vec3(2.82, 2.82, 2.82))},
			{Name: "normal", Socket: schema.SocketNormal, Default: schema.Default(shading.Vec3(0, 1, 0))},
		},
	}
}

// Register registers the kind with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBXDF(Definition())
}
