// Package dielectric registers the rough glass BXDF, which both reflects and
// transmits.
package dielectric

import (
	"github.com/specialistvlad/matgraph/internal/registry"
	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// Kind is the node kind authors use in `node "dielectric" "<name>"` blocks.
const Kind = "dielectric"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Definition returns the property table of the dielectric kind.
func Definition() *schema.NodeDef {
	return &schema.NodeDef{
		Kind:        Kind,
		Description: "Reflection and refraction at a dielectric boundary.",
		Properties: []schema.PropertyDef{
			{Name: "reflectance", Socket: schema.SocketColor, Default: schema.Default(shading.White)},
			{Name: "transmittance", Socket: schema.SocketColor, Default: schema.Default(shading.White)},
			{Name: "roughness_u", Socket: schema.SocketFloat, Default: schema.Default(shading.Scalar(0))},
			{Name: "roughness_v", Socket: schema.SocketFloat, Default: schema.Default(shading.Scalar(0))},
			{Name: "interior_ior", Socket: schema.SocketFloat, Default: schema.Default(shading.Scalar(1.33))},
			{Name: "exterior_ior", Socket: schema.SocketFloat, Default: schema.Default(shading.Scalar(1))},
			{Name: "normal", Socket: schema.SocketNormal, Default: schema.Default(shading.Vec3(0, 1, 0))},
		},
	}
}

// Register registers the kind with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBXDF(Definition())
}
