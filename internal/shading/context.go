// Package shading holds the numeric Value type of the material graph and the
// read-only per-point surface attributes that evaluation reads.
package shading

// Context is the state of one shading point. It is produced by the caller
// (ray intersection is not this package's concern) and never mutated by
// material evaluation.
type Context struct {
	// UVW is the surface parameterisation; W is zero for 2D mappings.
	UVW Value
	// Position is the world space hit position.
	Position Value
	// Normal is the world space shading normal.
	Normal Value
	// GNormal is the world space geometric normal.
	GNormal Value
	// I is the world space incoming direction.
	I Value
}

// AtUV returns a context that only carries a UV coordinate, with an up-facing
// normal. It is what preview sampling uses when no geometry is available.
func AtUV(u, v float32) *Context {
	up := Vec3(0, 1, 0)
	return &Context{
		UVW:     Vec3(u, v, 0),
		Normal:  up,
		GNormal: up,
		I:       Vec3(0, -1, 0),
	}
}
