package shading

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Value is the numeric quantity flowing through a material graph: a colour,
// a vector or a scalar broadcast into four float32 components.
type Value struct {
	X, Y, Z, W float32
}

// Scalar returns a Value with f in every component.
func Scalar(f float32) Value {
	return Value{X: f, Y: f, Z: f, W: f}
}

// Vec3 returns a Value with a zero fourth component.
func Vec3(x, y, z float32) Value {
	return Value{X: x, Y: y, Z: z}
}

// Vec4 returns a Value built from four components.
func Vec4(x, y, z, w float32) Value {
	return Value{X: x, Y: y, Z: z, W: w}
}

// FromSlice builds a Value from up to four components. Missing components are zero.
func FromSlice(c []float32) (Value, error) {
	if len(c) == 0 || len(c) > 4 {
		return Value{}, fmt.Errorf("value needs 1 to 4 components, got %d", len(c))
	}
	var v Value
	for i, f := range c {
		v = v.With(i, f)
	}
	return v, nil
}

// Black is the zero colour.
var Black = Value{}

// White is the identity weight used to start a BSDF traversal.
var White = Scalar(1)

// Add returns v + o component-wise.
func (v Value) Add(o Value) Value {
	return Value{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o component-wise.
func (v Value) Sub(o Value) Value {
	return Value{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns v * o component-wise.
func (v Value) Mul(o Value) Value {
	return Value{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Scale multiplies every component by f.
func (v Value) Scale(f float32) Value {
	return Value{v.X * f, v.Y * f, v.Z * f, v.W * f}
}

// IsBlack reports whether the colour part (first three components) is zero.
// Weights are colours, so the fourth component never carries energy.
func (v Value) IsBlack() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Component returns the i-th component, 0 through 3.
func (v Value) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("shading: component index %d out of range", i))
}

// With returns a copy of v with the i-th component replaced by f.
func (v Value) With(i int, f float32) Value {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	default:
		panic(fmt.Sprintf("shading: component index %d out of range", i))
	}
	return v
}

// Map applies fn to the first three components and leaves W untouched.
func (v Value) Map(fn func(float32) float32) Value {
	return Value{fn(v.X), fn(v.Y), fn(v.Z), v.W}
}

// ApproxEqual reports whether every component of v and o differ by at most eps.
func (v Value) ApproxEqual(o Value, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps &&
		math32.Abs(v.Y-o.Y) <= eps &&
		math32.Abs(v.Z-o.Z) <= eps &&
		math32.Abs(v.W-o.W) <= eps
}

// Min returns the component-wise minimum.
func (v Value) Min(o Value) Value {
	return Value{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y), math32.Min(v.Z, o.Z), math32.Min(v.W, o.W)}
}

// Max returns the component-wise maximum.
func (v Value) Max(o Value) Value {
	return Value{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y), math32.Max(v.Z, o.Z), math32.Max(v.W, o.W)}
}

// String renders the value as "(x, y, z, w)".
func (v Value) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
