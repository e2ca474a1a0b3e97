package material

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// NodeType is the coarse classification used by the type checker. BXDF is a
// flag bit so that it can be tested independently of the numeric tags.
type NodeType uint8

const (
	TypeConstant NodeType = 1 << iota
	TypeOperator
	TypeBXDF
)

// IsBXDF reports whether the BXDF flag is set.
func (t NodeType) IsBXDF() bool {
	return t&TypeBXDF != 0
}

func (t NodeType) String() string {
	switch t {
	case TypeConstant:
		return "constant"
	case TypeOperator:
		return "operator"
	case TypeBXDF:
		return "bxdf"
	case TypeOperator | TypeBXDF:
		return "operator|bxdf"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(t))
	}
}

// Kind enumerates the closed set of node variants.
type Kind int

const (
	KindConstant Kind = iota
	KindInput
	KindAdd
	KindOneMinus
	KindLerp
	KindBlend
	KindMultiply
	KindGammaToLinear
	KindLinearToGamma
	KindNormalDecode
	KindBXDF
)

var kindNames = [...]string{
	KindConstant:      "constant",
	KindInput:         "input",
	KindAdd:           "add",
	KindOneMinus:      "one_minus",
	KindLerp:          "lerp",
	KindBlend:         "blend",
	KindMultiply:      "multiply",
	KindGammaToLinear: "gamma_to_linear",
	KindLinearToGamma: "linear_to_gamma",
	KindNormalDecode:  "normal_decode",
	KindBXDF:          "bxdf",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type returns the static type tag of the variant.
func (k Kind) Type() NodeType {
	switch k {
	case KindConstant, KindInput:
		return TypeConstant
	case KindBXDF:
		return TypeBXDF
	default:
		return TypeOperator
	}
}

// IsRouter reports whether the variant forwards weight to BXDF children.
func (k Kind) IsRouter() bool {
	return k == KindLerp || k == KindBlend || k == KindMultiply
}

// Attribute selects which surface attribute an input node reads.
type Attribute int

const (
	AttrUVW Attribute = iota
	AttrPosition
	AttrNormal
	AttrGNormal
	AttrIncident
)

func (a Attribute) read(sc *shading.Context) shading.Value {
	switch a {
	case AttrUVW:
		return sc.UVW
	case AttrPosition:
		return sc.Position
	case AttrNormal:
		return sc.Normal
	case AttrGNormal:
		return sc.GNormal
	case AttrIncident:
		return sc.I
	}
	panic(fmt.Sprintf("material: unknown attribute %d", int(a)))
}

// Spec identifies a concrete variant together with its property table.
type Spec struct {
	Kind Kind
	Attr Attribute
	Def  *schema.NodeDef
}

// BXDF wraps a registered BXDF definition into a Spec.
func BXDF(def *schema.NodeDef) Spec {
	return Spec{Kind: KindBXDF, Def: def}
}

// Property slot indices shared by the operator tables below.
const (
	slotSrc0    = 0
	slotSrc1    = 1
	slotFactor  = 2
	slotFactor2 = 3
)

func prop(name string, s schema.Socket, desc string) schema.PropertyDef {
	return schema.PropertyDef{Name: name, Socket: s, Description: desc}
}

// floatDefault is the initial value of an unconnected float socket in the
// authoring tool.
var floatDefault = shading.Scalar(0)

func propDefault(name string, s schema.Socket, desc string, v shading.Value) schema.PropertyDef {
	return schema.PropertyDef{Name: name, Socket: s, Description: desc, Default: schema.Default(v)}
}

func inputSpec(name string, attr Attribute, desc string) Spec {
	return Spec{Kind: KindInput, Attr: attr, Def: &schema.NodeDef{Kind: name, Description: desc}}
}

// builtins is the property table of every non-BXDF variant, keyed by the kind
// name used in material files. Slot order matters: the evaluator addresses
// bindings by the slot constants above.
var builtins = map[string]Spec{
	"constant": {Kind: KindConstant, Def: &schema.NodeDef{
		Kind:        "constant",
		Description: "A literal colour, vector or scalar.",
		Properties:  []schema.PropertyDef{prop("color", schema.SocketColor, "The constant value.")},
	}},
	"add": {Kind: KindAdd, Def: &schema.NodeDef{
		Kind:        "add",
		Description: "Component-wise sum of two values.",
		Properties: []schema.PropertyDef{
			prop("color1", schema.SocketColor, "First operand."),
			prop("color2", schema.SocketColor, "Second operand."),
		},
	}},
	"one_minus": {Kind: KindOneMinus, Def: &schema.NodeDef{
		Kind:        "one_minus",
		Description: "One minus the input, component-wise.",
		Properties:  []schema.PropertyDef{prop("color", schema.SocketColor, "The value to invert.")},
	}},
	"lerp": {Kind: KindLerp, Def: &schema.NodeDef{
		Kind:        "lerp",
		Description: "Linear interpolation between two values or two BXDFs.",
		Properties: []schema.PropertyDef{
			prop("color1", schema.SocketBXDF, "Selected when factor is 0."),
			prop("color2", schema.SocketBXDF, "Selected when factor is 1."),
			propDefault("factor", schema.SocketFloat, "Interpolation factor.", floatDefault),
		},
	}},
	"blend": {Kind: KindBlend, Def: &schema.NodeDef{
		Kind:        "blend",
		Description: "Independently weighted sum of two values or two BXDFs.",
		Properties: []schema.PropertyDef{
			prop("color1", schema.SocketBXDF, "First source."),
			prop("color2", schema.SocketBXDF, "Second source."),
			propDefault("factor1", schema.SocketFloat, "Weight of the first source.", floatDefault),
			propDefault("factor2", schema.SocketFloat, "Weight of the second source.", floatDefault),
		},
	}},
	"multiply": {Kind: KindMultiply, Def: &schema.NodeDef{
		Kind:        "multiply",
		Description: "Component-wise product, or a BXDF scaled by a scalar.",
		Properties: []schema.PropertyDef{
			prop("color1", schema.SocketBXDF, "First operand."),
			prop("color2", schema.SocketBXDF, "Second operand."),
		},
	}},
	"gamma_to_linear": {Kind: KindGammaToLinear, Def: &schema.NodeDef{
		Kind:        "gamma_to_linear",
		Description: "sRGB encoded colour to linear.",
		Properties:  []schema.PropertyDef{prop("color", schema.SocketColor, "Gamma encoded colour.")},
	}},
	"linear_to_gamma": {Kind: KindLinearToGamma, Def: &schema.NodeDef{
		Kind:        "linear_to_gamma",
		Description: "Linear colour to sRGB encoded.",
		Properties:  []schema.PropertyDef{prop("color", schema.SocketColor, "Linear colour.")},
	}},
	"normal_decode": {Kind: KindNormalDecode, Def: &schema.NodeDef{
		Kind:        "normal_decode",
		Description: "Decodes a [0,1] tangent space normal map sample.",
		Properties:  []schema.PropertyDef{prop("color", schema.SocketNormal, "Encoded normal.")},
	}},
	"uvw":      inputSpec("uvw", AttrUVW, "Surface UV coordinates."),
	"position": inputSpec("position", AttrPosition, "World space position."),
	"normal":   inputSpec("normal", AttrNormal, "World space shading normal."),
	"gnormal":  inputSpec("gnormal", AttrGNormal, "World space geometric normal."),
	"incident": inputSpec("incident", AttrIncident, "World space incoming direction."),
}

// Builtin returns the Spec of a built-in kind by its material file name.
func Builtin(name string) (Spec, bool) {
	s, ok := builtins[name]
	return s, ok
}

// BuiltinNames lists the built-in kind names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
