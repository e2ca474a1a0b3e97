package material

import (
	"fmt"

	"github.com/specialistvlad/matgraph/internal/shading"
)

// Channel selects which output of a referenced node a binding reads.
// ChannelAll reads the whole value; the others broadcast one component.
type Channel int

const (
	ChannelAll Channel = iota
	ChannelX
	ChannelY
	ChannelZ
	ChannelW
)

// ParseChannel accepts the colour and vector spellings of a component name.
func ParseChannel(name string) (Channel, error) {
	switch name {
	case "", "all", "rgba", "xyzw":
		return ChannelAll, nil
	case "r", "x":
		return ChannelX, nil
	case "g", "y":
		return ChannelY, nil
	case "b", "z":
		return ChannelZ, nil
	case "a", "w":
		return ChannelW, nil
	}
	return ChannelAll, fmt.Errorf("unknown output channel %q", name)
}

func (c Channel) String() string {
	switch c {
	case ChannelAll:
		return "all"
	case ChannelX:
		return "x"
	case ChannelY:
		return "y"
	case ChannelZ:
		return "z"
	case ChannelW:
		return "w"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

func (c Channel) apply(v shading.Value) shading.Value {
	if c == ChannelAll {
		return v
	}
	return shading.Scalar(v.Component(int(c) - 1))
}

type bindingState uint8

const (
	unbound bindingState = iota
	boundLiteral
	boundReference
)

// Binding is a typed input slot on a node. It holds either a literal value or
// a non-owning reference to another node of the same graph.
type Binding struct {
	state   bindingState
	literal shading.Value
	ref     NodeID
	channel Channel
}

// Literal returns a binding holding v.
func Literal(v shading.Value) Binding {
	return Binding{state: boundLiteral, literal: v}
}

// Ref returns a binding that reads the whole output of node id.
func Ref(id NodeID) Binding {
	return RefChannel(id, ChannelAll)
}

// RefChannel returns a binding that reads one channel of node id.
func RefChannel(id NodeID, ch Channel) Binding {
	return Binding{state: boundReference, ref: id, channel: ch}
}

// IsBound reports whether the binding holds a literal or a reference.
func (b Binding) IsBound() bool {
	return b.state != unbound
}

// IsReference reports whether the binding points at another node.
func (b Binding) IsReference() bool {
	return b.state == boundReference
}

// Reference returns the referenced node and channel. ok is false for literal
// and unbound bindings.
func (b Binding) Reference() (id NodeID, ch Channel, ok bool) {
	if b.state != boundReference {
		return NoNode, ChannelAll, false
	}
	return b.ref, b.channel, true
}

// Resolve returns the binding's value at a shading point. A literal is
// returned as is; a reference delegates to the referenced node's value
// evaluation.
func (b Binding) Resolve(g *Graph, sc *shading.Context) shading.Value {
	switch b.state {
	case boundLiteral:
		return b.literal
	case boundReference:
		return b.channel.apply(g.value(b.ref, sc))
	}
	panic("material: resolving an unbound property")
}

// ReferencedType returns TypeConstant for literal and unbound bindings and
// the referenced node's type otherwise. A validated node reports its
// effective output type, so a router carrying BXDFs is BXDF-typed; an
// unvalidated node reports its static tag. It never evaluates anything.
// Dangling references report TypeConstant; validation rejects them separately.
func (b Binding) ReferencedType(g *Graph) NodeType {
	if b.state != boundReference {
		return TypeConstant
	}
	n, ok := g.lookup(b.ref)
	if !ok {
		return TypeConstant
	}
	if n.valid == validityValid {
		return n.output
	}
	return n.Type()
}

func (b Binding) String() string {
	switch b.state {
	case boundLiteral:
		return b.literal.String()
	case boundReference:
		if b.channel == ChannelAll {
			return fmt.Sprintf("node#%d", b.ref)
		}
		return fmt.Sprintf("node#%d.%s", b.ref, b.channel)
	}
	return "<unbound>"
}
