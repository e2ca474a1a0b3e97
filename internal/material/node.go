package material

import (
	"github.com/specialistvlad/matgraph/internal/schema"
)

// NodeID is a node's stable index in its graph's arena. Identity is the index,
// not the name.
type NodeID int

// NoNode is the zero reference.
const NoNode NodeID = -1

type validity uint8

const (
	validityUnknown validity = iota
	validityValid
	validityInvalid
)

// Node is one vertex of a material graph. Its bindings are aligned with the
// property table of its kind.
type Node struct {
	id       NodeID
	name     string
	spec     Spec
	bindings []Binding

	// Set by validation and cleared by any mutation of the owning graph.
	valid validity
	// output is the effective output type: routers whose sources carry BXDFs
	// produce a BXDF themselves. Only meaningful once valid is validityValid.
	output NodeType
	// height is the longest reference chain below the node. Only meaningful
	// once valid is validityValid.
	height int
}

// ID returns the node's arena index.
func (n *Node) ID() NodeID { return n.id }

// Name returns the author supplied name used in diagnostics.
func (n *Node) Name() string { return n.name }

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.spec.Kind }

// KindName returns the material file name of the node's kind, e.g. "lerp" or
// a registered BXDF kind such as "lambert".
func (n *Node) KindName() string { return n.spec.Def.Kind }

// Def returns the property table of the node's kind.
func (n *Node) Def() *schema.NodeDef { return n.spec.Def }

// Type returns the static type tag of the node's variant.
func (n *Node) Type() NodeType { return n.spec.Kind.Type() }

// OutputType returns the node's effective output type as computed by the last
// successful validation.
func (n *Node) OutputType() NodeType { return n.output }

// Valid reports the cached validity flag. It is false until the node has been
// validated successfully.
func (n *Node) Valid() bool { return n.valid == validityValid }

// Binding returns the binding of a property by name.
func (n *Node) Binding(name string) (Binding, bool) {
	i, ok := n.spec.Def.Property(name)
	if !ok {
		return Binding{}, false
	}
	return n.bindings[i], true
}

// Bindings returns the bindings in property table order. The slice must not be
// modified.
func (n *Node) Bindings() []Binding { return n.bindings }

func (n *Node) slot(i int) Binding { return n.bindings[i] }
