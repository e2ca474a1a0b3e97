package material

import (
	"fmt"
)

// Graph is the arena that owns every node of one material. Bindings refer to
// nodes by NodeID, so shared sub-graphs and diamonds need no ownership rules.
//
// A Graph is built single-threaded, validated, and then frozen. A frozen
// graph is never mutated again and may be evaluated from any number of
// goroutines without locking.
type Graph struct {
	nodes  []*Node
	frozen bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a node of the given variant and returns its ID. Properties with
// a default in the kind's table start bound to that default; the rest start
// unbound.
func (g *Graph) Add(name string, spec Spec) (NodeID, error) {
	if g.frozen {
		return NoNode, ErrFrozen
	}
	if spec.Def == nil {
		return NoNode, fmt.Errorf("node %q: kind %s has no property table", name, spec.Kind)
	}
	n := &Node{
		id:       NodeID(len(g.nodes)),
		name:     name,
		spec:     spec,
		bindings: make([]Binding, len(spec.Def.Properties)),
	}
	for i, p := range spec.Def.Properties {
		if p.Default != nil {
			n.bindings[i] = Literal(*p.Default)
		}
	}
	g.nodes = append(g.nodes, n)
	g.invalidate()
	return n.id, nil
}

// Set binds a property of node id. Referencing a node that does not exist is
// accepted here and reported by validation.
func (g *Graph) Set(id NodeID, property string, b Binding) error {
	if g.frozen {
		return ErrFrozen
	}
	n, ok := g.lookup(id)
	if !ok {
		return fmt.Errorf("%w: node#%d", ErrDanglingReference, id)
	}
	i, ok := n.spec.Def.Property(property)
	if !ok {
		return &ValidationError{Node: n.name, Kind: n.KindName(), Property: property, Err: ErrUnknownProperty}
	}
	n.bindings[i] = b
	g.invalidate()
	return nil
}

// Unset clears a property binding, leaving it unbound.
func (g *Graph) Unset(id NodeID, property string) error {
	return g.Set(id, property, Binding{})
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	return g.lookup(id)
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns every node in creation order. The slice must not be modified.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Freeze forbids further mutation.
func (g *Graph) Freeze() {
	g.frozen = true
}

// Frozen reports whether the graph has been frozen.
func (g *Graph) Frozen() bool {
	return g.frozen
}

func (g *Graph) lookup(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

// must is lookup for evaluation paths, where validation has already proven
// every reference.
func (g *Graph) must(id NodeID) *Node {
	n, ok := g.lookup(id)
	if !ok {
		panic(fmt.Sprintf("material: evaluation reached dangling node#%d", id))
	}
	return n
}

// invalidate drops every cached validity flag.
func (g *Graph) invalidate() {
	for _, n := range g.nodes {
		n.valid = validityUnknown
		n.output = 0
		n.height = 0
	}
}
