package material

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/matgraph/internal/schema"
)

// MaxDepth bounds the length of any reference chain below a root. Deeper
// graphs are rejected as structurally invalid.
const MaxDepth = 256

// Validate checks the sub-graph reachable from root: every property must be
// bound, every reference must resolve, there must be no cycle, and no numeric
// slot may read a BXDF-typed node. Any problem anywhere invalidates the whole
// material. The result is cached on each visited node until the graph is
// mutated.
//
// A nil error means the root is valid. Otherwise the error is a
// ValidationErrors listing every problem in traversal order.
func (g *Graph) Validate(root NodeID) error {
	n, ok := g.lookup(root)
	if !ok {
		return ValidationErrors{{
			Node:   fmt.Sprintf("node#%d", root),
			Kind:   "?",
			Detail: "output",
			Err:    ErrDanglingReference,
		}}
	}
	if n.valid == validityValid {
		return nil
	}

	v := &validator{
		g:      g,
		onPath: make([]bool, len(g.nodes)),
		done:   make([]bool, len(g.nodes)),
	}
	if v.visit(n, 0) {
		return nil
	}
	if len(v.errs) == 0 {
		// Unreachable: a node is only marked invalid together with an error.
		return ValidationErrors{{Node: n.name, Kind: n.KindName(), Err: fmt.Errorf("invalid")}}
	}
	return v.errs
}

// validator is the state of one depth-first walk. onPath and path hold the
// nodes currently being processed; done is the per-walk memo that stops
// diamond-shaped graphs from being revisited.
type validator struct {
	g      *Graph
	onPath []bool
	done   []bool
	path   []NodeID
	errs   ValidationErrors
	abort  bool
}

func (v *validator) report(n *Node, property string, err error, detail string) {
	v.errs = append(v.errs, &ValidationError{
		Node:     n.name,
		Kind:     n.KindName(),
		Property: property,
		Detail:   detail,
		Err:      err,
	})
}

func (v *validator) visit(n *Node, depth int) bool {
	if n.valid == validityValid {
		return true
	}
	if v.done[n.id] {
		return false
	}

	v.onPath[n.id] = true
	v.path = append(v.path, n.id)

	ok := true
	height := 0
	for i, p := range n.spec.Def.Properties {
		if v.abort {
			ok = false
			break
		}
		b := n.bindings[i]
		if !b.IsBound() {
			v.report(n, p.Name, ErrMissingBinding, "")
			ok = false
			continue
		}
		ref, _, isRef := b.Reference()
		if !isRef {
			continue
		}
		child, exists := v.g.lookup(ref)
		if !exists {
			v.report(n, p.Name, ErrDanglingReference, fmt.Sprintf("node#%d", ref))
			ok = false
			continue
		}
		if v.onPath[child.id] {
			v.report(n, p.Name, ErrCycle, v.describeCycle(child.id))
			ok = false
			continue
		}
		// A child validated earlier is not walked again, so its cached
		// height stands in for the chain below it.
		reach := depth + 1
		if child.valid == validityValid {
			reach += child.height
		}
		if reach > MaxDepth {
			v.report(n, p.Name, ErrDepthExceeded, fmt.Sprintf("limit is %d", MaxDepth))
			v.abort = true
			ok = false
			continue
		}
		if !v.visit(child, depth+1) {
			ok = false
			continue
		}
		height = max(height, child.height+1)
	}

	if ok {
		ok = v.checkTypes(n)
	}

	v.onPath[n.id] = false
	v.path = v.path[:len(v.path)-1]
	v.done[n.id] = true
	if ok {
		n.valid = validityValid
		n.height = height
	} else {
		n.valid = validityInvalid
	}
	return ok
}

// describeCycle renders the path from the revisited node to the top of the
// stack, e.g. "a -> b -> a".
func (v *validator) describeCycle(back NodeID) string {
	start := 0
	for i, id := range v.path {
		if id == back {
			start = i
			break
		}
	}
	names := make([]string, 0, len(v.path)-start+1)
	for _, id := range v.path[start:] {
		names = append(names, v.g.nodes[id].name)
	}
	names = append(names, v.g.nodes[back].name)
	return strings.Join(names, " -> ")
}

// checkTypes enforces the type-consistency rules on a node whose children are
// all valid, and records the node's effective output type. Children are
// already validated, so ReferencedType reports their effective output.
func (v *validator) checkTypes(n *Node) bool {
	ok := true
	props := n.spec.Def.Properties

	for i, p := range props {
		if p.Socket == schema.SocketBXDF {
			continue
		}
		b := n.bindings[i]
		if b.IsReference() && b.ReferencedType(v.g).IsBXDF() {
			ref, _, _ := b.Reference()
			child := v.g.nodes[ref]
			v.report(n, p.Name, ErrBXDFOperand, fmt.Sprintf("references %q (%s)", child.name, child.KindName()))
			ok = false
		}
	}

	output := n.Type()
	if n.Kind().IsRouter() {
		s0, s1 := n.slot(slotSrc0), n.slot(slotSrc1)
		t0, node0 := s0.ReferencedType(v.g), s0.IsReference()
		t1, node1 := s1.ReferencedType(v.g), s1.IsReference()
		switch {
		case n.Kind() == KindMultiply && t0.IsBXDF() && t1.IsBXDF():
			v.report(n, "", ErrMultiplyBothBXDF, "")
			ok = false
		case n.Kind() != KindMultiply && t0.IsBXDF() && node1 && !t1.IsBXDF():
			v.report(n, props[slotSrc1].Name, ErrMixedSources, "")
			ok = false
		case n.Kind() != KindMultiply && t1.IsBXDF() && node0 && !t0.IsBXDF():
			v.report(n, props[slotSrc0].Name, ErrMixedSources, "")
			ok = false
		}
		if t0.IsBXDF() || t1.IsBXDF() {
			output |= TypeBXDF
		}
	}

	if ok {
		n.output = output
	}
	return ok
}
