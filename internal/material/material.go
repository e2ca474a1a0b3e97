package material

import (
	"fmt"

	"github.com/specialistvlad/matgraph/internal/bsdf"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// Shader is the evaluation contract of a material. Node graphs implement it
// through Material; a compiled shading-language program handed in by an
// external runtime must honour the same contract.
type Shader interface {
	// Output reports whether the shader yields a BSDF or a plain value.
	Output() NodeType
	// Value returns the numeric result at a shading point.
	Value(sc *shading.Context) shading.Value
	// Scatter adds the shader's weighted lobes to acc.
	Scatter(acc *bsdf.Accumulator, weight shading.Value)
}

// Material is a validated, frozen graph together with its output node.
type Material struct {
	name  string
	graph *Graph
	root  NodeID
}

var _ Shader = (*Material)(nil)

// New validates the graph below root and freezes it. The returned material is
// safe for concurrent evaluation.
func New(name string, g *Graph, root NodeID) (*Material, error) {
	if root == NoNode {
		return nil, fmt.Errorf("material %q: %w", name, ErrNoRoot)
	}
	if err := g.Validate(root); err != nil {
		return nil, fmt.Errorf("material %q: %w", name, err)
	}
	g.Freeze()
	return &Material{name: name, graph: g, root: root}, nil
}

// Name returns the material's name.
func (m *Material) Name() string { return m.name }

// Graph returns the frozen graph backing the material.
func (m *Material) Graph() *Graph { return m.graph }

// Root returns the output node.
func (m *Material) Root() *Node { return m.graph.must(m.root) }

// Output returns the effective output type of the root node.
func (m *Material) Output() NodeType { return m.Root().output }

// IsBSDF reports whether the material yields a BSDF.
func (m *Material) IsBSDF() bool { return m.Output().IsBXDF() }

// Value evaluates the material's numeric output. Calling it on a BSDF
// material is a programming error and panics.
func (m *Material) Value(sc *shading.Context) shading.Value {
	if m.IsBSDF() {
		panic(fmt.Sprintf("material %q: value requested from a BSDF material", m.name))
	}
	return m.graph.value(m.root, sc)
}

// Scatter fills acc with the material's lobes scaled by weight. Calling it on
// a value material is a programming error and panics.
func (m *Material) Scatter(acc *bsdf.Accumulator, weight shading.Value) {
	if !m.IsBSDF() {
		panic(fmt.Sprintf("material %q: BSDF requested from a value material", m.name))
	}
	m.graph.scatter(m.root, acc, weight)
}

// Evaluate is the usual entry point for BSDF materials: it allocates a fresh
// accumulator for sc and scatters the identity weight into it.
func (m *Material) Evaluate(sc *shading.Context) *bsdf.Accumulator {
	acc := bsdf.New(sc)
	m.Scatter(acc, shading.White)
	return acc
}
