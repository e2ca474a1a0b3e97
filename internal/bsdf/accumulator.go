// Package bsdf provides the per-shading-point accumulator that a material's
// push traversal fills with weighted lobes.
//
// An Accumulator is owned by exactly one caller for the duration of one graph
// walk. Nodes never retain it.
package bsdf

import (
	"sort"

	"github.com/specialistvlad/matgraph/internal/shading"
)

// Lobe is one additive term of a BSDF.
type Lobe struct {
	// Kind is the registered BXDF kind that produced the lobe, e.g. "lambert".
	Kind string
	// Node is the name of the graph node that produced the lobe.
	Node string
	// Weight is the colour weight accumulated along the routing path.
	Weight shading.Value
	// Params holds the resolved numeric parameters of the producing node.
	Params map[string]shading.Value
}

// Accumulator collects weighted lobes for one shading point.
type Accumulator struct {
	ctx   *shading.Context
	lobes []Lobe
}

// New returns an empty accumulator bound to a shading context. Nodes that need
// surface attributes while routing read them from Context().
func New(ctx *shading.Context) *Accumulator {
	if ctx == nil {
		ctx = &shading.Context{}
	}
	return &Accumulator{ctx: ctx}
}

// Context returns the shading point this accumulator belongs to.
func (a *Accumulator) Context() *shading.Context {
	return a.ctx
}

// Add registers a lobe. Lobes with a black weight carry no energy and are dropped.
func (a *Accumulator) Add(l Lobe) {
	if l.Weight.IsBlack() {
		return
	}
	a.lobes = append(a.lobes, l)
}

// Lobes returns the registered lobes in registration order. The slice must not
// be modified.
func (a *Accumulator) Lobes() []Lobe {
	return a.lobes
}

// Len returns the number of registered lobes.
func (a *Accumulator) Len() int {
	return len(a.lobes)
}

// Reset drops all lobes so the accumulator can be reused for a new point.
func (a *Accumulator) Reset(ctx *shading.Context) {
	a.lobes = a.lobes[:0]
	if ctx != nil {
		a.ctx = ctx
	}
}

// TotalWeight sums the weights of all lobes.
func (a *Accumulator) TotalWeight() shading.Value {
	var sum shading.Value
	for _, l := range a.lobes {
		sum = sum.Add(l.Weight)
	}
	return sum
}

// WeightByKind sums lobe weights per BXDF kind.
func (a *Accumulator) WeightByKind() map[string]shading.Value {
	out := make(map[string]shading.Value, len(a.lobes))
	for _, l := range a.lobes {
		out[l.Kind] = out[l.Kind].Add(l.Weight)
	}
	return out
}

// Kinds returns the distinct lobe kinds, sorted.
func (a *Accumulator) Kinds() []string {
	seen := make(map[string]struct{}, len(a.lobes))
	var kinds []string
	for _, l := range a.lobes {
		if _, ok := seen[l.Kind]; ok {
			continue
		}
		seen[l.Kind] = struct{}{}
		kinds = append(kinds, l.Kind)
	}
	sort.Strings(kinds)
	return kinds
}
