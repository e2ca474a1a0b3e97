package material

import (
	"fmt"

	"github.com/specialistvlad/matgraph/internal/bsdf"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// value is the pull protocol: it resolves the numeric output of node id at a
// shading point. It reads nothing but the frozen graph and sc.
func (g *Graph) value(id NodeID, sc *shading.Context) shading.Value {
	n := g.must(id)
	switch n.spec.Kind {
	case KindConstant:
		return n.slot(slotSrc0).Resolve(g, sc)

	case KindInput:
		return n.spec.Attr.read(sc)

	case KindAdd:
		return n.slot(slotSrc0).Resolve(g, sc).Add(n.slot(slotSrc1).Resolve(g, sc))

	case KindOneMinus:
		return shading.Scalar(1).Sub(n.slot(slotSrc0).Resolve(g, sc))

	case KindLerp:
		f := n.slot(slotFactor).Resolve(g, sc).X
		a := n.slot(slotSrc0).Resolve(g, sc)
		b := n.slot(slotSrc1).Resolve(g, sc)
		return a.Scale(1 - f).Add(b.Scale(f))

	case KindBlend:
		// Both terms use the first factor. Authored materials depend on it.
		f0 := n.slot(slotFactor).Resolve(g, sc).X
		a := n.slot(slotSrc0).Resolve(g, sc)
		b := n.slot(slotSrc1).Resolve(g, sc)
		return a.Scale(f0).Add(b.Scale(f0))

	case KindMultiply:
		return n.slot(slotSrc0).Resolve(g, sc).Mul(n.slot(slotSrc1).Resolve(g, sc))

	case KindGammaToLinear:
		return n.slot(slotSrc0).Resolve(g, sc).Map(GammaToLinear)

	case KindLinearToGamma:
		return n.slot(slotSrc0).Resolve(g, sc).Map(LinearToGamma)

	case KindNormalDecode:
		c := n.slot(slotSrc0).Resolve(g, sc)
		return shading.Vec4(2*c.X-1, c.Z, 2*c.Y-1, 0)

	case KindBXDF:
		panic(fmt.Sprintf("material: value requested from BXDF node %q (%s)", n.name, n.KindName()))
	}
	panic(fmt.Sprintf("material: node %q has unknown kind %s", n.name, n.spec.Kind))
}

// scatter is the push protocol: it distributes weight into acc, either by
// registering a lobe or by forwarding reduced weights to BXDF children. A black
// weight returns immediately without touching acc or evaluating children.
func (g *Graph) scatter(id NodeID, acc *bsdf.Accumulator, weight shading.Value) {
	if weight.IsBlack() {
		return
	}
	n := g.must(id)
	sc := acc.Context()

	switch n.spec.Kind {
	case KindLerp:
		f := n.slot(slotFactor).Resolve(g, sc).X
		g.route(n.slot(slotSrc0), acc, weight.Scale(1-f))
		g.route(n.slot(slotSrc1), acc, weight.Scale(f))

	case KindBlend:
		f0 := n.slot(slotFactor).Resolve(g, sc).X
		f1 := n.slot(slotFactor2).Resolve(g, sc).X
		g.route(n.slot(slotSrc0), acc, weight.Scale(f0))
		g.route(n.slot(slotSrc1), acc, weight.Scale(f1))

	case KindMultiply:
		a, b := n.slot(slotSrc0), n.slot(slotSrc1)
		switch {
		case g.carriesBXDF(a):
			g.route(a, acc, weight.Scale(b.Resolve(g, sc).X))
		case g.carriesBXDF(b):
			g.route(b, acc, weight.Scale(a.Resolve(g, sc).X))
		}

	case KindBXDF:
		params := make(map[string]shading.Value, len(n.bindings))
		for i, p := range n.spec.Def.Properties {
			params[p.Name] = n.bindings[i].Resolve(g, sc)
		}
		acc.Add(bsdf.Lobe{
			Kind:   n.KindName(),
			Node:   n.name,
			Weight: weight,
			Params: params,
		})

	default:
		panic(fmt.Sprintf("material: BSDF requested from value node %q (%s)", n.name, n.KindName()))
	}
}

// route forwards weight to the child behind b if, and only if, that child
// carries a BXDF. Literals and numeric children contribute no lobes.
func (g *Graph) route(b Binding, acc *bsdf.Accumulator, weight shading.Value) {
	if !g.carriesBXDF(b) {
		return
	}
	ref, _, _ := b.Reference()
	g.scatter(ref, acc, weight)
}

func (g *Graph) carriesBXDF(b Binding) bool {
	ref, _, ok := b.Reference()
	if !ok {
		return false
	}
	return g.must(ref).output.IsBXDF()
}
