package material

import (
	"sync"
	"testing"

	"github.com/specialistvlad/matgraph/internal/bsdf"
	"github.com/specialistvlad/matgraph/internal/shading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Lerp(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	root := b.node("mix", "lerp", map[string]Binding{
		"color1": Literal(shading.Scalar(2)),
		"color2": Literal(shading.Scalar(4)),
		"factor": Literal(shading.Scalar(0.25)),
	})

	got := b.material(root).Value(shading.AtUV(0, 0))

	requireValue(t, shading.Scalar(2.5), got)
}

func TestValue_LerpOfConstantColors(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	b := newBuilder(t)
	red := b.constant("red", shading.Vec3(1, 0, 0))
	green := b.constant("green", shading.Vec3(0, 1, 0))
	factor := b.constant("factor", shading.Scalar(0.3))
	root := b.node("mix", "lerp", map[string]Binding{
		"color1": Ref(red),
		"color2": Ref(green),
		"factor": Ref(factor),
	})

	// --- Act ---
	got := b.material(root).Value(shading.AtUV(0.5, 0.5))

	// --- Assert ---
	requireValue(t, shading.Vec3(0.7, 0.3, 0), got)
}

func TestValue_OneMinusTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	for _, x := range []shading.Value{
		shading.Black,
		shading.Scalar(0.25),
		shading.Vec4(-3, 0.5, 7, 1),
		shading.Vec3(1, 2, 3),
	} {
		b := newBuilder(t)
		inner := b.node("inner", "one_minus", map[string]Binding{"color": Literal(x)})
		outer := b.node("outer", "one_minus", map[string]Binding{"color": Ref(inner)})

		requireValue(t, x, b.material(outer).Value(shading.AtUV(0, 0)))
	}
}

func TestValue_AlgebraicOperators(t *testing.T) {
	t.Parallel()

	a := shading.Vec4(0.5, 0.25, 1, 0)
	c := shading.Vec4(2, 4, 0.5, 1)

	tests := []struct {
		name  string
		kind  string
		props map[string]Binding
		want  shading.Value
	}{
		{"add", "add", map[string]Binding{"color1": Literal(a), "color2": Literal(c)}, a.Add(c)},
		{"multiply", "multiply", map[string]Binding{"color1": Literal(a), "color2": Literal(c)}, a.Mul(c)},
		{"one minus", "one_minus", map[string]Binding{"color": Literal(a)}, shading.Vec4(0.5, 0.75, 0, 1)},
		{"blend uses first factor twice", "blend", map[string]Binding{
			"color1":  Literal(a),
			"color2":  Literal(c),
			"factor1": Literal(shading.Scalar(0.5)),
			"factor2": Literal(shading.Scalar(0.1)),
		}, a.Scale(0.5).Add(c.Scale(0.5))},
		{"normal decode flat", "normal_decode", map[string]Binding{"color": Literal(shading.Vec3(0.5, 0.5, 1))}, shading.Vec4(0, 1, 0, 0)},
		{"normal decode swizzle", "normal_decode", map[string]Binding{"color": Literal(shading.Vec4(1, 0, 0.25, 9))}, shading.Vec4(1, 0.25, -1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := newBuilder(t)
			root := b.node("n", tc.kind, tc.props)
			requireValue(t, tc.want, b.material(root).Value(shading.AtUV(0, 0)))
		})
	}
}

func TestValue_GammaRoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0, 0.001, 0.02, 0.04, 0.2, 0.5, 0.73, 1} {
		b := newBuilder(t)
		lin := b.node("lin", "gamma_to_linear", map[string]Binding{"color": Literal(shading.Vec4(x, x, x, 0.3))})
		gam := b.node("gam", "linear_to_gamma", map[string]Binding{"color": Ref(lin)})

		got := b.material(gam).Value(shading.AtUV(0, 0))

		assert.InDelta(t, x, got.X, 1e-5)
		assert.InDelta(t, x, got.Z, 1e-5)
		assert.Equal(t, float32(0.3), got.W, "fourth component is not transferred")
	}
}

func TestValue_InputsAndChannels(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	uv := b.node("uv", "uvw", nil)
	root := b.node("sum", "add", map[string]Binding{
		"color1": RefChannel(uv, ChannelY),
		"color2": Literal(shading.Scalar(1)),
	})
	m := b.material(root)

	got := m.Value(shading.AtUV(0.2, 0.6))

	requireValue(t, shading.Scalar(1.6), got)
}

func TestScatter_ZeroWeightNeverTouchesAccumulator(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	diffuse := b.node("diffuse", "lambert", nil)
	other := b.node("other", "lambert", nil)
	lerp := b.node("lerp", "lerp", map[string]Binding{"color1": Ref(diffuse), "color2": Ref(other)})
	blend := b.node("blend", "blend", map[string]Binding{"color1": Ref(lerp), "color2": Ref(other)})
	mul := b.node("mul", "multiply", map[string]Binding{"color1": Ref(blend), "color2": Literal(shading.Scalar(2))})
	b.material(mul)

	for _, id := range []NodeID{diffuse, lerp, blend, mul} {
		acc := bsdf.New(shading.AtUV(0, 0))
		b.g.scatter(id, acc, shading.Black)
		assert.Zero(t, acc.Len(), "node#%d", id)
	}
}

func TestScatter_LerpSplitsWeight(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	diffuse := b.node("diffuse", "lambert", nil)
	glossy := b.node("glossy", "lambert", nil)
	root := b.node("mix", "lerp", map[string]Binding{
		"color1": Ref(diffuse),
		"color2": Ref(glossy),
		"factor": Literal(shading.Scalar(0.25)),
	})

	acc := b.material(root).Evaluate(shading.AtUV(0, 0))

	require.Equal(t, 2, acc.Len())
	assert.Equal(t, "diffuse", acc.Lobes()[0].Node)
	requireValue(t, shading.Scalar(0.75), acc.Lobes()[0].Weight)
	assert.Equal(t, "glossy", acc.Lobes()[1].Node)
	requireValue(t, shading.Scalar(0.25), acc.Lobes()[1].Weight)
	requireValue(t, shading.Scalar(1), acc.Lobes()[0].Params["base_color"])
}

func TestScatter_LerpHardFactorPrunesBranch(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	diffuse := b.node("diffuse", "lambert", nil)
	glossy := b.node("glossy", "lambert", nil)
	root := b.node("mix", "lerp", map[string]Binding{
		"color1": Ref(diffuse),
		"color2": Ref(glossy),
		"factor": Literal(shading.Scalar(1)),
	})

	acc := b.material(root).Evaluate(shading.AtUV(0, 0))

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, "glossy", acc.Lobes()[0].Node)
}

func TestScatter_LerpWithLiteralSource(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	diffuse := b.node("diffuse", "lambert", nil)
	root := b.node("fade", "lerp", map[string]Binding{
		"color1": Ref(diffuse),
		"color2": Literal(shading.Black),
		"factor": Literal(shading.Scalar(0.4)),
	})

	acc := b.material(root).Evaluate(shading.AtUV(0, 0))

	require.Equal(t, 1, acc.Len())
	requireValue(t, shading.Scalar(0.6), acc.Lobes()[0].Weight)
}

func TestScatter_BlendUsesIndependentFactors(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	diffuse := b.node("diffuse", "lambert", nil)
	glossy := b.node("glossy", "lambert", nil)
	root := b.node("blend", "blend", map[string]Binding{
		"color1":  Ref(diffuse),
		"color2":  Ref(glossy),
		"factor1": Literal(shading.Scalar(0.5)),
		"factor2": Literal(shading.Vec3(0.2, 0.9, 0.9)),
	})

	acc := b.material(root).Evaluate(shading.AtUV(0, 0))

	require.Equal(t, 2, acc.Len())
	requireValue(t, shading.Scalar(0.5), acc.Lobes()[0].Weight)
	requireValue(t, shading.Scalar(0.2), acc.Lobes()[1].Weight)
}

func TestScatter_MultiplyRoutesScaledWeight(t *testing.T) {
	t.Parallel()

	t.Run("bxdf on the left", func(t *testing.T) {
		t.Parallel()
		b := newBuilder(t)
		diffuse := b.node("diffuse", "lambert", nil)
		k := b.constant("k", shading.Vec3(0.3, 0.9, 0.9))
		root := b.node("mul", "multiply", map[string]Binding{"color1": Ref(diffuse), "color2": Ref(k)})

		acc := bsdf.New(shading.AtUV(0, 0))
		b.material(root).Scatter(acc, shading.Vec4(1, 0.5, 0.25, 1))

		require.Equal(t, 1, acc.Len())
		requireValue(t, shading.Vec4(0.3, 0.15, 0.075, 0.3), acc.Lobes()[0].Weight)
	})

	t.Run("bxdf on the right", func(t *testing.T) {
		t.Parallel()
		b := newBuilder(t)
		diffuse := b.node("diffuse", "lambert", nil)
		root := b.node("mul", "multiply", map[string]Binding{"color1": Literal(shading.Scalar(0.5)), "color2": Ref(diffuse)})

		acc := b.material(root).Evaluate(shading.AtUV(0, 0))

		require.Equal(t, 1, acc.Len())
		requireValue(t, shading.Scalar(0.5), acc.Lobes()[0].Weight)
	})

	t.Run("numeric operands carry no bsdf", func(t *testing.T) {
		t.Parallel()
		b := newBuilder(t)
		k := b.constant("k", shading.Scalar(0.5))
		root := b.node("mul", "multiply", map[string]Binding{"color1": Ref(k), "color2": Literal(shading.Scalar(2))})
		require.NoError(t, b.g.Validate(root))

		acc := bsdf.New(shading.AtUV(0, 0))
		b.g.scatter(root, acc, shading.White)

		assert.Zero(t, acc.Len())
	})
}

func TestScatter_NestedRoutersAccumulateIntoOneTarget(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	b := newBuilder(t)
	diffuse := b.node("diffuse", "lambert", map[string]Binding{"base_color": Literal(shading.Vec3(0.8, 0.1, 0.1))})
	coat := b.node("coat", "lambert", nil)
	inner := b.node("inner", "lerp", map[string]Binding{
		"color1": Ref(diffuse),
		"color2": Ref(coat),
		"factor": Literal(shading.Scalar(0.5)),
	})
	root := b.node("scaled", "multiply", map[string]Binding{"color1": Ref(inner), "color2": Literal(shading.Scalar(0.5))})
	m := b.material(root)

	// --- Act ---
	acc := m.Evaluate(shading.AtUV(0, 0))

	// --- Assert ---
	require.True(t, m.IsBSDF())
	require.Equal(t, 2, acc.Len())
	requireValue(t, shading.Scalar(0.5), acc.TotalWeight())
	requireValue(t, shading.Vec3(0.8, 0.1, 0.1), acc.Lobes()[0].Params["base_color"])
}

func TestMaterial_ContractViolationsPanic(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	diffuse := b.node("diffuse", "lambert", nil)
	bsdfMat := b.material(diffuse)
	assert.Panics(t, func() { bsdfMat.Value(shading.AtUV(0, 0)) })

	v := newBuilder(t)
	c := v.constant("c", shading.White)
	valueMat := v.material(c)
	assert.Panics(t, func() { valueMat.Scatter(bsdf.New(nil), shading.White) })
}

func TestMaterial_ConcurrentEvaluation(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	uv := b.node("uv", "uvw", nil)
	diffuse := b.node("diffuse", "lambert", map[string]Binding{"base_color": Ref(uv)})
	glossy := b.node("glossy", "lambert", nil)
	root := b.node("mix", "lerp", map[string]Binding{
		"color1": Ref(diffuse),
		"color2": Ref(glossy),
		"factor": RefChannel(uv, ChannelX),
	})
	m := b.material(root)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				u := float32(i) / 100
				acc := m.Evaluate(shading.AtUV(u, float32(w)/8))
				total := acc.TotalWeight()
				assert.InDelta(t, 1, total.X, 1e-5)
			}
		}(w)
	}
	wg.Wait()
}

func TestValue_RouterFactorsDefaultToZero(t *testing.T) {
	t.Parallel()

	b := newBuilder(t)
	lerp := b.node("mix", "lerp", map[string]Binding{
		"color1": Literal(shading.Scalar(2)),
		"color2": Literal(shading.Scalar(4)),
	})
	blend := b.node("sum", "blend", map[string]Binding{
		"color1": Literal(shading.Scalar(2)),
		"color2": Literal(shading.Scalar(4)),
	})
	root := b.node("top", "add", map[string]Binding{"color1": Ref(lerp), "color2": Ref(blend)})

	f, ok := b.g.nodes[lerp].Binding("factor")
	require.True(t, ok)
	requireValue(t, shading.Scalar(0), f.Resolve(b.g, nil))

	got := b.material(root).Value(shading.AtUV(0, 0))

	requireValue(t, shading.Scalar(2), got)
}
