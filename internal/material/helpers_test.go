package material

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
	"github.com/stretchr/testify/require"
)

// lambertDef stands in for a BXDF kind registered by a module.
var lambertDef = &schema.NodeDef{
	Kind: "lambert",
	Properties: []schema.PropertyDef{
		{Name: "base_color", Socket: schema.SocketColor, Default: schema.Default(shading.Scalar(1))},
	},
}

var approx = cmpopts.EquateApprox(0, 1e-5)

// builder keeps graph construction in tests terse.
type builder struct {
	t *testing.T
	g *Graph
}

func newBuilder(t *testing.T) *builder {
	t.Helper()
	return &builder{t: t, g: NewGraph()}
}

func (b *builder) node(name, kind string, props map[string]Binding) NodeID {
	b.t.Helper()
	var spec Spec
	if kind == "lambert" {
		spec = BXDF(lambertDef)
	} else {
		var ok bool
		spec, ok = Builtin(kind)
		require.True(b.t, ok, "unknown builtin kind %q", kind)
	}
	id, err := b.g.Add(name, spec)
	require.NoError(b.t, err)
	for p, binding := range props {
		require.NoError(b.t, b.g.Set(id, p, binding))
	}
	return id
}

func (b *builder) constant(name string, v shading.Value) NodeID {
	b.t.Helper()
	return b.node(name, "constant", map[string]Binding{"color": Literal(v)})
}

func (b *builder) material(root NodeID) *Material {
	b.t.Helper()
	m, err := New("test", b.g, root)
	require.NoError(b.t, err)
	return m
}

func requireValue(t *testing.T, want, got shading.Value) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}
