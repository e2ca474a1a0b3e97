package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

func diffuse(kind string) *schema.NodeDef {
	return &schema.NodeDef{
		Kind: kind,
		Properties: []schema.PropertyDef{
			{Name: "base_color", Socket: schema.SocketColor, Default: schema.Default(shading.White)},
		},
	}
}

type fakeModule struct{ kinds []string }

func (m fakeModule) Register(r *Registry) {
	for _, k := range m.kinds {
		r.RegisterBXDF(diffuse(k))
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New()
	var m Module = fakeModule{kinds: []string{"sheen", "lambert"}}

	// --- Act ---
	m.Register(r)

	// --- Assert ---
	def, ok := r.Lookup("lambert")
	require.True(t, ok)
	assert.Equal(t, "lambert", def.Kind)
	_, ok = r.Lookup("phong")
	assert.False(t, ok)
	assert.Equal(t, []string{"lambert", "sheen"}, r.Kinds())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterBXDF(diffuse("lambert"))

	assert.PanicsWithValue(t, "bxdf kind 'lambert' already registered", func() {
		r.RegisterBXDF(diffuse("lambert"))
	})
	assert.Panics(t, func() { r.RegisterBXDF(nil) })
}

func TestRegistry_PopulateDefinitionsFromModel(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterBXDF(diffuse("lambert"))

	err := r.PopulateDefinitionsFromModel(testContext(), &config.Model{BXDFs: []*schema.NodeDef{diffuse("velvet")}})
	require.NoError(t, err)
	_, ok := r.Lookup("velvet")
	assert.True(t, ok)

	err = r.PopulateDefinitionsFromModel(testContext(), &config.Model{BXDFs: []*schema.NodeDef{diffuse("lambert")}})
	assert.ErrorContains(t, err, "bxdf kind 'lambert' is already defined")
}

func TestValidateRegistry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     *schema.NodeDef
		wantErr string
	}{
		{name: "valid", def: diffuse("lambert")},
		{name: "bad kind name", def: diffuse("Lambert"), wantErr: "kind must be a lower-case identifier"},
		{name: "builtin clash", def: diffuse("lerp"), wantErr: "collides with a built-in node kind"},
		{
			name: "duplicate property",
			def: &schema.NodeDef{Kind: "twice", Properties: []schema.PropertyDef{
				{Name: "roughness", Socket: schema.SocketFloat},
				{Name: "roughness", Socket: schema.SocketFloat},
			}},
			wantErr: "property 'roughness' is declared twice",
		},
		{
			name: "bxdf socket",
			def: &schema.NodeDef{Kind: "nested", Properties: []schema.PropertyDef{
				{Name: "inner", Socket: schema.SocketBXDF},
			}},
			wantErr: "property 'inner' cannot accept a bxdf",
		},
		{
			name: "bad property name",
			def: &schema.NodeDef{Kind: "odd", Properties: []schema.PropertyDef{
				{Name: "Base Color", Socket: schema.SocketColor},
			}},
			wantErr: "property 'Base Color' must be a lower-case identifier",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := New()
			r.RegisterBXDF(tc.def)

			err := r.ValidateRegistry(testContext())

			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "registry validation failed")
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
