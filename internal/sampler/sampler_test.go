package sampler

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/matgraph/internal/bsdf"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/material"
	"github.com/specialistvlad/matgraph/internal/shading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

// uvShader returns the UV coordinate as its value.
type uvShader struct{}

func (uvShader) Output() material.NodeType                 { return material.TypeOperator }
func (uvShader) Value(sc *shading.Context) shading.Value   { return sc.UVW }
func (uvShader) Scatter(*bsdf.Accumulator, shading.Value) { panic("not a bsdf") }

// splitShader puts a diffuse lobe on the left half and splits the right half
// evenly between diffuse and glossy.
type splitShader struct{}

func (splitShader) Output() material.NodeType {
	return material.TypeOperator | material.TypeBXDF
}
func (splitShader) Value(*shading.Context) shading.Value { panic("not a value") }
func (splitShader) Scatter(acc *bsdf.Accumulator, w shading.Value) {
	if acc.Context().UVW.X < 0.5 {
		acc.Add(bsdf.Lobe{Kind: "lambert", Weight: w})
		return
	}
	acc.Add(bsdf.Lobe{Kind: "lambert", Weight: w.Scale(0.5)})
	acc.Add(bsdf.Lobe{Kind: "microfacet_reflection", Weight: w.Scale(0.5)})
}

func TestSample_ValueStats(t *testing.T) {
	t.Parallel()

	// --- Act ---
	stats, err := Sample(testContext(), uvShader{}, Options{Resolution: 4, Workers: 3})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, ModeValue, stats.Mode)
	assert.Equal(t, 16, stats.Points)
	if diff := cmp.Diff(shading.Vec3(0.125, 0.125, 0), stats.Min, approx); diff != "" {
		t.Errorf("min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(shading.Vec3(0.875, 0.875, 0), stats.Max, approx); diff != "" {
		t.Errorf("max mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(shading.Vec3(0.5, 0.5, 0), stats.Mean, approx); diff != "" {
		t.Errorf("mean mismatch (-want +got):\n%s", diff)
	}
}

func TestSample_BSDFStats(t *testing.T) {
	t.Parallel()

	stats, err := Sample(testContext(), splitShader{}, Options{Resolution: 8})

	require.NoError(t, err)
	assert.Equal(t, ModeBSDF, stats.Mode)
	assert.Equal(t, 64, stats.Points)
	assert.InDelta(t, 1.5, stats.MeanLobes, 1e-9)
	assert.Equal(t, []string{"lambert", "microfacet_reflection"}, stats.Kinds())
	if diff := cmp.Diff(shading.Scalar(0.75), stats.KindWeight["lambert"], approx); diff != "" {
		t.Errorf("lambert weight mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(shading.Scalar(0.25), stats.KindWeight["microfacet_reflection"], approx); diff != "" {
		t.Errorf("glossy weight mismatch (-want +got):\n%s", diff)
	}
}

func TestSample_ModeMismatch(t *testing.T) {
	t.Parallel()

	_, err := Sample(testContext(), uvShader{}, Options{Mode: ModeBSDF, Resolution: 2})
	assert.ErrorIs(t, err, ErrModeMismatch)

	_, err = Sample(testContext(), splitShader{}, Options{Mode: ModeValue, Resolution: 2})
	assert.ErrorIs(t, err, ErrModeMismatch)
}

func TestSample_InvalidResolution(t *testing.T) {
	t.Parallel()

	_, err := Sample(testContext(), uvShader{}, Options{Resolution: 0})
	assert.ErrorContains(t, err, "resolution must be positive")
}

func TestSample_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := Sample(ctx, uvShader{}, Options{Resolution: 16, Workers: 2})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Mode{"": ModeAuto, "auto": ModeAuto, "value": ModeValue, "bsdf": ModeBSDF} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("spectral")
	assert.ErrorContains(t, err, `unknown sampling mode "spectral"`)
}

func TestStats_WriteSummary(t *testing.T) {
	t.Parallel()

	stats, err := Sample(testContext(), splitShader{}, Options{Resolution: 2, Workers: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, stats.WriteSummary(&buf, "split"))

	out := buf.String()
	assert.Contains(t, out, "material split (bsdf, 4 points)")
	assert.Contains(t, out, "lobes per point 1.5")
	assert.Contains(t, out, "microfacet_reflection")
}
