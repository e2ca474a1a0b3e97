package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/matgraph/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-m", "scenes/", "-material", "plastic", "-mode", "BSDF", "-samples", "16", "-workers", "4", "-log-format", "json", "-log-level", "DEBUG"}

	// --- Act ---
	cfg, exit, err := Parse(args, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &app.Config{
		MaterialsPath: "scenes/",
		Material:      "plastic",
		Mode:          "bsdf",
		Samples:       16,
		WorkerCount:   4,
		LogFormat:     "json",
		LogLevel:      "debug",
	}, cfg)
}

func TestParse_PositionalPath(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"materials.hcl"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "materials.hcl", cfg.MaterialsPath)
	assert.Equal(t, "auto", cfg.Mode)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-samples")
}

func TestParse_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "log format", args: []string{"-log-format", "xml", "m"}, wantMsg: "invalid log-format"},
		{name: "log level", args: []string{"-log-level", "trace", "m"}, wantMsg: "invalid log-level"},
		{name: "mode", args: []string{"-mode", "spectral", "m"}, wantMsg: "unknown sampling mode"},
		{name: "samples", args: []string{"-samples", "-2", "m"}, wantMsg: "samples must not be negative"},
		{name: "unknown flag", args: []string{"-grid", "m"}, wantMsg: "flag provided but not defined"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
