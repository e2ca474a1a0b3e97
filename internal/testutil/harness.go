package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/matgraph/internal/app"
	"github.com/specialistvlad/matgraph/internal/hcl_adapter"
	"github.com/specialistvlad/matgraph/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Options are the run settings an integration test may override.
type Options struct {
	Material string
	Mode     string
	Samples  int
	Workers  int
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output holds both the debug log and the sampling summary.
	Output string
	Err    error
	App    *app.App
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, opts Options, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts, modules...)
}

// RunIntegrationTestWithContext writes files below a temporary root, with
// "materials/" and "modules/" as the two configured paths, and runs the full
// application against them. Without modules the compiled-in ones are used.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts Options, modules ...registry.Module) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir := t.TempDir()
	materialsDir := filepath.Join(tmpDir, "materials")
	modulesDir := filepath.Join(tmpDir, "modules")
	require.NoError(t, os.Mkdir(materialsDir, 0o755))
	require.NoError(t, os.Mkdir(modulesDir, 0o755))

	// 2. Write all HCL files to the temporary directory. Relative names such
	//    as "modules/velvet.hcl" create their subdirectory on the way.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig, err := app.NewConfig(app.Config{
		MaterialsPath: materialsDir,
		ModulesPath:   modulesDir,
		Material:      opts.Material,
		Mode:          opts.Mode,
		Samples:       opts.Samples,
		WorkerCount:   opts.Workers,
		LogLevel:      "debug",
		LogFormat:     "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl_adapter.NewLoader(), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			Output: logBuffer.String(),
			Err:    fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("MATGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output: logBuffer.String(),
		Err:    runErr,
		App:    testApp,
	}
}
