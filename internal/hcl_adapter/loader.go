package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file below paths and merges the `bxdf` and
// `material` blocks it finds into one model. It is agnostic to the origin of
// the paths: manifests and materials may live in the same file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := &config.Model{}
	parser := hclparse.NewParser()
	materialRanges := make(map[string]hcl.Range)

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.BXDFs {
			def, diags := translateBXDFDefinition(b)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode bxdf %q in %s: %w", b.Kind, file, diags)
			}
			model.BXDFs = append(model.BXDFs, def)
		}

		for _, m := range root.Materials {
			declRange := m.Output.Range()
			if prev, dup := materialRanges[m.Name]; dup {
				return nil, fmt.Errorf("duplicate material %q in %s, first declared at %s", m.Name, file, prev)
			}
			materialRanges[m.Name] = declRange

			mat, diags := translateMaterial(ctx, m)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode material %q in %s: %w", m.Name, file, diags)
			}
			model.Materials = append(model.Materials, mat)
		}
	}

	logger.Debug("HCL loading complete.", "bxdfs", len(model.BXDFs), "materials", len(model.Materials))
	return model, nil
}
