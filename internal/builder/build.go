package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/material"
	"github.com/specialistvlad/matgraph/internal/registry"
)

// Build constructs a validated Material for every material in the model, in
// declaration order. Every broken material is reported, joined into one error.
func Build(ctx context.Context, model *config.Model, r *registry.Registry) ([]*material.Material, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting material construction.", "materials", len(model.Materials))

	var (
		built []*material.Material
		errs  []error
	)
	for _, m := range model.Materials {
		mat, err := BuildMaterial(ctx, m, r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		built = append(built, mat)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger.Info("Build: Material construction successful.", "materials", len(built))
	return built, nil
}

// BuildMaterial turns one material declaration into a graph and validates it.
func BuildMaterial(ctx context.Context, m *config.Material, r *registry.Registry) (*material.Material, error) {
	logger := ctxlog.FromContext(ctx).With("material", m.Name)

	g := material.NewGraph()

	// First pass: create all nodes so references may point forward.
	ids, err := createNodes(g, m, r)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", m.Name, err)
	}
	logger.Debug("Build: Node creation complete.", "node_count", g.Len())

	// Second pass: bind every property.
	if err := linkNodes(g, m, ids); err != nil {
		return nil, fmt.Errorf("material %q: %w", m.Name, err)
	}
	logger.Debug("Build: Property binding complete.")

	root, ok := ids[m.Output.Node]
	if !ok {
		return nil, fmt.Errorf("material %q: %s: output references unknown node %q", m.Name, m.Source, m.Output.Node)
	}

	mat, err := material.New(m.Name, g, root)
	if err != nil {
		return nil, err
	}

	logger.Debug("Build: Material validated.", "output", mat.Output().String())
	return mat, nil
}
