package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/matgraph/internal/builder"
	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/material"
	"github.com/specialistvlad/matgraph/internal/sampler"
	"github.com/specialistvlad/matgraph/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ErrMaterialNotFound is returned when the requested material is not declared.
var ErrMaterialNotFound = errors.New("material not found")

// Run loads, validates and optionally samples the configured materials.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	shutdown, err := telemetry.Setup(a.config.OTLPEndpoint, "matgraph")
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			a.logger.Warn("Tracing shutdown failed.", "error", serr)
		}
	}()

	ctx, span := telemetry.Start(ctx, "matgraph.run")
	defer func() { telemetry.End(span, err) }()

	model, err := a.load(ctx)
	if err != nil {
		return err
	}

	materials, err := a.build(ctx, model)
	if err != nil {
		return err
	}
	for _, m := range materials {
		a.logger.Info("Material is valid.", "material", m.Name(), "output", m.Output().String(), "nodes", m.Graph().Len())
	}

	if a.config.Samples == 0 {
		a.logger.Debug("Sampling disabled, validation only.")
		return nil
	}

	mode, err := sampler.ParseMode(a.config.Mode)
	if err != nil {
		return err
	}
	for _, m := range materials {
		if err := a.sample(ctx, m, mode); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) load(ctx context.Context) (_ *config.Model, err error) {
	ctx, span := telemetry.Start(ctx, "matgraph.load")
	defer func() { telemetry.End(span, err) }()

	model, err := a.loader.Load(ctx, a.config.paths()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	a.logger.Debug("Configuration loaded and translated into unified model.", "materials", len(model.Materials), "bxdfs", len(model.BXDFs))

	if err := a.registry.PopulateDefinitionsFromModel(ctx, model); err != nil {
		return nil, fmt.Errorf("failed to register bxdf manifests: %w", err)
	}
	if err := a.registry.ValidateRegistry(ctx); err != nil {
		return nil, err
	}

	if a.config.Material != "" {
		m := model.Material(a.config.Material)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMaterialNotFound, a.config.Material)
		}
		model = &config.Model{BXDFs: model.BXDFs, Materials: []*config.Material{m}}
	}
	if len(model.Materials) == 0 {
		a.logger.Warn("No materials found.", "paths", a.config.paths())
	}
	return model, nil
}

func (a *App) build(ctx context.Context, model *config.Model) (_ []*material.Material, err error) {
	ctx, span := telemetry.Start(ctx, "matgraph.validate", attribute.Int("materials", len(model.Materials)))
	defer func() { telemetry.End(span, err) }()

	materials, err := builder.Build(ctx, model, a.registry)
	if err != nil {
		return nil, fmt.Errorf("invalid materials:\n%w", err)
	}
	return materials, nil
}

func (a *App) sample(ctx context.Context, m *material.Material, mode sampler.Mode) (err error) {
	ctx, span := telemetry.Start(ctx, "matgraph.sample", attribute.String("material", m.Name()))
	defer func() { telemetry.End(span, err) }()

	stats, err := sampler.Sample(ctx, m, sampler.Options{
		Mode:       mode,
		Resolution: a.config.Samples,
		Workers:    a.config.WorkerCount,
	})
	if err != nil {
		return fmt.Errorf("material %q: %w", m.Name(), err)
	}
	a.logger.Info("Material sampled.", "material", m.Name(), "mode", stats.Mode.String(), "points", stats.Points)
	return stats.WriteSummary(a.outW, m.Name())
}
