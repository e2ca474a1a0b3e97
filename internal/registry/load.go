package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
)

// PopulateDefinitionsFromModel adds the BXDF manifests declared in authoring
// files to the registry. Unlike RegisterBXDF, a clash with an existing kind is
// a user error and is returned rather than raised.
func (r *Registry) PopulateDefinitionsFromModel(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range model.BXDFs {
		if _, exists := r.bxdfs[def.Kind]; exists {
			return fmt.Errorf("bxdf kind '%s' is already defined", def.Kind)
		}
		r.bxdfs[def.Kind] = def
		logger.Debug("Loaded bxdf manifest.", "kind", def.Kind, "properties", len(def.Properties))
	}

	if len(model.BXDFs) > 0 {
		logger.Info("Registry loaded bxdf manifests.", "manifests", len(model.BXDFs), "kinds", r.Len())
	}
	return nil
}
