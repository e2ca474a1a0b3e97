package registry

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/material"
	"github.com/specialistvlad/matgraph/internal/schema"
)

var identifier = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateRegistry checks every registered kind for problems that would
// otherwise surface only when a material uses it: malformed names, clashes
// with built-in node kinds and broken property tables.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	builtin := make(map[string]struct{})
	for _, name := range material.BuiltinNames() {
		builtin[name] = struct{}{}
	}

	for _, kind := range r.Kinds() {
		def := r.bxdfs[kind]

		if !identifier.MatchString(kind) {
			errs = append(errs, fmt.Sprintf("bxdf '%s': kind must be a lower-case identifier", kind))
		}
		if _, clash := builtin[kind]; clash {
			errs = append(errs, fmt.Sprintf("bxdf '%s': kind collides with a built-in node kind", kind))
		}
		if len(def.Properties) == 0 {
			logger.Warn("Bxdf kind declares no properties.", "kind", kind)
		}

		seen := make(map[string]struct{}, len(def.Properties))
		for _, p := range def.Properties {
			if !identifier.MatchString(p.Name) {
				errs = append(errs, fmt.Sprintf("bxdf '%s': property '%s' must be a lower-case identifier", kind, p.Name))
			}
			if _, dup := seen[p.Name]; dup {
				errs = append(errs, fmt.Sprintf("bxdf '%s': property '%s' is declared twice", kind, p.Name))
			}
			seen[p.Name] = struct{}{}

			if p.Socket == schema.SocketBXDF {
				errs = append(errs, fmt.Sprintf("bxdf '%s': property '%s' cannot accept a bxdf", kind, p.Name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
