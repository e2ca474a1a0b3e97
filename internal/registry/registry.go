package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/matgraph/internal/schema"
)

// Module is the interface that all BXDF modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the BXDF kinds known to a single application instance,
// keyed by kind name.
type Registry struct {
	bxdfs map[string]*schema.NodeDef
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{bxdfs: make(map[string]*schema.NodeDef)}
}

// RegisterBXDF registers a compiled-in BXDF kind. Registering the same kind
// twice is a programming error and panics.
func (r *Registry) RegisterBXDF(def *schema.NodeDef) {
	if def == nil {
		panic("bxdf definition must not be nil")
	}
	if _, exists := r.bxdfs[def.Kind]; exists {
		panic(fmt.Sprintf("bxdf kind '%s' already registered", def.Kind))
	}
	slog.Debug("Registering bxdf kind.", "kind", def.Kind, "properties", len(def.Properties))
	r.bxdfs[def.Kind] = def
}

// Lookup returns the definition registered for kind.
func (r *Registry) Lookup(kind string) (*schema.NodeDef, bool) {
	def, ok := r.bxdfs[kind]
	return def, ok
}

// Kinds returns the registered kind names in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.bxdfs))
	for k := range r.bxdfs {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int { return len(r.bxdfs) }
