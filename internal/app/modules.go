package app

import (
	"github.com/specialistvlad/matgraph/internal/registry"
	"github.com/specialistvlad/matgraph/modules/dielectric"
	"github.com/specialistvlad/matgraph/modules/lambert"
	"github.com/specialistvlad/matgraph/modules/microfacet"
	"github.com/specialistvlad/matgraph/modules/orennayar"
)

// coreModules is the definitive list of all BXDF modules that are compiled
// into the matgraph binary.
var coreModules = []registry.Module{
	&lambert.Module{},
	&orennayar.Module{},
	&microfacet.Module{},
	&dielectric.Module{},
}

// CoreModules returns a copy of the compiled-in module list, for callers
// that want to add their own modules next to it.
func CoreModules() []registry.Module {
	return append([]registry.Module(nil), coreModules...)
}
