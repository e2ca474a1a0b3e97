package builder

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/material"
	"github.com/specialistvlad/matgraph/internal/registry"
)

// resolveKind finds the Spec for a kind name. Built-in kinds win over
// registered BXDFs; the registry refuses clashes anyway.
func resolveKind(kind string, r *registry.Registry) (material.Spec, bool) {
	if spec, ok := material.Builtin(kind); ok {
		return spec, true
	}
	if def, ok := r.Lookup(kind); ok {
		return material.BXDF(def), true
	}
	return material.Spec{}, false
}

// createNodes adds one graph node per declaration and returns the name index.
func createNodes(g *material.Graph, m *config.Material, r *registry.Registry) (map[string]material.NodeID, error) {
	ids := make(map[string]material.NodeID, len(m.Nodes))
	var errs []error

	for _, n := range m.Nodes {
		if _, dup := ids[n.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate node name %q", n.Source, n.Name))
			continue
		}
		spec, ok := resolveKind(n.Kind, r)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: node %q has unknown kind %q", n.Source, n.Name, n.Kind))
			continue
		}
		id, err := g.Add(n.Name, spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.Source, err))
			continue
		}
		ids[n.Name] = id
	}

	return ids, errors.Join(errs...)
}

// linkNodes binds the declared properties of every node to a literal or to
// the referenced node's output.
func linkNodes(g *material.Graph, m *config.Material, ids map[string]material.NodeID) error {
	var errs []error

	for _, n := range m.Nodes {
		id := ids[n.Name]
		for _, p := range n.Properties {
			b, err := binding(p, ids)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: node %q property %q: %w", p.Source, n.Name, p.Name, err))
				continue
			}
			if err := g.Set(id, p.Name, b); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p.Source, err))
			}
		}
	}

	return errors.Join(errs...)
}

func binding(p *config.Property, ids map[string]material.NodeID) (material.Binding, error) {
	if p.Literal != nil {
		return material.Literal(*p.Literal), nil
	}
	if p.Ref == nil {
		return material.Binding{}, errors.New("property has neither a literal nor a reference")
	}
	target, ok := ids[p.Ref.Node]
	if !ok {
		return material.Binding{}, fmt.Errorf("%w: no node named %q", material.ErrDanglingReference, p.Ref.Node)
	}
	ch, err := material.ParseChannel(p.Ref.Channel)
	if err != nil {
		return material.Binding{}, err
	}
	return material.RefChannel(target, ch), nil
}
