package config

import (
	"github.com/specialistvlad/matgraph/internal/schema"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// Model is the unified, format-agnostic representation of everything a set of
// authoring files declares: BXDF kind manifests and materials.
type Model struct {
	// BXDFs are kind definitions declared next to the materials. They are
	// merged into the registry before materials are built.
	BXDFs     []*schema.NodeDef
	Materials []*Material
}

// Material is the format-agnostic representation of a `material` block.
type Material struct {
	Name   string
	Output Reference
	Nodes  []*Node
	Source string
}

// Node is one node declaration inside a material.
type Node struct {
	Kind       string
	Name       string
	Properties []*Property
	Source     string
}

// Property is a single property assignment. Exactly one of Literal and Ref
// is set.
type Property struct {
	Name    string
	Literal *shading.Value
	Ref     *Reference
	Source  string
}

// Reference names another node's output, optionally a single channel of it.
type Reference struct {
	Node    string
	Channel string
	Source  string
}

// Material returns the material with the given name, or nil.
func (m *Model) Material(name string) *Material {
	for _, mat := range m.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}
