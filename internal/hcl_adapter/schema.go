package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	BXDFs     []*BXDFDefinition `hcl:"bxdf,block"`
	Materials []*Material       `hcl:"material,block"`
	Remain    hcl.Body          `hcl:",remain"`
}

// BXDFDefinition is the HCL shape of a `bxdf "<kind>"` manifest block.
type BXDFDefinition struct {
	Kind        string                `hcl:"kind,label"`
	Description string                `hcl:"description,optional"`
	Properties  []*PropertyDefinition `hcl:"property,block"`
}

// PropertyDefinition is one `property "<name>"` block of a manifest.
type PropertyDefinition struct {
	Name        string         `hcl:"name,label"`
	Socket      hcl.Expression `hcl:"socket"`
	Description string         `hcl:"description,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
}

// Material is the HCL shape of a `material "<name>"` block.
type Material struct {
	Name   string         `hcl:"name,label"`
	Output hcl.Expression `hcl:"output"`
	Nodes  []*Node        `hcl:"node,block"`
}

// Node is a `node "<kind>" "<name>"` block. Its body holds nothing but
// property assignments, which are read with JustAttributes.
type Node struct {
	Kind string   `hcl:"kind,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}
