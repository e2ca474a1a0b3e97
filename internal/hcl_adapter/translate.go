// This file contains the logic for translating the HCL schema structs into
// the format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/schema"
)

// translateMaterial converts a material block and its node blocks into the
// agnostic model. Every problem found is reported, not only the first.
func translateMaterial(ctx context.Context, m *Material) (*config.Material, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx).With("material", m.Name)
	logger.Debug("Translating HCL material to internal config model.", "nodes", len(m.Nodes))

	var diags hcl.Diagnostics
	mat := &config.Material{Name: m.Name, Source: m.Output.Range().String()}

	out, outDiags := referenceFromExpr(m.Output)
	diags = append(diags, outDiags...)
	if out != nil {
		if out.Channel != "" {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid material output",
				Detail:   "The output must name a whole node, not a single channel of it.",
				Subject:  m.Output.Range().Ptr(),
			})
		}
		mat.Output = *out
	}

	seen := make(map[string]*Node, len(m.Nodes))
	for _, n := range m.Nodes {
		if prev, dup := seen[n.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate node name",
				Detail:   fmt.Sprintf("A node named %q is already declared in this material (kind %q).", n.Name, prev.Kind),
				Subject:  n.Body.MissingItemRange().Ptr(),
			})
			continue
		}
		seen[n.Name] = n

		node, nodeDiags := translateNode(n)
		diags = append(diags, nodeDiags...)
		mat.Nodes = append(mat.Nodes, node)
	}

	return mat, diags
}

// translateNode reads the property assignments of a node block in source order.
func translateNode(n *Node) (*config.Node, hcl.Diagnostics) {
	node := &config.Node{Kind: n.Kind, Name: n.Name, Source: n.Body.MissingItemRange().String()}

	attrs, diags := n.Body.JustAttributes()
	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	for _, attr := range ordered {
		prop := &config.Property{Name: attr.Name, Source: attr.Range.String()}

		if len(attr.Expr.Variables()) > 0 {
			ref, refDiags := referenceFromExpr(attr.Expr)
			diags = append(diags, refDiags...)
			prop.Ref = ref
		} else {
			v, valDiags := literalFromExpr(attr.Expr)
			diags = append(diags, valDiags...)
			prop.Literal = v
		}

		if prop.Ref != nil || prop.Literal != nil {
			node.Properties = append(node.Properties, prop)
		}
	}

	return node, diags
}

// translateBXDFDefinition converts a manifest block into a NodeDef.
func translateBXDFDefinition(b *BXDFDefinition) (*schema.NodeDef, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	def := &schema.NodeDef{Kind: b.Kind, Description: b.Description}

	for _, p := range b.Properties {
		var socketName string
		if d := gohcl.DecodeExpression(p.Socket, nil, &socketName); d.HasErrors() {
			diags = append(diags, d...)
			continue
		}
		socket, err := schema.ParseSocket(socketName)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid socket",
				Detail:   fmt.Sprintf("Property %q: %s. Supported sockets are color, float, vector and normal.", p.Name, err),
				Subject:  p.Socket.Range().Ptr(),
			})
			continue
		}

		prop := schema.PropertyDef{Name: p.Name, Socket: socket, Description: p.Description}
		if isExprDefined(p.Default) {
			v, valDiags := literalFromExpr(p.Default)
			diags = append(diags, valDiags...)
			prop.Default = v
		}
		def.Properties = append(def.Properties, prop)
	}

	return def, diags
}
