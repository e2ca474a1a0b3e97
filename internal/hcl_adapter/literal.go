package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/matgraph/internal/config"
	"github.com/specialistvlad/matgraph/internal/material"
	"github.com/specialistvlad/matgraph/internal/shading"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// referenceRoot is the variable every node reference starts with.
const referenceRoot = "node"

// isExprDefined checks if an HCL expression was actually present in the source
// code. The decoder populates omitted optional attributes with zero-width
// placeholder expressions, so a nil check alone is insufficient.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// literalFromExpr evaluates a constant expression into a Value. A number is
// broadcast to every component; a list of one to four numbers fills the
// leading components and leaves the rest at zero.
func literalFromExpr(expr hcl.Expression) (*shading.Value, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	v, err := valueFromCty(val)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid literal",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return &v, nil
}

func valueFromCty(val cty.Value) (shading.Value, error) {
	if val.IsNull() {
		return shading.Value{}, fmt.Errorf("a literal must not be null")
	}
	if !val.IsWhollyKnown() {
		return shading.Value{}, fmt.Errorf("a literal must be known when the file is loaded")
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		var f float32
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return shading.Value{}, err
		}
		return shading.Scalar(f), nil

	case ty.IsTupleType() || ty.IsListType():
		list, err := convert.Convert(val, cty.List(cty.Number))
		if err != nil {
			return shading.Value{}, fmt.Errorf("every component must be a number: %w", err)
		}
		var comps []float32
		if err := gocty.FromCtyValue(list, &comps); err != nil {
			return shading.Value{}, err
		}
		return shading.FromSlice(comps)

	default:
		return shading.Value{}, fmt.Errorf("expected a number or a list of numbers, got %s", ty.FriendlyName())
	}
}

// referenceFromExpr parses `node.<name>` or `node.<name>.<channel>`.
func referenceFromExpr(expr hcl.Expression) (*config.Reference, hcl.Diagnostics) {
	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid node reference",
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		}}
	}

	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return nil, invalid("A reference must have the form node.<name> or node.<name>.<channel>. Arithmetic on references is not supported.")
	}
	if traversal.RootName() != referenceRoot || len(traversal) < 2 || len(traversal) > 3 {
		return nil, invalid("A reference must have the form node.<name> or node.<name>.<channel>.")
	}

	name, ok := traversal[1].(hcl.TraverseAttr)
	if !ok {
		return nil, invalid("The node name must be an identifier.")
	}
	ref := &config.Reference{Node: name.Name, Source: expr.Range().String()}

	if len(traversal) == 3 {
		ch, ok := traversal[2].(hcl.TraverseAttr)
		if !ok {
			return nil, invalid("The channel must be one of r, g, b, a or x, y, z, w.")
		}
		if _, err := material.ParseChannel(ch.Name); err != nil {
			return nil, invalid(fmt.Sprintf("%s. Use one of r, g, b, a or x, y, z, w.", err))
		}
		ref.Channel = ch.Name
	}

	return ref, nil
}
