package material

import (
	"errors"
	"fmt"
	"strings"
)

// Structural errors.
var (
	ErrMissingBinding    = errors.New("required property is not bound")
	ErrDanglingReference = errors.New("reference to a node that does not exist")
	ErrCycle             = errors.New("reference cycle")
	ErrDepthExceeded     = errors.New("graph is nested too deeply")
	ErrUnknownProperty   = errors.New("unknown property")
)

// Type-consistency errors.
var (
	ErrBXDFOperand      = errors.New("numeric property bound to a BXDF-typed node")
	ErrMultiplyBothBXDF = errors.New("multiply has two BXDF-typed operands")
	ErrMixedSources     = errors.New("mixes a BXDF-typed source with a numeric node")
)

// ErrFrozen is returned when mutating a graph that backs a material.
var ErrFrozen = errors.New("graph is frozen")

// ErrNoRoot is returned when a material has no output node.
var ErrNoRoot = errors.New("material has no output node")

// ValidationError attributes one problem to a node and, where applicable, to
// one of its properties.
type ValidationError struct {
	Node     string
	Kind     string
	Property string
	// Detail adds context such as the referenced node or the cycle path.
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "node %q (%s)", e.Node, e.Kind)
	if e.Property != "" {
		fmt.Fprintf(&sb, " property %q", e.Property)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Structural reports whether the error is a structural rather than a
// type-consistency problem.
func (e *ValidationError) Structural() bool {
	return errors.Is(e.Err, ErrMissingBinding) ||
		errors.Is(e.Err, ErrDanglingReference) ||
		errors.Is(e.Err, ErrCycle) ||
		errors.Is(e.Err, ErrDepthExceeded) ||
		errors.Is(e.Err, ErrUnknownProperty)
}

// ValidationErrors is every problem found while validating one material, in
// traversal order.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	if len(es) == 1 {
		return "material validation failed: " + es[0].Error()
	}
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("material validation failed with %d errors:\n- %s", len(es), strings.Join(msgs, "\n- "))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (es ValidationErrors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}
