package ast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Node is the protocol shared by every data, pattern, and rule node.
type Node interface {
	// Kind returns the node's discriminant. It never changes after construction.
	Kind() Kind

	// Tag returns the canonical keyword for the node's kind.
	Tag() string

	// Operands returns the ordered sub-components of the node. The slice is a
	// fresh copy; elements are nodes, scalars, or small value objects such as
	// operators and parameters.
	Operands() []any

	// String returns the canonical rendering of the node.
	String() string
}

// Render returns the generic composite rendering of n: its tag followed by its
// formatted operands in parentheses, or the bare tag when it has none.
func Render(n Node) string {
	operands := n.Operands()
	if len(operands) == 0 {
		return n.Tag()
	}

	var sb strings.Builder
	sb.WriteString(n.Tag())
	sb.WriteString("(")
	for i, op := range operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatOperand(op))
	}
	sb.WriteString(")")
	return sb.String()
}

// FormatOperand renders a single operand.
// Nodes use their own rendering, strings are quoted, string lists are
// bracketed and comma-joined, and anything else uses its natural form.
func FormatOperand(op any) string {
	switch v := op.(type) {
	case nil:
		return "<nil>"
	case Node:
		return v.String()
	case string:
		return strconv.Quote(v)
	case []string:
		return FormatStringList(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatStringList renders a list as ["a", "b", ...].
func FormatStringList(list []string) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, s := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(s))
	}
	sb.WriteString("]")
	return sb.String()
}

// Equal reports whether a and b are structurally equal: same kind and
// pairwise-equal operands. Node operands are compared recursively.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	aops, bops := a.Operands(), b.Operands()
	if len(aops) != len(bops) {
		return false
	}
	for i := range aops {
		if !operandEqual(aops[i], bops[i]) {
			return false
		}
	}
	return true
}

func operandEqual(a, b any) bool {
	an, aIsNode := a.(Node)
	bn, bIsNode := b.(Node)
	if aIsNode || bIsNode {
		return aIsNode && bIsNode && Equal(an, bn)
	}
	return reflect.DeepEqual(a, b)
}
