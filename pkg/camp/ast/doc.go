// Package ast provides the shared node protocol for the CAMP calculus
// (Calculus of Aggregating Matching Patterns).
//
// CAMP trees are built from three closed node families:
//
// Data: literal values (booleans, naturals, strings, collections, records, ...)
//
// Pattern: match/transform operators over data and over sub-patterns
//
// Rule: declarative rules built from a pattern and an optional continuation
//
// Every node, whatever its family, implements Node:
//
//	type Node interface {
//	    Kind() Kind      // closed discriminant, fixed at construction
//	    Tag() string     // canonical keyword for the kind ("dbool", "punop", ...)
//	    Operands() []any // ordered sub-components
//	    String() string  // canonical rendering
//	}
//
// # Dispatch
//
// Consumers switch on Kind and then type-assert to the concrete variant in the
// family package:
//
//	switch n.Kind() {
//	case ast.KindPOrElse:
//	    p := n.(*pattern.OrElse)
//	    ...
//	case ast.KindRuleWhen:
//	    ...
//	}
//
// Walk and Inspect traverse the operands of a node that are themselves nodes.
//
// # Rendering
//
// Render produces the generic composite form tag(op1, op2, ...). Variants with a
// dedicated canonical form (porElse, punop, the rules) override String; all
// others delegate to Render.
//
// # Immutability
//
// Nodes are immutable after construction and are safe to share between
// goroutines without locking. Operands returns a fresh slice on every call.
package ast
