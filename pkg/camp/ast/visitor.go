package ast

// Visitor provides an interface for traversing CAMP trees.
// Implement this interface to perform operations on nodes
// (lowering, analysis, pretty-printing, etc.).
type Visitor interface {
	Visit(Node) error
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(Node) error

// Visit calls f(n).
func (f VisitorFunc) Visit(n Node) error {
	return f(n)
}

// Walk traverses the tree rooted at n in pre-order, calling the visitor for n
// and then for every operand that is itself a node, left to right.
// It returns the first error encountered, or nil if traversal completes.
func Walk(n Node, visitor Visitor) error {
	if n == nil {
		return nil
	}
	if err := visitor.Visit(n); err != nil {
		return err
	}

	for _, op := range n.Operands() {
		child, ok := op.(Node)
		if !ok {
			continue
		}
		if err := Walk(child, visitor); err != nil {
			return err
		}
	}

	return nil
}

// Inspect traverses the tree rooted at n in pre-order. If f returns false,
// the operands of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, op := range n.Operands() {
		if child, ok := op.(Node); ok {
			Inspect(child, f)
		}
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}
