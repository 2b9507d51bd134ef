// Camp inspects and exercises the CAMP (Calculus of Aggregating Matching
// Patterns) AST layer.
//
// Usage:
//
//	# List unary and binary pattern operators with their parameter kinds
//	camp operators
//
//	# Build a unary pattern over pit and print its canonical rendering
//	camp unop --op ADot --param name
//
//	# Verify the operator tables
//	camp check
//
//	# Show version information
//	camp version
package main

func main() {
	Execute()
}
