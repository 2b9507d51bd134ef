// Package pattern provides the match/transform pattern algebra of CAMP.
//
// Pattern is a closed sum type. The variants are Const, Unary, Binary, Map,
// Assert, OrElse, It, LetIt, GetConstant, Env, LetEnv, Left, and Right.
//
// # Unary operators
//
// Every UnaryOperator declares a ParameterKind in the operator table:
//
//	ParameterNone:       no parameter           ACount (pit)
//	ParameterString:     one string             ADot "name" (pit)
//	ParameterStringList: non-empty string list  ARecProject ["a", "b"] (pit)
//
// The parameter is a tagged union (NoParameter, StringParameter,
// StringListParameter). NewUnary checks the supplied parameter against the
// operator's declared kind on every construction; a mismatch is an
// invalid-argument error. An operator without a legal parameter kind means
// the table is corrupted and yields an invalid-state error instead.
//
// NewUnaryValue accepts an untyped parameter (nil, string, []string, []any) for
// producers that carry parameters dynamically.
//
// # Fallback
//
// OrElse holds two patterns; the second is attempted only when the first
// produces no value. It renders as "do A or else B".
package pattern
