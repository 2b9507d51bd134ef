package pattern

import "qcert/camp/pkg/camp/ast"

// OrElse is the fallback combinator: the second pattern is attempted only
// when the first produces no value. Operand order is significant.
type OrElse struct {
	operand1 Pattern
	operand2 Pattern
}

// NewOrElse returns porElse(first, fallback).
func NewOrElse(first, fallback Pattern) (*OrElse, error) {
	if err := requirePatterns(ast.KindPOrElse, first, fallback); err != nil {
		return nil, err
	}
	return &OrElse{operand1: first, operand2: fallback}, nil
}

// Operand1 returns the pattern attempted first.
func (o *OrElse) Operand1() Pattern { return o.operand1 }

// Operand2 returns the fallback pattern.
func (o *OrElse) Operand2() Pattern { return o.operand2 }

func (*OrElse) isPattern()        {}
func (*OrElse) Kind() ast.Kind    { return ast.KindPOrElse }
func (*OrElse) Tag() string       { return ast.KindPOrElse.String() }
func (o *OrElse) Operands() []any { return []any{o.operand1, o.operand2} }

func (o *OrElse) String() string {
	return "do " + o.operand1.String() + " or else " + o.operand2.String()
}
