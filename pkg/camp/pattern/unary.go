package pattern

import (
	"qcert/camp/pkg/camp/ast"
	camperrors "qcert/camp/pkg/camp/errors"
)

// Unary applies a unary operator, with an optional operator-specific
// parameter, to the result of one pattern.
type Unary struct {
	operator  UnaryOperator
	parameter Parameter
	operand   Pattern
}

// NewUnary returns punop(op, param, operand).
//
// The parameter must match op's declared parameter kind: absent (nil or
// NoParameter) for ParameterNone, a StringParameter for ParameterString, and a
// non-empty StringListParameter for ParameterStringList. A mismatch is an
// invalid-argument error. If op declares no legal kind, the operator table is
// corrupted and an invalid-state error is returned.
func NewUnary(op UnaryOperator, param Parameter, operand Pattern) (*Unary, error) {
	if param == nil {
		param = NoParameter{}
	}
	if err := checkParameter(op, param); err != nil {
		return nil, err
	}
	if operand == nil {
		return nil, camperrors.InvalidArgument(ast.KindPUnop, "operand is nil").WithOperator(op.String())
	}

	if list, ok := param.(StringListParameter); ok {
		param = append(StringListParameter(nil), list...)
	}
	return &Unary{operator: op, parameter: param, operand: operand}, nil
}

// NewUnaryValue is NewUnary for a dynamically typed parameter: nil, a string,
// a []string, or a non-empty []any whose first element is a string. Any other
// value fails the parameter check for op.
func NewUnaryValue(op UnaryOperator, param any, operand Pattern) (*Unary, error) {
	p, ok := parameterOf(param)
	if !ok {
		if !op.ParameterKind().IsValid() {
			return nil, corruptedOperator(op)
		}
		return nil, parameterMismatch(op)
	}
	return NewUnary(op, p, operand)
}

// MustUnary is like NewUnary but panics if the node cannot be constructed.
// It is intended for statically known operators and parameters.
func MustUnary(op UnaryOperator, param Parameter, operand Pattern) *Unary {
	u, err := NewUnary(op, param, operand)
	if err != nil {
		panic(err)
	}
	return u
}

func checkParameter(op UnaryOperator, param Parameter) error {
	switch op.ParameterKind() {
	case ParameterNone:
		if param.Kind() != ParameterNone {
			return parameterMismatch(op)
		}
		return nil
	case ParameterString:
		if param.Kind() == ParameterString {
			return nil
		}
		return parameterMismatch(op)
	case ParameterStringList:
		if list, ok := param.(StringListParameter); ok && len(list) > 0 {
			return nil
		}
		return parameterMismatch(op)
	default:
		return corruptedOperator(op)
	}
}

func parameterMismatch(op UnaryOperator) *camperrors.Error {
	var err *camperrors.Error
	switch op.ParameterKind() {
	case ParameterNone:
		err = camperrors.InvalidArgument(ast.KindPUnop, "no parameter allowed with unary operator %s", op)
	case ParameterString:
		err = camperrors.InvalidArgument(ast.KindPUnop, "scalar string parameter required with unary operator %s", op)
	default:
		err = camperrors.InvalidArgument(ast.KindPUnop, "non-empty string list parameter required with unary operator %s", op)
	}
	return err.WithOperator(op.String())
}

func corruptedOperator(op UnaryOperator) *camperrors.Error {
	return camperrors.InvalidState(ast.KindPUnop, "unary operator %s has no legal parameter kind (got %s)",
		op, op.ParameterKind()).WithOperator(op.String())
}

// Operator returns the unary operator.
func (u *Unary) Operator() UnaryOperator { return u.operator }

// Operand returns the pattern the operator is applied to.
func (u *Unary) Operand() Pattern { return u.operand }

// Parameter returns the operator parameter. It is NoParameter for operators
// that take none.
func (u *Unary) Parameter() Parameter {
	if list, ok := u.parameter.(StringListParameter); ok {
		return append(StringListParameter(nil), list...)
	}
	return u.parameter
}

// StringParameter returns the string parameter, if the stored parameter is a
// single string.
func (u *Unary) StringParameter() (string, bool) {
	s, ok := u.parameter.(StringParameter)
	return string(s), ok
}

// StringListParameter returns a copy of the string list parameter, or nil if
// the stored parameter is not a list.
func (u *Unary) StringListParameter() []string {
	list, ok := u.parameter.(StringListParameter)
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

func (*Unary) isPattern()     {}
func (*Unary) Kind() ast.Kind { return ast.KindPUnop }
func (*Unary) Tag() string    { return ast.KindPUnop.String() }

// Operands returns the operator, the parameter, and the operand pattern.
func (u *Unary) Operands() []any {
	return []any{u.operator, u.Parameter(), u.operand}
}

func (u *Unary) String() string {
	return u.operator.String() + formatParameter(u.parameter) + "(" + u.operand.String() + ")"
}
