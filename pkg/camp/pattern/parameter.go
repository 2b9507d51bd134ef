package pattern

import (
	"fmt"
	"strconv"

	"qcert/camp/pkg/camp/ast"
)

// Parameter is the argument of a unary operator: exactly one of
// NoParameter, StringParameter, or StringListParameter.
type Parameter interface {
	// Kind returns the shape of the parameter.
	Kind() ParameterKind

	// String returns the parameter as it appears in a rendering, without the
	// surrounding spaces.
	String() string

	isParameter()
}

// NoParameter is the absent parameter.
type NoParameter struct{}

func (NoParameter) Kind() ParameterKind { return ParameterNone }
func (NoParameter) String() string      { return "" }
func (NoParameter) isParameter()        {}

// StringParameter is a single string parameter.
type StringParameter string

func (StringParameter) Kind() ParameterKind { return ParameterString }
func (p StringParameter) String() string    { return strconv.Quote(string(p)) }
func (StringParameter) isParameter()        {}

// StringListParameter is an ordered list of strings.
type StringListParameter []string

func (StringListParameter) Kind() ParameterKind { return ParameterStringList }
func (p StringListParameter) String() string    { return ast.FormatStringList(p) }
func (StringListParameter) isParameter()        {}

// formatParameter returns the parameter text placed between the operator and
// the parenthesized operand.
func formatParameter(p Parameter) string {
	if p.Kind() == ParameterNone {
		return ""
	}
	return " " + p.String() + " "
}

// parameterOf maps a dynamically typed value to a Parameter.
// It reports false for values that have no parameter shape.
func parameterOf(v any) (Parameter, bool) {
	switch p := v.(type) {
	case nil:
		return NoParameter{}, true
	case Parameter:
		return p, true
	case string:
		return StringParameter(p), true
	case []string:
		return StringListParameter(append([]string(nil), p...)), true
	case []any:
		// The first element decides the shape. Later elements are kept in
		// their printed form.
		if len(p) > 0 {
			if _, ok := p[0].(string); !ok {
				return nil, false
			}
		}
		list := make(StringListParameter, len(p))
		for i, e := range p {
			list[i] = fmt.Sprint(e)
		}
		return list, true
	default:
		return nil, false
	}
}
