package pattern

import (
	"fmt"

	"qcert/camp/pkg/camp/ast"
	camperrors "qcert/camp/pkg/camp/errors"
)

// ParameterKind classifies the shape of argument a unary operator accepts.
// The zero value is not a legal kind.
type ParameterKind int

const (
	ParameterNone ParameterKind = iota + 1
	ParameterString
	ParameterStringList
)

// String returns the parameter kind name.
func (k ParameterKind) String() string {
	switch k {
	case ParameterNone:
		return "None"
	case ParameterString:
		return "String"
	case ParameterStringList:
		return "StringList"
	default:
		return fmt.Sprintf("ParameterKind(%d)", int(k))
	}
}

// IsValid returns true if k is one of the three legal kinds.
func (k ParameterKind) IsValid() bool {
	return k == ParameterNone || k == ParameterString || k == ParameterStringList
}

// UnaryOperator is an operator usable in a punop pattern.
type UnaryOperator int

const (
	AIdOp UnaryOperator = iota
	AUArith
	ANeg
	AColl
	ASingleton
	AFlatten
	ADistinct
	AOrderBy
	ARec
	ADot
	ARecRemove
	ARecProject
	ACount
	ASum
	ANumMin
	ANumMax
	AArithMean
	AToString
	ALike
	ALeft
	ARight
	ABrand
	AUnbrand
	ACast
)

// UnaryOperatorInfo is one row of the unary operator table.
type UnaryOperatorInfo struct {
	Operator      UnaryOperator `json:"-"`
	Name          string        `json:"name"`
	ParameterKind ParameterKind `json:"-"`
	Parameter     string        `json:"parameter"`
}

type unaryEntry struct {
	name string
	kind ParameterKind
}

var unaryTable = []unaryEntry{
	AIdOp:       {"AIdOp", ParameterNone},
	AUArith:     {"AUArith", ParameterNone},
	ANeg:        {"ANeg", ParameterNone},
	AColl:       {"AColl", ParameterNone},
	ASingleton:  {"ASingleton", ParameterNone},
	AFlatten:    {"AFlatten", ParameterNone},
	ADistinct:   {"ADistinct", ParameterNone},
	AOrderBy:    {"AOrderBy", ParameterStringList},
	ARec:        {"ARec", ParameterString},
	ADot:        {"ADot", ParameterString},
	ARecRemove:  {"ARecRemove", ParameterString},
	ARecProject: {"ARecProject", ParameterStringList},
	ACount:      {"ACount", ParameterNone},
	ASum:        {"ASum", ParameterNone},
	ANumMin:     {"ANumMin", ParameterNone},
	ANumMax:     {"ANumMax", ParameterNone},
	AArithMean:  {"AArithMean", ParameterNone},
	AToString:   {"AToString", ParameterNone},
	ALike:       {"ALike", ParameterString},
	ALeft:       {"ALeft", ParameterNone},
	ARight:      {"ARight", ParameterNone},
	ABrand:      {"ABrand", ParameterStringList},
	AUnbrand:    {"AUnbrand", ParameterNone},
	ACast:       {"ACast", ParameterStringList},
}

func (op UnaryOperator) entry() (unaryEntry, bool) {
	if op < 0 || int(op) >= len(unaryTable) {
		return unaryEntry{}, false
	}
	return unaryTable[op], true
}

// String returns the operator name, as used in the canonical rendering.
func (op UnaryOperator) String() string {
	if e, ok := op.entry(); ok {
		return e.name
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}

// ParameterKind returns the operator's declared parameter kind.
// Operators outside the table report the zero (illegal) kind.
func (op UnaryOperator) ParameterKind() ParameterKind {
	e, _ := op.entry()
	return e.kind
}

// UnaryOperators returns the unary operator table in declaration order.
func UnaryOperators() []UnaryOperatorInfo {
	infos := make([]UnaryOperatorInfo, len(unaryTable))
	for i, e := range unaryTable {
		infos[i] = UnaryOperatorInfo{
			Operator:      UnaryOperator(i),
			Name:          e.name,
			ParameterKind: e.kind,
			Parameter:     e.kind.String(),
		}
	}
	return infos
}

// LookupUnaryOperator returns the operator with the given name.
func LookupUnaryOperator(name string) (UnaryOperator, error) {
	names := make([]string, len(unaryTable))
	for i, e := range unaryTable {
		if e.name == name {
			return UnaryOperator(i), nil
		}
		names[i] = e.name
	}
	return 0, camperrors.InvalidArgument(ast.KindPUnop, "unknown unary operator %q", name).
		WithOperator(name).
		WithSuggestion(camperrors.SuggestName(name, names))
}

// CheckUnaryOperators verifies the integrity of the unary operator table:
// every entry has a name, a legal parameter kind, and a unique name.
func CheckUnaryOperators() error {
	return checkUnaryTable(unaryTable)
}

func checkUnaryTable(table []unaryEntry) error {
	errList := camperrors.NewErrorList()
	seen := make(map[string]int, len(table))

	for i, e := range table {
		if e.name == "" {
			errList.AddError(camperrors.ErrorTypeInvalidState,
				fmt.Sprintf("unary operator %d has no name", i), "")
			continue
		}
		if !e.kind.IsValid() {
			errList.AddError(camperrors.ErrorTypeInvalidState,
				fmt.Sprintf("unary operator %s declares illegal parameter kind %s", e.name, e.kind), e.name)
		}
		if prev, ok := seen[e.name]; ok {
			errList.AddError(camperrors.ErrorTypeInvalidState,
				fmt.Sprintf("unary operator name %s used by entries %d and %d", e.name, prev, i), e.name)
		}
		seen[e.name] = i
	}

	return errList.ToError()
}

// BinaryOperator is an operator usable in a pbinop pattern.
type BinaryOperator int

const (
	AEq BinaryOperator = iota
	AConcat
	AMergeConcat
	AAnd
	AOr
	ALt
	ALe
	AUnion
	AMinus
	AMin
	AMax
	AContains
	ASConcat
	ABArith
)

var binaryNames = []string{
	AEq:          "AEq",
	AConcat:      "AConcat",
	AMergeConcat: "AMergeConcat",
	AAnd:         "AAnd",
	AOr:          "AOr",
	ALt:          "ALt",
	ALe:          "ALe",
	AUnion:       "AUnion",
	AMinus:       "AMinus",
	AMin:         "AMin",
	AMax:         "AMax",
	AContains:    "AContains",
	ASConcat:     "ASConcat",
	ABArith:      "ABArith",
}

// IsValid returns true if op is in the binary operator table.
func (op BinaryOperator) IsValid() bool {
	return op >= 0 && int(op) < len(binaryNames)
}

// String returns the operator name.
func (op BinaryOperator) String() string {
	if !op.IsValid() {
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
	return binaryNames[op]
}

// BinaryOperators returns every binary operator in declaration order.
func BinaryOperators() []BinaryOperator {
	ops := make([]BinaryOperator, len(binaryNames))
	for i := range binaryNames {
		ops[i] = BinaryOperator(i)
	}
	return ops
}

// LookupBinaryOperator returns the operator with the given name.
func LookupBinaryOperator(name string) (BinaryOperator, error) {
	for i, n := range binaryNames {
		if n == name {
			return BinaryOperator(i), nil
		}
	}
	return 0, camperrors.InvalidArgument(ast.KindPBinop, "unknown binary operator %q", name).
		WithOperator(name).
		WithSuggestion(camperrors.SuggestName(name, binaryNames))
}
