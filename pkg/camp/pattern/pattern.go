package pattern

import (
	"qcert/camp/pkg/camp/ast"
	"qcert/camp/pkg/camp/data"
	camperrors "qcert/camp/pkg/camp/errors"
)

// Pattern is a CAMP match/transform pattern.
type Pattern interface {
	ast.Node
	isPattern()
}

func requirePatterns(kind ast.Kind, operands ...Pattern) error {
	for i, p := range operands {
		if p == nil {
			return camperrors.InvalidArgument(kind, "operand %d is nil", i+1)
		}
	}
	return nil
}

// Const is a pattern that yields a constant data value.
type Const struct {
	value data.Data
}

// NewConst returns pconst(d).
func NewConst(d data.Data) (*Const, error) {
	if d == nil {
		return nil, camperrors.InvalidArgument(ast.KindPConst, "constant is nil")
	}
	return &Const{value: d}, nil
}

// Value returns the constant.
func (c *Const) Value() data.Data { return c.value }

func (*Const) isPattern()        {}
func (*Const) Kind() ast.Kind    { return ast.KindPConst }
func (*Const) Tag() string       { return ast.KindPConst.String() }
func (c *Const) Operands() []any { return []any{c.value} }
func (c *Const) String() string  { return ast.Render(c) }

// Binary applies a binary operator to the results of two patterns.
type Binary struct {
	operator BinaryOperator
	operand1 Pattern
	operand2 Pattern
}

// NewBinary returns pbinop(op, p1, p2).
func NewBinary(op BinaryOperator, p1, p2 Pattern) (*Binary, error) {
	if !op.IsValid() {
		return nil, camperrors.InvalidArgument(ast.KindPBinop, "unknown binary operator %s", op).
			WithOperator(op.String())
	}
	if err := requirePatterns(ast.KindPBinop, p1, p2); err != nil {
		return nil, err
	}
	return &Binary{operator: op, operand1: p1, operand2: p2}, nil
}

// Operator returns the binary operator.
func (b *Binary) Operator() BinaryOperator { return b.operator }

// Operand1 returns the left operand.
func (b *Binary) Operand1() Pattern { return b.operand1 }

// Operand2 returns the right operand.
func (b *Binary) Operand2() Pattern { return b.operand2 }

func (*Binary) isPattern()        {}
func (*Binary) Kind() ast.Kind    { return ast.KindPBinop }
func (*Binary) Tag() string       { return ast.KindPBinop.String() }
func (b *Binary) Operands() []any { return []any{b.operator, b.operand1, b.operand2} }
func (b *Binary) String() string  { return ast.Render(b) }

// Map applies a pattern to every element of the current collection.
type Map struct {
	operand Pattern
}

// NewMap returns pmap(p).
func NewMap(p Pattern) (*Map, error) {
	if err := requirePatterns(ast.KindPMap, p); err != nil {
		return nil, err
	}
	return &Map{operand: p}, nil
}

// Operand returns the mapped pattern.
func (m *Map) Operand() Pattern { return m.operand }

func (*Map) isPattern()        {}
func (*Map) Kind() ast.Kind    { return ast.KindPMap }
func (*Map) Tag() string       { return ast.KindPMap.String() }
func (m *Map) Operands() []any { return []any{m.operand} }
func (m *Map) String() string  { return ast.Render(m) }

// Assert fails the match unless its pattern yields true.
type Assert struct {
	operand Pattern
}

// NewAssert returns passert(p).
func NewAssert(p Pattern) (*Assert, error) {
	if err := requirePatterns(ast.KindPAssert, p); err != nil {
		return nil, err
	}
	return &Assert{operand: p}, nil
}

// Operand returns the asserted pattern.
func (a *Assert) Operand() Pattern { return a.operand }

func (*Assert) isPattern()        {}
func (*Assert) Kind() ast.Kind    { return ast.KindPAssert }
func (*Assert) Tag() string       { return ast.KindPAssert.String() }
func (a *Assert) Operands() []any { return []any{a.operand} }
func (a *Assert) String() string  { return ast.Render(a) }

// It refers to the value currently being matched.
type It struct{}

// NewIt returns pit.
func NewIt() *It { return &It{} }

func (*It) isPattern()       {}
func (*It) Kind() ast.Kind   { return ast.KindPIt }
func (*It) Tag() string      { return ast.KindPIt.String() }
func (*It) Operands() []any  { return nil }
func (i *It) String() string { return ast.Render(i) }

// LetIt evaluates its second pattern with it bound to the result of the first.
type LetIt struct {
	operand1 Pattern
	operand2 Pattern
}

// NewLetIt returns pletIt(p1, p2).
func NewLetIt(p1, p2 Pattern) (*LetIt, error) {
	if err := requirePatterns(ast.KindPLetIt, p1, p2); err != nil {
		return nil, err
	}
	return &LetIt{operand1: p1, operand2: p2}, nil
}

// Operand1 returns the binding pattern.
func (l *LetIt) Operand1() Pattern { return l.operand1 }

// Operand2 returns the body pattern.
func (l *LetIt) Operand2() Pattern { return l.operand2 }

func (*LetIt) isPattern()        {}
func (*LetIt) Kind() ast.Kind    { return ast.KindPLetIt }
func (*LetIt) Tag() string       { return ast.KindPLetIt.String() }
func (l *LetIt) Operands() []any { return []any{l.operand1, l.operand2} }
func (l *LetIt) String() string  { return ast.Render(l) }

// GetConstant reads a named global constant.
type GetConstant struct {
	name string
}

// NewGetConstant returns pgetConstant(name). The name must not be empty.
func NewGetConstant(name string) (*GetConstant, error) {
	if name == "" {
		return nil, camperrors.InvalidArgument(ast.KindPGetConstant, "constant name is empty")
	}
	return &GetConstant{name: name}, nil
}

// Name returns the constant name.
func (g *GetConstant) Name() string { return g.name }

func (*GetConstant) isPattern()        {}
func (*GetConstant) Kind() ast.Kind    { return ast.KindPGetConstant }
func (*GetConstant) Tag() string       { return ast.KindPGetConstant.String() }
func (g *GetConstant) Operands() []any { return []any{g.name} }
func (g *GetConstant) String() string  { return ast.Render(g) }

// Env refers to the current binding environment.
type Env struct{}

// NewEnv returns penv.
func NewEnv() *Env { return &Env{} }

func (*Env) isPattern()       {}
func (*Env) Kind() ast.Kind   { return ast.KindPEnv }
func (*Env) Tag() string      { return ast.KindPEnv.String() }
func (*Env) Operands() []any  { return nil }
func (e *Env) String() string { return ast.Render(e) }

// LetEnv evaluates its second pattern in the environment extended with the
// record produced by the first.
type LetEnv struct {
	operand1 Pattern
	operand2 Pattern
}

// NewLetEnv returns pletEnv(p1, p2).
func NewLetEnv(p1, p2 Pattern) (*LetEnv, error) {
	if err := requirePatterns(ast.KindPLetEnv, p1, p2); err != nil {
		return nil, err
	}
	return &LetEnv{operand1: p1, operand2: p2}, nil
}

// Operand1 returns the binding pattern.
func (l *LetEnv) Operand1() Pattern { return l.operand1 }

// Operand2 returns the body pattern.
func (l *LetEnv) Operand2() Pattern { return l.operand2 }

func (*LetEnv) isPattern()        {}
func (*LetEnv) Kind() ast.Kind    { return ast.KindPLetEnv }
func (*LetEnv) Tag() string       { return ast.KindPLetEnv.String() }
func (l *LetEnv) Operands() []any { return []any{l.operand1, l.operand2} }
func (l *LetEnv) String() string  { return ast.Render(l) }

// Left matches the left injection of a sum value.
type Left struct{}

// NewLeft returns pleft.
func NewLeft() *Left { return &Left{} }

func (*Left) isPattern()       {}
func (*Left) Kind() ast.Kind   { return ast.KindPLeft }
func (*Left) Tag() string      { return ast.KindPLeft.String() }
func (*Left) Operands() []any  { return nil }
func (l *Left) String() string { return ast.Render(l) }

// Right matches the right injection of a sum value.
type Right struct{}

// NewRight returns pright.
func NewRight() *Right { return &Right{} }

func (*Right) isPattern()       {}
func (*Right) Kind() ast.Kind   { return ast.KindPRight }
func (*Right) Tag() string      { return ast.KindPRight.String() }
func (*Right) Operands() []any  { return nil }
func (r *Right) String() string { return ast.Render(r) }
