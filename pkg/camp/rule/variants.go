package rule

import (
	"qcert/camp/pkg/camp/ast"
	"qcert/camp/pkg/camp/pattern"
)

// When is rule_when: the continuation runs when the pattern matches.
type When struct {
	patternRule
}

// NewWhen returns the functional rule_when (p).
func NewWhen(p pattern.Pattern) (*When, error) {
	base, err := newPatternRule(ast.KindRuleWhen, p)
	if err != nil {
		return nil, err
	}
	return &When{base}, nil
}

// IsFunctional returns true while no continuation is attached.
func (w *When) IsFunctional() bool { return w.continuation == nil }

// Apply returns a new rule_when with operand as its continuation.
func (w *When) Apply(operand Rule) (Rule, error) {
	base, err := w.applied(operand)
	if err != nil {
		return nil, err
	}
	return &When{base}, nil
}

func (w *When) String() string { return Render(w) }

// Global is rule_global: the pattern is matched against the whole working
// memory rather than one element.
type Global struct {
	patternRule
}

// NewGlobal returns the functional rule_global (p).
func NewGlobal(p pattern.Pattern) (*Global, error) {
	base, err := newPatternRule(ast.KindRuleGlobal, p)
	if err != nil {
		return nil, err
	}
	return &Global{base}, nil
}

// IsFunctional returns true while no continuation is attached.
func (g *Global) IsFunctional() bool { return g.continuation == nil }

// Apply returns a new rule_global with operand as its continuation.
func (g *Global) Apply(operand Rule) (Rule, error) {
	base, err := g.applied(operand)
	if err != nil {
		return nil, err
	}
	return &Global{base}, nil
}

func (g *Global) String() string { return Render(g) }

// Not is rule_not: the continuation runs when the pattern does not match.
type Not struct {
	patternRule
}

// NewNot returns the functional rule_not (p).
func NewNot(p pattern.Pattern) (*Not, error) {
	base, err := newPatternRule(ast.KindRuleNot, p)
	if err != nil {
		return nil, err
	}
	return &Not{base}, nil
}

// IsFunctional returns true while no continuation is attached.
func (n *Not) IsFunctional() bool { return n.continuation == nil }

// Apply returns a new rule_not with operand as its continuation.
func (n *Not) Apply(operand Rule) (Rule, error) {
	base, err := n.applied(operand)
	if err != nil {
		return nil, err
	}
	return &Not{base}, nil
}

func (n *Not) String() string { return Render(n) }

// Return is rule_return, a terminal rule producing its pattern's result.
type Return struct {
	patternRule
}

// NewReturn returns rule_return (p).
func NewReturn(p pattern.Pattern) (*Return, error) {
	base, err := newPatternRule(ast.KindRuleReturn, p)
	if err != nil {
		return nil, err
	}
	return &Return{base}, nil
}

func (r *Return) String() string { return Render(r) }

// Match is rule_match, a terminal rule that matches its pattern against
// the input.
type Match struct {
	patternRule
}

// NewMatch returns rule_match (p).
func NewMatch(p pattern.Pattern) (*Match, error) {
	base, err := newPatternRule(ast.KindRuleMatch, p)
	if err != nil {
		return nil, err
	}
	return &Match{base}, nil
}

func (m *Match) String() string { return Render(m) }
