package rule

import (
	"strings"

	"qcert/camp/pkg/camp/ast"
	camperrors "qcert/camp/pkg/camp/errors"
	"qcert/camp/pkg/camp/pattern"
)

// ContinuationSeparator joins a rule to its continuation in renderings.
const ContinuationSeparator = " ;; "

// Rule is a CAMP rule.
type Rule interface {
	ast.Node

	// Pattern returns the rule's pattern.
	Pattern() pattern.Pattern

	// Continuation returns the attached continuation, if any.
	Continuation() (Rule, bool)

	isRule()
}

// Functional is a rule that accepts a continuation.
type Functional interface {
	Rule

	// IsFunctional returns true while no continuation is attached.
	IsFunctional() bool

	// Apply returns a new rule with this rule's pattern and operand as its
	// continuation. The receiver is not modified.
	Apply(operand Rule) (Rule, error)
}

// patternRule is the state shared by every rule variant.
type patternRule struct {
	kind         ast.Kind
	pattern      pattern.Pattern
	continuation Rule
}

func newPatternRule(kind ast.Kind, p pattern.Pattern) (patternRule, error) {
	if p == nil {
		return patternRule{}, camperrors.InvalidArgument(kind, "pattern is nil")
	}
	return patternRule{kind: kind, pattern: p}, nil
}

// applied returns a copy of r with operand attached.
func (r *patternRule) applied(operand Rule) (patternRule, error) {
	if operand == nil {
		return patternRule{}, camperrors.InvalidArgument(r.kind, "operand rule is nil")
	}
	// A rule is functional until applied; replacing a continuation would
	// make an applied rule functional again.
	if r.continuation != nil {
		return patternRule{}, camperrors.InvalidArgument(r.kind, "rule is already applied")
	}
	return patternRule{kind: r.kind, pattern: r.pattern, continuation: operand}, nil
}

func (r *patternRule) isRule()                  {}
func (r *patternRule) Kind() ast.Kind           { return r.kind }
func (r *patternRule) Tag() string              { return r.kind.String() }
func (r *patternRule) Pattern() pattern.Pattern { return r.pattern }

func (r *patternRule) Continuation() (Rule, bool) {
	return r.continuation, r.continuation != nil
}

// Operands returns the pattern, followed by the continuation when present.
func (r *patternRule) Operands() []any {
	if r.continuation == nil {
		return []any{r.pattern}
	}
	return []any{r.pattern, r.continuation}
}

// Render returns the canonical rendering of a rule: tag (pattern), followed
// by the continuation when one is attached.
func Render(r Rule) string {
	operands := r.Operands()

	var sb strings.Builder
	sb.WriteString(r.Tag())
	sb.WriteString(" (")
	sb.WriteString(ast.FormatOperand(operands[0]))
	sb.WriteString(")")
	for _, op := range operands[1:] {
		sb.WriteString(ContinuationSeparator)
		sb.WriteString(ast.FormatOperand(op))
	}
	return sb.String()
}

// Chain folds rules right to left into one rule: every rule but the last must
// be an unapplied Functional rule, and becomes applied to the chain after it.
func Chain(rules ...Rule) (Rule, error) {
	if len(rules) == 0 {
		return nil, camperrors.InvalidArgument(ast.KindInvalid, "cannot chain zero rules")
	}

	acc := rules[len(rules)-1]
	if acc == nil {
		return nil, camperrors.InvalidArgument(ast.KindInvalid, "rule %d is nil", len(rules))
	}
	for i := len(rules) - 2; i >= 0; i-- {
		if rules[i] == nil {
			return nil, camperrors.InvalidArgument(ast.KindInvalid, "rule %d is nil", i+1)
		}
		f, ok := rules[i].(Functional)
		if !ok {
			return nil, camperrors.InvalidArgument(rules[i].Kind(), "rule %d takes no continuation", i+1)
		}
		next, err := f.Apply(acc)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}
