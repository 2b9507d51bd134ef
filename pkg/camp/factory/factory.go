package factory

import (
	"log/slog"
	"sync"

	"qcert/camp/pkg/camp/ast"
	"qcert/camp/pkg/camp/data"
	camperrors "qcert/camp/pkg/camp/errors"
	"qcert/camp/pkg/camp/pattern"
	"qcert/camp/pkg/camp/rule"
	"qcert/camp/pkg/telemetry/logging"
	"qcert/camp/pkg/telemetry/metrics"
)

// Factory constructs CAMP nodes on behalf of producers.
type Factory struct {
	logger  *slog.Logger
	metrics *metrics.ConstructionMetrics

	mu    sync.Mutex
	bools [2]*data.Bool
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger used to report construction failures.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithMetrics sets the construction metrics sink.
func WithMetrics(m *metrics.ConstructionMetrics) Option {
	return func(f *Factory) {
		f.metrics = m
	}
}

// New creates a Factory. Without options it logs nothing and records no metrics.
func New(opts ...Option) *Factory {
	f := &Factory{
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// track reports the outcome of one construction and passes it through.
func track[T ast.Node](f *Factory, kind ast.Kind, node T, err error) (T, error) {
	if err != nil {
		errType := camperrors.TypeOf(err)
		f.metrics.RecordFailure(kind.String(), string(errType))

		if errType == camperrors.ErrorTypeInvalidState {
			f.logger.Error("node construction failed", "kind", kind.String(), "error_type", errType, "error", err)
		} else {
			f.logger.Debug("node construction rejected", "kind", kind.String(), "error_type", errType, "error", err)
		}
		var zero T
		return zero, err
	}

	f.metrics.RecordConstructed(kind.String())
	return node, nil
}

// Bool returns the canonical instance for v. Every call with the same truth
// value returns the same pointer.
func (f *Factory) Bool(v bool) *data.Bool {
	idx := 0
	if v {
		idx = 1
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if b := f.bools[idx]; b != nil {
		return b
	}

	b := data.NewBool(v)
	f.bools[idx] = b
	f.metrics.RecordConstructed(ast.KindDBool.String())
	f.metrics.SetInternedBools(f.internedCount())
	f.logger.Debug("interned boolean", "value", v)
	return b
}

// internedCount must be called with mu held.
func (f *Factory) internedCount() int {
	n := 0
	for _, b := range f.bools {
		if b != nil {
			n++
		}
	}
	return n
}

// TimeScale returns a dtime_scale for the named unit ("day", "month", ...).
func (f *Factory) TimeScale(unit string) (*data.TimeScale, error) {
	u, err := data.ParseTimeScaleUnit(unit)
	if err != nil {
		return track[*data.TimeScale](f, ast.KindDTimeScale, nil, err)
	}
	ts, err := data.NewTimeScale(u)
	return track(f, ast.KindDTimeScale, ts, err)
}

// Const returns pconst(d).
func (f *Factory) Const(d data.Data) (*pattern.Const, error) {
	c, err := pattern.NewConst(d)
	return track(f, ast.KindPConst, c, err)
}

// Unary returns punop for the operator with the given name. param may be
// nil, a string, a []string, or a []any of strings, and must match the
// operator's declared parameter kind.
func (f *Factory) Unary(name string, param any, operand pattern.Pattern) (*pattern.Unary, error) {
	op, err := pattern.LookupUnaryOperator(name)
	if err != nil {
		return track[*pattern.Unary](f, ast.KindPUnop, nil, err)
	}
	u, err := pattern.NewUnaryValue(op, param, operand)
	return track(f, ast.KindPUnop, u, err)
}

// Binary returns pbinop for the operator with the given name.
func (f *Factory) Binary(name string, p1, p2 pattern.Pattern) (*pattern.Binary, error) {
	op, err := pattern.LookupBinaryOperator(name)
	if err != nil {
		return track[*pattern.Binary](f, ast.KindPBinop, nil, err)
	}
	b, err := pattern.NewBinary(op, p1, p2)
	return track(f, ast.KindPBinop, b, err)
}

// OrElse returns porElse(first, fallback).
func (f *Factory) OrElse(first, fallback pattern.Pattern) (*pattern.OrElse, error) {
	o, err := pattern.NewOrElse(first, fallback)
	return track(f, ast.KindPOrElse, o, err)
}

// When returns the functional rule_when (p).
func (f *Factory) When(p pattern.Pattern) (*rule.When, error) {
	w, err := rule.NewWhen(p)
	return track(f, ast.KindRuleWhen, w, err)
}

// Return returns rule_return (p).
func (f *Factory) Return(p pattern.Pattern) (*rule.Return, error) {
	r, err := rule.NewReturn(p)
	return track(f, ast.KindRuleReturn, r, err)
}

// Apply attaches operand to the functional rule fn, returning a new rule.
func (f *Factory) Apply(fn rule.Functional, operand rule.Rule) (rule.Rule, error) {
	if fn == nil {
		return track[rule.Rule](f, ast.KindInvalid, nil,
			camperrors.InvalidArgument(ast.KindInvalid, "functional rule is nil"))
	}
	r, err := fn.Apply(operand)
	return track(f, fn.Kind(), r, err)
}
