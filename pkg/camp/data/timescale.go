package data

import (
	"fmt"
	"strings"

	"qcert/camp/pkg/camp/ast"
	camperrors "qcert/camp/pkg/camp/errors"
)

// TimeScaleUnit is a calendar granularity.
type TimeScaleUnit string

const (
	TimeScaleSecond TimeScaleUnit = "second"
	TimeScaleMinute TimeScaleUnit = "minute"
	TimeScaleHour   TimeScaleUnit = "hour"
	TimeScaleDay    TimeScaleUnit = "day"
	TimeScaleWeek   TimeScaleUnit = "week"
	TimeScaleMonth  TimeScaleUnit = "month"
	TimeScaleYear   TimeScaleUnit = "year"
)

var timeScaleUnits = []TimeScaleUnit{
	TimeScaleSecond,
	TimeScaleMinute,
	TimeScaleHour,
	TimeScaleDay,
	TimeScaleWeek,
	TimeScaleMonth,
	TimeScaleYear,
}

// TimeScaleUnits returns every known unit, finest first.
func TimeScaleUnits() []TimeScaleUnit {
	return append([]TimeScaleUnit(nil), timeScaleUnits...)
}

// String returns the unit name.
func (u TimeScaleUnit) String() string { return string(u) }

// IsValid returns true if u is one of the known units.
func (u TimeScaleUnit) IsValid() bool {
	for _, known := range timeScaleUnits {
		if u == known {
			return true
		}
	}
	return false
}

// ParseTimeScaleUnit parses a unit name, case-insensitively.
func ParseTimeScaleUnit(s string) (TimeScaleUnit, error) {
	u := TimeScaleUnit(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		names := make([]string, len(timeScaleUnits))
		for i, known := range timeScaleUnits {
			names[i] = string(known)
		}
		return "", camperrors.InvalidArgument(ast.KindDTimeScale, "unknown time scale %q", s).
			WithSuggestion(camperrors.SuggestName(s, names))
	}
	return u, nil
}

// TimeScale is the dtime_scale constructor. It wraps a unit and renders as the
// unit's own string form.
type TimeScale struct {
	scale TimeScaleUnit
}

// NewTimeScale returns a dtime_scale literal.
func NewTimeScale(u TimeScaleUnit) (*TimeScale, error) {
	if !u.IsValid() {
		return nil, camperrors.InvalidArgument(ast.KindDTimeScale, "unknown time scale %q", string(u))
	}
	return &TimeScale{scale: u}, nil
}

// Scale returns the wrapped unit.
func (t *TimeScale) Scale() TimeScaleUnit { return t.scale }

func (*TimeScale) isData()           {}
func (*TimeScale) Kind() ast.Kind    { return ast.KindDTimeScale }
func (*TimeScale) Tag() string       { return ast.KindDTimeScale.String() }
func (t *TimeScale) Operands() []any { return []any{t.scale} }
func (t *TimeScale) String() string  { return fmt.Sprint(t.scale) }
