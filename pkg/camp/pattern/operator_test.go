package pattern

import (
	"strings"
	"testing"

	camperrors "qcert/camp/pkg/camp/errors"
)

func TestUnaryOperatorTable(t *testing.T) {
	if err := CheckUnaryOperators(); err != nil {
		t.Fatalf("CheckUnaryOperators() error = %v", err)
	}

	want := map[UnaryOperator]ParameterKind{
		AIdOp:       ParameterNone,
		ACount:      ParameterNone,
		ADot:        ParameterString,
		ARec:        ParameterString,
		ARecRemove:  ParameterString,
		ALike:       ParameterString,
		ARecProject: ParameterStringList,
		AOrderBy:    ParameterStringList,
		ABrand:      ParameterStringList,
		ACast:       ParameterStringList,
	}
	for op, kind := range want {
		if got := op.ParameterKind(); got != kind {
			t.Errorf("%s.ParameterKind() = %s, want %s", op, got, kind)
		}
	}

	infos := UnaryOperators()
	if len(infos) != len(unaryTable) {
		t.Fatalf("UnaryOperators() returned %d entries", len(infos))
	}
	for i, info := range infos {
		if info.Operator != UnaryOperator(i) || info.Name != info.Operator.String() {
			t.Errorf("entry %d inconsistent: %+v", i, info)
		}
	}
}

func TestCheckUnaryTable_Corrupted(t *testing.T) {
	table := []unaryEntry{
		{"AOne", ParameterNone},
		{"ATwo", ParameterKind(0)},
		{"AOne", ParameterString},
		{"", ParameterNone},
	}

	err := checkUnaryTable(table)
	errList, ok := err.(*camperrors.ErrorList)
	if !ok {
		t.Fatalf("Expected ErrorList, got %T", err)
	}
	if errList.Count() != 3 {
		t.Errorf("Count() = %d, want 3: %v", errList.Count(), errList)
	}
	if !errList.HasErrorType(camperrors.ErrorTypeInvalidState) {
		t.Error("Expected invalid-state errors")
	}
}

func TestLookupUnaryOperator(t *testing.T) {
	op, err := LookupUnaryOperator("ARecProject")
	if err != nil || op != ARecProject {
		t.Fatalf("LookupUnaryOperator() = %v, %v", op, err)
	}

	_, err = LookupUnaryOperator("ADott")
	if !camperrors.IsInvalidArgument(err) {
		t.Fatalf("Expected invalid-argument error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Did you mean 'ADot'?") {
		t.Errorf("Expected suggestion in %q", err.Error())
	}
}

func TestBinaryOperators(t *testing.T) {
	for _, op := range BinaryOperators() {
		got, err := LookupBinaryOperator(op.String())
		if err != nil || got != op {
			t.Errorf("LookupBinaryOperator(%s) = %v, %v", op, got, err)
		}
	}

	if BinaryOperator(-1).IsValid() {
		t.Error("BinaryOperator(-1) reported valid")
	}
	if _, err := LookupBinaryOperator("AEquals"); !camperrors.IsInvalidArgument(err) {
		t.Errorf("Expected invalid-argument error, got %v", err)
	}
}

func TestParameterKind_String(t *testing.T) {
	tests := map[ParameterKind]string{
		ParameterNone:       "None",
		ParameterString:     "String",
		ParameterStringList: "StringList",
		ParameterKind(9):    "ParameterKind(9)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
