package cli

import (
	"errors"
	"fmt"
	"testing"

	"qcert/camp/pkg/camp/ast"
	camperrors "qcert/camp/pkg/camp/errors"
)

func TestCommandError(t *testing.T) {
	inner := errors.New("boom")
	err := NewCommandError("unop", inner)

	if err.Error() != "command unop failed: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("CommandError does not unwrap")
	}
	if err.Type != "" {
		t.Errorf("Type = %q, want empty", err.Type)
	}

	state := NewCommandError("check", camperrors.InvalidState(ast.KindPUnop, "corrupt"))
	if state.Type != camperrors.ErrorTypeInvalidState {
		t.Errorf("Type = %q, want invalid_state", state.Type)
	}
}

func TestExitCode(t *testing.T) {
	tableErrs := camperrors.NewErrorList()
	tableErrs.AddError(camperrors.ErrorTypeInvalidState, "unary operator 3 has no name", "")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", errors.New("boom"), ExitFailure},
		{"config", NewConfigError("format", "unknown output format"), ExitUsage},
		{"config inside command", NewCommandError("unop", NewConfigError("operand", "unknown operand")), ExitUsage},
		{"invalid argument", NewCommandError("unop", camperrors.InvalidArgument(ast.KindPUnop, "bad param")), ExitInvalidArgument},
		{"invalid state", NewCommandError("unop", camperrors.InvalidState(ast.KindPUnop, "corrupt")), ExitInvalidState},
		{"corrupted table", NewCommandError("check", tableErrs), ExitInvalidState},
		{"unwrapped construction error", fmt.Errorf("build: %w", camperrors.InvalidArgument(ast.KindPBinop, "bad")), ExitInvalidArgument},
		{"plain command failure", NewCommandError("operators", errors.New("write failed")), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
