package cli

import (
	"errors"
	"fmt"

	camperrors "qcert/camp/pkg/camp/errors"
)

// Process exit codes for the camp command.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitUsage reports a bad flag, operand name, or config value.
	ExitUsage = 2
	// ExitInvalidArgument reports a node rejected for its inputs.
	ExitInvalidArgument = 3
	// ExitInvalidState reports a corrupted operator table.
	ExitInvalidState = 4
)

// ConfigError represents an error in configuration or flags.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError is a failed subcommand. Type is the construction error type of
// Err, or "" when Err did not come from node construction.
type CommandError struct {
	Command string
	Type    camperrors.ErrorType
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewCommandError wraps err for command, classifying it by construction
// error type.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Type:    camperrors.TypeOf(err),
		Err:     err,
	}
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitUsage
	}

	errType := camperrors.TypeOf(err)
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Type != "" {
		errType = cmdErr.Type
	}

	switch errType {
	case camperrors.ErrorTypeInvalidState:
		return ExitInvalidState
	case camperrors.ErrorTypeInvalidArgument:
		return ExitInvalidArgument
	default:
		return ExitFailure
	}
}
