package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"qcert/camp/pkg/camp/ast"
)

// ErrorType categorizes a construction failure.
type ErrorType string

const (
	ErrorTypeInvalidArgument ErrorType = "invalid_argument" // Bad input to a constructor
	ErrorTypeInvalidState    ErrorType = "invalid_state"    // Corrupted operator table
)

// Error is a construction failure for a single node.
type Error struct {
	Type       ErrorType // Category of error
	Kind       ast.Kind  // Kind of the node being constructed (KindInvalid if unknown)
	Operator   string    // Operator involved, if any
	Message    string    // Error message
	Suggestion string    // Suggested fix (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s]", e.Type))
	if e.Kind.IsValid() {
		sb.WriteString(" ")
		sb.WriteString(e.Kind.String())
		sb.WriteString(":")
	}
	sb.WriteString(" ")
	sb.WriteString(e.Message)

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", e.Suggestion))
	}

	return sb.String()
}

// InvalidArgument creates an invalid-argument error for a node of the given kind.
func InvalidArgument(kind ast.Kind, format string, args ...any) *Error {
	return &Error{
		Type:    ErrorTypeInvalidArgument,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidState creates an invalid-state error for a node of the given kind.
func InvalidState(kind ast.Kind, format string, args ...any) *Error {
	return &Error{
		Type:    ErrorTypeInvalidState,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithOperator returns e with the operator name set.
func (e *Error) WithOperator(op string) *Error {
	e.Operator = op
	return e
}

// WithSuggestion returns e with the suggestion set.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// TypeOf returns the ErrorType of err, or "" if err wraps neither an *Error
// nor a non-empty *ErrorList. A list reports invalid-state if any entry has
// that type, else the type of its first entry.
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	var list *ErrorList
	if stderrors.As(err, &list) && list.HasErrors() {
		if list.HasErrorType(ErrorTypeInvalidState) {
			return ErrorTypeInvalidState
		}
		return list.Errors[0].Type
	}
	return ""
}

// IsInvalidArgument returns true if err wraps an invalid-argument *Error.
func IsInvalidArgument(err error) bool {
	return TypeOf(err) == ErrorTypeInvalidArgument
}

// IsInvalidState returns true if err wraps an invalid-state *Error.
func IsInvalidState(err error) bool {
	return TypeOf(err) == ErrorTypeInvalidState
}

// ErrorList represents a collection of errors.
// It allows accumulating multiple errors instead of failing on the first error.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error for the given operator.
func (el *ErrorList) AddError(errType ErrorType, message string, operator string) {
	el.Add(&Error{
		Type:     errType,
		Message:  message,
		Operator: operator,
	})
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface.
// It returns all errors formatted as a single string.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("  %d. ", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise returns the error list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// HasErrorType returns true if the error list contains at least one error of the given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}
