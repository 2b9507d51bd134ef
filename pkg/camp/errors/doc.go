// Package errors provides the construction error types for CAMP nodes.
//
// Node constructors validate their arguments synchronously and either return a
// fully formed node or one of these errors. No constructor retries, recovers,
// or returns a partially built node.
//
// # Error Types
//
// ErrorTypeInvalidArgument: the caller supplied a bad argument, e.g. a parameter
// whose shape does not match the operator's declared parameter kind, a nil
// operand, or an unknown operator name. The input should be rejected.
//
// ErrorTypeInvalidState: the operator table itself is corrupted (an operator
// declares no legal parameter kind). This is a programming error and must not
// be retried.
//
// # Basic Usage
//
//	p, err := pattern.NewUnary(pattern.ADot, pattern.NoParameter{}, pattern.NewIt())
//	if errors.IsInvalidArgument(err) {
//	    // reject the surface syntax that produced this node
//	}
//
// Accumulate problems when checking a whole table:
//
//	errList := errors.NewErrorList()
//	errList.AddError(errors.ErrorTypeInvalidState, "unknown parameter kind", "ADot")
//	return errList.ToError()
//
// # Suggestions
//
// SuggestName uses Levenshtein distance to propose the closest known operator
// name when a producer misspells one:
//
//	errors.SuggestName("ADott", []string{"ADot", "ARec"})
//	// Returns: "Did you mean 'ADot'?"
package errors
