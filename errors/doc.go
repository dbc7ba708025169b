// Package errors provides structured error handling for convodyn.
//
// Errors fall into two classes:
//
//   - Hard errors (INVALID_INPUT, MISSING_FIELD, INVALID_FORMAT, ...) abort
//     the analysis of the conversation they occur in. They never affect other
//     conversations in a batch.
//   - The soft INSUFFICIENT_DATA error marks a single metric key (a speaker or
//     speaker pair) as missing. All other keys and metrics proceed normally.
//
// All errors are deterministic functions of the input data; none are
// retryable.
//
// # Usage
//
//	if interval.End <= interval.Start {
//	    return errors.InvalidInput("end", "end_time must be greater than start_time")
//	}
//
//	if appErr, ok := errors.AsAppError(err); ok && !errors.IsHard(err) {
//	    // mark key as missing, keep going
//	}
package errors
