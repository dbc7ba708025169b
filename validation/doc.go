// Package validation provides input validation for request payloads and
// configuration structs.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for request bodies.
//
// # Struct Tag Validation
//
//	type AnalyzeRequest struct {
//	    Intervals []Interval `json:"intervals" validate:"required,min=1,dive"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.NonNegative("merge_gap_tolerance", cfg.MergeGapTolerance)
//	err := v.Validate()
package validation
