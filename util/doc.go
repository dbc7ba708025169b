// Package util provides generic utility functions for convodyn.
//
// It includes slice and map helpers, feature-key sanitization, word counting,
// and size-string parsing.
package util
