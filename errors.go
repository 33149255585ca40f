// Package metametric computes similarity scores between structured
// prediction/reference pairs by recursively decomposing the comparison
// along the type's structure and solving a matching problem at every
// collection boundary.
package metametric

import (
	"errors"

	"github.com/grokify/go-metametric/mmerr"
)

// Sentinel errors for the metametric kernel, one per error kind named by
// the specification: invalid-configuration, type-mismatch,
// underivable-type and solver-failure. Re-exported from package mmerr so
// every subpackage (constraint, normalize, ilp, derive, aggregate) can
// return errors satisfying errors.Is against these without importing the
// root module.
var (
	ErrInvalidConfiguration = mmerr.ErrInvalidConfiguration
	ErrTypeMismatch         = mmerr.ErrTypeMismatch
	ErrUnderivableType      = mmerr.ErrUnderivableType
	ErrSolverFailure        = mmerr.ErrSolverFailure
	ErrLengthMismatch       = mmerr.ErrLengthMismatch
)

// ConfigError wraps ErrInvalidConfiguration with the offending input.
type ConfigError = mmerr.ConfigError

// NewConfigError builds a ConfigError for the given configuration kind
// and offending value.
func NewConfigError(what, value string) *ConfigError {
	return mmerr.NewConfigError(what, value)
}

// SolverError wraps ErrSolverFailure with the underlying backend reason.
type SolverError = mmerr.SolverError

// UnderivableTypeError wraps ErrUnderivableType with the offending type's
// name.
type UnderivableTypeError = mmerr.UnderivableTypeError

// IsInvalidConfiguration reports whether err (or any error it wraps) is
// an invalid-configuration error.
func IsInvalidConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

// IsTypeMismatch reports whether err (or any error it wraps) is a
// type-mismatch error.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsUnderivableType reports whether err (or any error it wraps) is an
// underivable-type error.
func IsUnderivableType(err error) bool {
	return errors.Is(err, ErrUnderivableType)
}

// IsSolverFailure reports whether err (or any error it wraps) is a
// solver-failure error.
func IsSolverFailure(err error) bool {
	return errors.Is(err, ErrSolverFailure)
}
