package gometrics

import "github.com/datar-psa/gometrics/api"

var (
	// ErrLengthMismatch is returned when predictions and targets differ in length
	ErrLengthMismatch = api.ErrLengthMismatch
	// ErrEmptyInput is returned for a batch without elements
	ErrEmptyInput = api.ErrEmptyInput
	// ErrInvalidLabel is returned for a class index or target outside the accepted set
	ErrInvalidLabel = api.ErrInvalidLabel
	// ErrInvalidValue is returned for non-finite or out-of-range scores
	ErrInvalidValue = api.ErrInvalidValue
	// ErrInvalidConfiguration is returned by constructors for unusable options
	ErrInvalidConfiguration = api.ErrInvalidConfiguration
)
