package api

import "errors"

var (
	// ErrLengthMismatch is returned when predictions and targets differ in length
	ErrLengthMismatch = errors.New("predictions and targets have different lengths")
	// ErrEmptyInput is returned when an update batch has no elements
	ErrEmptyInput = errors.New("empty input batch")
	// ErrInvalidLabel is returned when a target or predicted label is outside the accepted set
	ErrInvalidLabel = errors.New("invalid label")
	// ErrInvalidValue is returned for non-finite or out-of-range prediction values
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidConfiguration is returned by constructors given unusable options
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
