package types

import "errors"

// Sentinel errors for the bucket-assignment library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with context using
// fmt.Errorf("...: %w", err).
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBucketsExhausted is returned when no suitable bucket id can be
	// opened for a partition: every representable id is either already used
	// by the partition, owned by another assigner, or disallowed by the
	// global bucket cap. This is fatal and must abort the calling write
	// operation; it indicates a capacity or configuration problem, not a
	// transient condition.
	ErrBucketsExhausted = errors.New("no suitable bucket to assign: bucket id space exhausted")
)
