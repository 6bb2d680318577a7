package paimon

import "github.com/gavin9402/paimon/types"

// Sentinel errors returned by the Assigner.
//
// The canonical definitions live in the types subpackage so internal
// packages can reference them without importing the root package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrBucketsExhausted is returned when no suitable bucket id can be
	// opened for a partition. See types.ErrBucketsExhausted.
	ErrBucketsExhausted = types.ErrBucketsExhausted
)
