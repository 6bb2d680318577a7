package paimon

import "github.com/gavin9402/paimon/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `paimon`
// package, while still providing a convenient `paimon.PartitionKey`,
// `paimon.Logger`, etc. for users.
type (
	PartitionKey = types.PartitionKey
	Value        = types.Value
	Kind         = types.Kind
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Value constructors from the types subpackage.
var (
	NewPartitionKey = types.NewPartitionKey
	NullValue       = types.NullValue
	BoolValue       = types.BoolValue
	Int32Value      = types.Int32Value
	Int64Value      = types.Int64Value
	Float64Value    = types.Float64Value
	StringValue     = types.StringValue
	BytesValue      = types.BytesValue
)
