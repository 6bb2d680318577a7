// Package types contains the core value types and interfaces shared across
// the paimon bucket-assignment library.
//
// It holds the PartitionKey value type, the Logger and MetricsCollector
// interfaces, and the sentinel errors. Keeping these in a leaf package lets
// internal packages depend on them without importing the root paimon
// package, avoiding import cycles while the root package re-exports the
// public surface via type aliases.
package types
