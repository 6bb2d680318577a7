// Package metrics provides MetricsCollector implementations for the
// bucket-assignment library.
package metrics

import "github.com/gavin9402/paimon/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	assigner, err := paimon.NewAssigner(&cfg, paimon.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAssignment discards the assignment metric.
func (n *NopMetrics) RecordAssignment(_ /* bucket */ int) {
	// No-op
}

// RecordBucketOpened discards the bucket-opened metric.
func (n *NopMetrics) RecordBucketOpened(_ /* bucket */ int) {
	// No-op
}

// RecordBucketReused discards the bucket-reuse metric.
func (n *NopMetrics) RecordBucketReused(_ /* bucket */ int) {
	// No-op
}

// RecordPartitionCount discards the partition count metric.
func (n *NopMetrics) RecordPartitionCount(_ /* count */ int) {
	// No-op
}

// RecordMaxBucketID discards the max bucket id metric.
func (n *NopMetrics) RecordMaxBucketID(_ /* id */ int) {
	// No-op
}
