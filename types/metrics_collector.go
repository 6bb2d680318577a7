package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are invoked on the assigner's own goroutine, on the hot assignment
// path, so implementations must be cheap; anything expensive should be
// deferred internally.
type MetricsCollector interface {
	AssignerMetrics
}

// AssignerMetrics defines metrics for bucket-assignment operations.
type AssignerMetrics interface {
	// RecordAssignment records one record routed to a bucket.
	RecordAssignment(bucket int)

	// RecordBucketOpened records that a new bucket id was opened.
	RecordBucketOpened(bucket int)

	// RecordBucketReused records an overflow reuse of an existing bucket
	// after the global bucket cap was reached.
	RecordBucketReused(bucket int)

	// RecordPartitionCount sets the number of distinct partitions seen (gauge).
	RecordPartitionCount(count int)

	// RecordMaxBucketID sets the maximum bucket id returned so far (gauge).
	RecordMaxBucketID(id int)
}
