// Package paimon provides in-memory hash-bucket assignment for partitioned
// table writes.
//
// The Assigner routes incoming records, grouped by partition key, to numbered
// storage buckets. It is the non-durable variant used for overwrite
// operations: because an overwrite discards all prior table state, historical
// bucket assignments are irrelevant and no persistent bucket index is loaded
// or flushed. All state lives in process memory for the lifetime of one
// write job and is discarded afterwards.
//
// # Quick Start
//
//	cfg := paimon.DefaultConfig()
//	cfg.TargetBucketRowNumber = 1_000_000
//
//	assigner, err := paimon.NewAssigner(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key := types.NewPartitionKey(types.StringValue("us-east"), types.Int32Value(20260825))
//	bucket, err := assigner.Assign(key, recordHash)
//
// # Guarantees
//
//   - Stability: the same record hash always lands in the same bucket within
//     one assigner lifetime.
//   - Bounded buckets: a new bucket is opened only after the current one
//     reaches TargetBucketRowNumber rows, and never beyond MaxBucketsNum
//     distinct ids; once the cap is reached, overflow rows reuse existing
//     buckets.
//   - Static ownership: with NumAssigners parallel writer subtasks, each
//     assigner opens only bucket ids it owns (bucket % NumAssigners ==
//     AssignID), so concurrent subtasks never race to create the same
//     bucket without any cross-instance coordination.
//
// # Concurrency
//
// An Assigner instance belongs to a single goroutine — one per parallel
// writer subtask — and performs no internal locking. Separate instances
// share no memory; the ownership formula is the only coordination between
// them.
package paimon
