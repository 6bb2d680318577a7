package paimon

import (
	"fmt"
	"math/rand/v2"

	"github.com/gavin9402/paimon/internal/logger"
	"github.com/gavin9402/paimon/internal/metrics"
	"github.com/gavin9402/paimon/types"
)

// Assigner routes records to hash buckets without a durable bucket index.
//
// It is built for overwrite operations: prior commits' bucket assignments
// are irrelevant because the overwrite discards them, so loading and
// maintaining a persistent index would be pure cost. All assignment state
// lives in memory and dies with the instance.
//
// One Assigner exists per parallel writer subtask. It must be used from a
// single goroutine; instances coordinate only through the static bucket-id
// ownership formula (see OwnsBucket) and share no memory.
type Assigner struct {
	cfg     Config
	logger  types.Logger
	metrics types.MetricsCollector
	rand    *rand.Rand

	// maxBucket is the maximum bucket id returned so far across all
	// partitions. Monotonically non-decreasing; drives the global cap check.
	maxBucket int

	// indexes maps a partition key's canonical encoding to its index. The
	// PartitionKey stored inside each index owns copies of all field data,
	// so caller buffers are never retained.
	indexes map[string]*partitionIndex
}

// NewAssigner creates an Assigner for one writer subtask.
//
// Parameters:
//   - cfg: Assignment configuration, validated before use
//   - opts: Optional logger, metrics collector and random source
//
// Returns:
//   - *Assigner: Ready-to-use assigner
//   - error: Validation error wrapping ErrInvalidConfig
//
// Example:
//
//	cfg := paimon.DefaultConfig()
//	cfg.NumAssigners = 4
//	cfg.AssignID = subtaskIndex
//
//	assigner, err := paimon.NewAssigner(&cfg, paimon.WithLogger(log))
func NewAssigner(cfg *Config, opts ...Option) (*Assigner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := assignerOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}
	if options.rand == nil {
		options.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Assigner{
		cfg:     *cfg,
		logger:  options.logger,
		metrics: options.metrics,
		rand:    options.rand,
		indexes: make(map[string]*partitionIndex),
	}, nil
}

// Assign returns the bucket id for a record.
//
// Parameters:
//   - key: The record's partition key
//   - hash: 32-bit hash of the record's bucket key
//
// Returns:
//   - int: Bucket id in [0, 32767), stable for this hash within this
//     assigner's lifetime
//   - error: ErrBucketsExhausted (wrapped) when no bucket id can be opened;
//     fatal, the surrounding write operation must abort
func (a *Assigner) Assign(key types.PartitionKey, hash int32) (int, error) {
	canonical := key.Canonical()

	index, ok := a.indexes[canonical]
	if !ok {
		var err error
		index, err = newPartitionIndex(a, key)
		if err != nil {
			return 0, fmt.Errorf("create partition index for %s: %w", key, err)
		}
		a.indexes[canonical] = index
		a.metrics.RecordPartitionCount(len(a.indexes))
	}

	bucket, err := index.assign(hash)
	if err != nil {
		return 0, err
	}

	if bucket > a.maxBucket {
		a.maxBucket = bucket
		a.metrics.RecordMaxBucketID(bucket)
	}
	a.metrics.RecordAssignment(bucket)

	return bucket, nil
}

// PrepareCommit is called once per commit boundary and does nothing.
//
// The persistent assigner variants flush their bucket index here; this
// variant keeps no durable state, which is the point of using it for
// overwrites. The commit identifier is accepted for interface parity and
// ignored.
func (a *Assigner) PrepareCommit(_ /* commitIdentifier */ int64) {}

// CurrentPartitions returns the distinct partition keys seen so far, in
// unspecified order. Intended for verification in tests.
func (a *Assigner) CurrentPartitions() []types.PartitionKey {
	keys := make([]types.PartitionKey, 0, len(a.indexes))
	for _, index := range a.indexes {
		keys = append(keys, index.key)
	}

	return keys
}

// MaxBucketID returns the maximum bucket id returned so far, or 0 if no
// record has been assigned yet.
func (a *Assigner) MaxBucketID() int {
	return a.maxBucket
}
