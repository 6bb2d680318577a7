package paimon

import (
	"fmt"

	"github.com/gavin9402/paimon/internal/intmap"
	"github.com/gavin9402/paimon/types"
)

// partitionIndex assigns bucket ids to record hashes for a single partition.
//
// One instance exists per distinct partition key and lives for the owning
// assigner's lifetime. It is mutated only by the assigner's own sequential
// call stream, so it carries no locking.
type partitionIndex struct {
	assigner *Assigner
	key      types.PartitionKey

	// hash2Bucket remembers which bucket each record hash was routed to.
	// Append-only: a hash, once mapped, is never remapped.
	hash2Bucket *intmap.Int2Short

	// bucketRows tracks the rows routed into each bucket this partition has
	// touched. bucketList holds the same bucket ids in first-open order and
	// doubles as the reuse pool once the global bucket cap is reached.
	bucketRows map[int]int64
	bucketList []int

	// currentBucket is the bucket new hashes are routed into.
	currentBucket int
}

// newPartitionIndex creates the index for a partition, scanning for the
// first bucket id this assigner may open.
func newPartitionIndex(assigner *Assigner, key types.PartitionKey) (*partitionIndex, error) {
	p := &partitionIndex{
		assigner:    assigner,
		key:         key,
		hash2Bucket: intmap.New(),
		bucketRows:  make(map[int]int64),
	}

	if _, err := p.openNewBucket(); err != nil {
		return nil, err
	}

	return p, nil
}

// assign returns the bucket id for a record hash.
//
// A previously seen hash returns its recorded bucket unchanged. A new hash
// is routed into the current bucket; when the current bucket has reached the
// row target, a new bucket is opened if the global cap still has room,
// otherwise an existing bucket is picked uniformly at random from the reuse
// pool and deliberately overflows its row target.
func (p *partitionIndex) assign(hash int32) (int, error) {
	if bucket, ok := p.hash2Bucket.Get(hash); ok {
		return int(bucket), nil
	}

	rows := p.touchBucket(p.currentBucket)

	if rows >= p.assigner.cfg.TargetBucketRowNumber {
		cfg := &p.assigner.cfg
		if cfg.unlimited() || len(p.bucketRows) == 0 || p.assigner.maxBucket < cfg.MaxBucketsNum-1 {
			if _, err := p.openNewBucket(); err != nil {
				return 0, err
			}
			p.touchBucket(p.currentBucket)
		} else {
			p.currentBucket = p.bucketList[p.assigner.rand.IntN(len(p.bucketList))]
			p.assigner.metrics.RecordBucketReused(p.currentBucket)
			p.assigner.logger.Debug("bucket cap reached, reusing bucket",
				"partition", p.key, "bucket", p.currentBucket)
		}
	}

	p.bucketRows[p.currentBucket]++
	p.hash2Bucket.Put(hash, int16(p.currentBucket))

	return p.currentBucket, nil
}

// touchBucket ensures the bucket has a row-count entry, appending it to the
// reuse pool on first use, and returns its current row count.
func (p *partitionIndex) touchBucket(bucket int) int64 {
	rows, ok := p.bucketRows[bucket]
	if !ok {
		p.bucketRows[bucket] = 0
		p.bucketList = append(p.bucketList, bucket)
	}

	return rows
}

// openNewBucket scans candidate bucket ids in increasing order and adopts
// the first one that is owned by this assigner and unused by this partition.
//
// When the cap is finite and the first such candidate lies beyond it, the
// scan stops without adopting: every later owned candidate is larger still.
// The caller keeps its current bucket in that case. Exhausting the entire
// 16-bit id space is fatal and reported as ErrBucketsExhausted.
func (p *partitionIndex) openNewBucket() (bool, error) {
	cfg := &p.assigner.cfg

	for i := 0; i < bucketIDBound; i++ {
		if !OwnsBucket(i, cfg.NumAssigners, cfg.AssignID) || p.used(i) {
			continue
		}

		if !cfg.unlimited() && i > cfg.MaxBucketsNum-1 {
			return false, nil
		}

		p.currentBucket = i
		p.assigner.metrics.RecordBucketOpened(i)
		p.assigner.logger.Debug("opened new bucket", "partition", p.key, "bucket", i)

		return true, nil
	}

	err := fmt.Errorf(
		"%w: partition %s, assigner %d/%d",
		ErrBucketsExhausted, p.key, cfg.AssignID, cfg.NumAssigners,
	)
	p.assigner.logger.Error("bucket id space exhausted",
		"partition", p.key, "assignId", cfg.AssignID, "numAssigners", cfg.NumAssigners)

	return false, err
}

// used reports whether this partition has already routed rows into bucket.
func (p *partitionIndex) used(bucket int) bool {
	_, ok := p.bucketRows[bucket]

	return ok
}
