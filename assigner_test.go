package paimon

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gavin9402/paimon/internal/logger"
	"github.com/gavin9402/paimon/types"
)

func newTestAssigner(t *testing.T, numAssigners, assignID int, target int64, maxBuckets int) *Assigner {
	t.Helper()

	cfg := Config{
		NumAssigners:          numAssigners,
		AssignID:              assignID,
		TargetBucketRowNumber: target,
		MaxBucketsNum:         maxBuckets,
	}

	assigner, err := NewAssigner(&cfg,
		WithLogger(logger.NewTest(t)),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)

	return assigner
}

func partKey(fields ...string) types.PartitionKey {
	values := make([]types.Value, len(fields))
	for i, f := range fields {
		values[i] = types.StringValue(f)
	}

	return types.NewPartitionKey(values...)
}

func TestAssignSingleAssigner(t *testing.T) {
	t.Parallel()

	// target=2, unlimited cap: hashes [10,11,12,13] land in buckets [0,0,1,1].
	assigner := newTestAssigner(t, 1, 0, 2, UnlimitedBuckets)
	key := partKey("p")

	want := []int{0, 0, 1, 1}
	for i, hash := range []int32{10, 11, 12, 13} {
		bucket, err := assigner.Assign(key, hash)
		require.NoError(t, err)
		require.Equal(t, want[i], bucket, "hash %d", hash)
	}
	require.Equal(t, 1, assigner.MaxBucketID())
}

func TestAssignStability(t *testing.T) {
	t.Parallel()

	assigner := newTestAssigner(t, 1, 0, 3, UnlimitedBuckets)
	key := partKey("p")

	first := make(map[int32]int)
	for hash := int32(0); hash < 100; hash++ {
		bucket, err := assigner.Assign(key, hash)
		require.NoError(t, err)
		first[hash] = bucket
	}

	// Re-assigning any seen hash returns the recorded bucket and does not
	// advance row counts: the bucket layout afterwards is unchanged.
	for round := 0; round < 3; round++ {
		for hash := int32(0); hash < 100; hash++ {
			bucket, err := assigner.Assign(key, hash)
			require.NoError(t, err)
			require.Equal(t, first[hash], bucket, "hash %d round %d", hash, round)
		}
	}
}

func TestAssignRowCountThreshold(t *testing.T) {
	t.Parallel()

	// With target=3 the 4th distinct hash triggers a new bucket.
	assigner := newTestAssigner(t, 1, 0, 3, UnlimitedBuckets)
	key := partKey("p")

	for _, hash := range []int32{1, 2, 3} {
		bucket, err := assigner.Assign(key, hash)
		require.NoError(t, err)
		require.Equal(t, 0, bucket)
	}

	bucket, err := assigner.Assign(key, 4)
	require.NoError(t, err)
	require.Equal(t, 1, bucket)
}

func TestAssignCapOverflowReusesBucketZero(t *testing.T) {
	t.Parallel()

	// maxBucketsNum=1 with target=1: all rows stay in bucket 0 once the cap
	// forces reuse instead of opening bucket 1.
	assigner := newTestAssigner(t, 1, 0, 1, 1)
	key := partKey("p")

	for _, hash := range []int32{10, 11, 12} {
		bucket, err := assigner.Assign(key, hash)
		require.NoError(t, err)
		require.Equal(t, 0, bucket, "hash %d", hash)
	}
	require.Equal(t, 0, assigner.MaxBucketID())
}

func TestAssignCapOverflowReusePool(t *testing.T) {
	t.Parallel()

	// cap=2, target=1: buckets 0 and 1 open, then every further row reuses
	// one of them; no bucket id ever exceeds the cap.
	assigner := newTestAssigner(t, 1, 0, 1, 2)
	key := partKey("p")

	seen := map[int]bool{}
	for hash := int32(0); hash < 50; hash++ {
		bucket, err := assigner.Assign(key, hash)
		require.NoError(t, err)
		require.Less(t, bucket, 2)
		require.GreaterOrEqual(t, bucket, 0)
		seen[bucket] = true
	}
	require.True(t, seen[0])
	require.True(t, seen[1])
	require.Equal(t, 1, assigner.MaxBucketID())
}

func TestAssignOwnershipContainment(t *testing.T) {
	t.Parallel()

	const numAssigners = 3

	for assignID := 0; assignID < numAssigners; assignID++ {
		assigner := newTestAssigner(t, numAssigners, assignID, 1, UnlimitedBuckets)
		key := partKey("p")

		for hash := int32(0); hash < 200; hash++ {
			bucket, err := assigner.Assign(key, hash)
			require.NoError(t, err)
			require.True(t, OwnsBucket(bucket, numAssigners, assignID),
				"assigner %d returned foreign bucket %d", assignID, bucket)
		}
	}
}

func TestAssignPartitionIsolation(t *testing.T) {
	t.Parallel()

	assigner := newTestAssigner(t, 1, 0, 2, UnlimitedBuckets)
	keyA := partKey("a")
	keyB := partKey("b")

	// Fill partition A past several buckets.
	for hash := int32(0); hash < 10; hash++ {
		_, err := assigner.Assign(keyA, hash)
		require.NoError(t, err)
	}

	// Partition B still starts from bucket 0 with a fresh row count.
	want := []int{0, 0, 1, 1}
	for i, hash := range []int32{100, 101, 102, 103} {
		bucket, err := assigner.Assign(keyB, hash)
		require.NoError(t, err)
		require.Equal(t, want[i], bucket)
	}
}

func TestAssignCapStopsScanKeepsCurrentBucket(t *testing.T) {
	t.Parallel()

	// numAssigners=2, assignID=0, cap=4: owned in-cap ids are 0 and 2. Once
	// both are used and the next owned candidate (4) exceeds the cap, rows
	// keep accumulating in the current bucket.
	assigner := newTestAssigner(t, 2, 0, 1, 4)
	key := partKey("p")

	want := []int{0, 2, 2, 2}
	for i, hash := range []int32{1, 2, 3, 4} {
		bucket, err := assigner.Assign(key, hash)
		require.NoError(t, err)
		require.Equal(t, want[i], bucket, "hash %d", hash)
	}
}

func TestAssignBucketsExhausted(t *testing.T) {
	t.Parallel()

	// Half the id space per assigner, and this assigner owns exactly one
	// representable id (16383); after it fills up the scan exhausts.
	assigner := newTestAssigner(t, 16384, 16383, 1, UnlimitedBuckets)
	key := partKey("p")

	bucket, err := assigner.Assign(key, 1)
	require.NoError(t, err)
	require.Equal(t, 16383, bucket)

	_, err = assigner.Assign(key, 2)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBucketsExhausted)
}

func TestPrepareCommitIsNoOp(t *testing.T) {
	t.Parallel()

	assigner := newTestAssigner(t, 1, 0, 2, UnlimitedBuckets)
	key := partKey("p")

	b1, err := assigner.Assign(key, 10)
	require.NoError(t, err)

	assigner.PrepareCommit(1)
	assigner.PrepareCommit(2)

	b2, err := assigner.Assign(key, 10)
	require.NoError(t, err)
	require.Equal(t, b1, b2)

	// Subsequent fresh assignments continue the same sequence.
	bucket, err := assigner.Assign(key, 11)
	require.NoError(t, err)
	require.Equal(t, 0, bucket)
	bucket, err = assigner.Assign(key, 12)
	require.NoError(t, err)
	require.Equal(t, 1, bucket)

	require.Len(t, assigner.CurrentPartitions(), 1)
}

func TestCurrentPartitionsStructuralKeys(t *testing.T) {
	t.Parallel()

	assigner := newTestAssigner(t, 1, 0, 10, UnlimitedBuckets)

	// Equal-content keys built separately are one partition.
	_, err := assigner.Assign(partKey("us-east", "d1"), 1)
	require.NoError(t, err)
	_, err = assigner.Assign(partKey("us-east", "d1"), 2)
	require.NoError(t, err)
	_, err = assigner.Assign(partKey("us-west", "d1"), 3)
	require.NoError(t, err)

	partitions := assigner.CurrentPartitions()
	require.Len(t, partitions, 2)
}

func TestAssignCopiesCallerKeyBuffers(t *testing.T) {
	t.Parallel()

	assigner := newTestAssigner(t, 1, 0, 10, UnlimitedBuckets)

	buf := []byte("us-east")
	key := types.NewPartitionKey(types.BytesValue(buf))
	_, err := assigner.Assign(key, 1)
	require.NoError(t, err)

	// Caller reuses the buffer for the next record's key.
	copy(buf, "eu-west")
	key2 := types.NewPartitionKey(types.BytesValue([]byte("us-east")))
	_, err = assigner.Assign(key2, 2)
	require.NoError(t, err)

	require.Len(t, assigner.CurrentPartitions(), 1)
}

func TestNewAssignerRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := Config{NumAssigners: 0}
	_, err := NewAssigner(&cfg)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestAssignMultipleAssignersDisjointBuckets(t *testing.T) {
	t.Parallel()

	// Two assigners over the same logical partition never open the same
	// bucket id.
	const numAssigners = 2
	used := make([]map[int]bool, numAssigners)

	for assignID := 0; assignID < numAssigners; assignID++ {
		assigner := newTestAssigner(t, numAssigners, assignID, 1, UnlimitedBuckets)
		key := partKey("p")
		used[assignID] = map[int]bool{}

		for hash := int32(0); hash < 100; hash++ {
			bucket, err := assigner.Assign(key, hash)
			require.NoError(t, err)
			used[assignID][bucket] = true
		}
	}

	for bucket := range used[0] {
		require.False(t, used[1][bucket], "bucket %d opened by both assigners", bucket)
	}
}
