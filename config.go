package paimon

import "fmt"

// UnlimitedBuckets is the MaxBucketsNum sentinel that disables the global
// bucket cap.
const UnlimitedBuckets = -1

// bucketIDBound is the exclusive upper bound of the bucket-id space. Bucket
// ids must fit a 16-bit signed integer because the per-partition hash index
// stores them as int16.
const bucketIDBound = 1<<15 - 1

// Config is the configuration for an Assigner.
//
// The configuration is immutable for the assigner's lifetime. All parallel
// writer subtasks of one job share identical values except AssignID.
type Config struct {
	// NumAssigners is the total number of parallel assigner instances in the
	// write job. Bucket-id ownership is statically sharded across them.
	NumAssigners int `yaml:"numAssigners"`

	// AssignID is this assigner's index, 0-based and less than NumAssigners.
	// An assigner only ever opens bucket ids i with i % NumAssigners == AssignID.
	AssignID int `yaml:"assignId"`

	// TargetBucketRowNumber is the number of rows routed into a bucket
	// before a new (or, at the cap, an alternate) bucket is sought.
	TargetBucketRowNumber int64 `yaml:"targetBucketRowNumber"`

	// MaxBucketsNum caps the total number of distinct bucket ids for the
	// table, or UnlimitedBuckets (-1) for no cap. Once the cap is reached,
	// overflow rows are routed into randomly chosen existing buckets and the
	// per-bucket row target is deliberately exceeded.
	MaxBucketsNum int `yaml:"maxBucketsNum"`
}

// DefaultConfig returns a configuration for a single-assigner job with an
// unlimited bucket cap.
//
// Returns:
//   - Config: Defaults (1 assigner, id 0, 2,000,000 rows per bucket, no cap)
func DefaultConfig() Config {
	return Config{
		NumAssigners:          1,
		AssignID:              0,
		TargetBucketRowNumber: 2_000_000,
		MaxBucketsNum:         UnlimitedBuckets,
	}
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Hard Validation Rules:
//   - NumAssigners >= 1
//   - 0 <= AssignID < NumAssigners
//   - TargetBucketRowNumber >= 1 (also guarantees the overflow reuse pool is
//     never consulted while empty: a fresh partition records its current
//     bucket before the row threshold can trigger)
//   - MaxBucketsNum is UnlimitedBuckets or >= 1
//   - If capped, AssignID < MaxBucketsNum (otherwise this assigner owns no
//     bucket id within the cap and could never open a legal bucket)
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.NumAssigners < 1 {
		return fmt.Errorf("%w: NumAssigners must be >= 1, got %d", ErrInvalidConfig, cfg.NumAssigners)
	}

	if cfg.AssignID < 0 || cfg.AssignID >= cfg.NumAssigners {
		return fmt.Errorf(
			"%w: AssignID must be in [0, NumAssigners), got %d with NumAssigners %d",
			ErrInvalidConfig, cfg.AssignID, cfg.NumAssigners,
		)
	}

	if cfg.TargetBucketRowNumber < 1 {
		return fmt.Errorf(
			"%w: TargetBucketRowNumber must be >= 1, got %d",
			ErrInvalidConfig, cfg.TargetBucketRowNumber,
		)
	}

	if cfg.MaxBucketsNum != UnlimitedBuckets {
		if cfg.MaxBucketsNum < 1 {
			return fmt.Errorf(
				"%w: MaxBucketsNum must be >= 1 or UnlimitedBuckets (-1), got %d",
				ErrInvalidConfig, cfg.MaxBucketsNum,
			)
		}

		if cfg.AssignID >= cfg.MaxBucketsNum {
			return fmt.Errorf(
				"%w: AssignID %d owns no bucket id below MaxBucketsNum %d; raise the cap or lower NumAssigners",
				ErrInvalidConfig, cfg.AssignID, cfg.MaxBucketsNum,
			)
		}
	}

	return nil
}

// unlimited reports whether the global bucket cap is disabled.
func (cfg *Config) unlimited() bool {
	return cfg.MaxBucketsNum == UnlimitedBuckets
}
