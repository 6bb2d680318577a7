package paimon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1, cfg.NumAssigners)
	require.Equal(t, 0, cfg.AssignID)
	require.Equal(t, int64(2_000_000), cfg.TargetBucketRowNumber)
	require.Equal(t, UnlimitedBuckets, cfg.MaxBucketsNum)
	require.True(t, cfg.unlimited())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid multi-assigner",
			mutate: func(c *Config) { c.NumAssigners = 4; c.AssignID = 3 },
		},
		{
			name:   "valid capped",
			mutate: func(c *Config) { c.MaxBucketsNum = 8 },
		},
		{
			name:    "zero assigners",
			mutate:  func(c *Config) { c.NumAssigners = 0 },
			wantErr: "NumAssigners",
		},
		{
			name:    "negative assign id",
			mutate:  func(c *Config) { c.AssignID = -1 },
			wantErr: "AssignID",
		},
		{
			name:    "assign id out of range",
			mutate:  func(c *Config) { c.NumAssigners = 2; c.AssignID = 2 },
			wantErr: "AssignID",
		},
		{
			name:    "zero target rows",
			mutate:  func(c *Config) { c.TargetBucketRowNumber = 0 },
			wantErr: "TargetBucketRowNumber",
		},
		{
			name:    "bad cap sentinel",
			mutate:  func(c *Config) { c.MaxBucketsNum = 0 },
			wantErr: "MaxBucketsNum",
		},
		{
			name:    "cap excludes this assigner",
			mutate:  func(c *Config) { c.NumAssigners = 4; c.AssignID = 2; c.MaxBucketsNum = 2 },
			wantErr: "owns no bucket id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
