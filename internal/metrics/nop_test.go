package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/gavin9402/paimon/types"
)

func TestNopMetricsImplementsInterface(t *testing.T) {
	t.Parallel()

	var collector types.MetricsCollector = NewNop()
	require.NotNil(t, collector)

	collector.RecordAssignment(0)
	collector.RecordBucketOpened(1)
	collector.RecordBucketReused(0)
	collector.RecordPartitionCount(2)
	collector.RecordMaxBucketID(1)
}

func TestPrometheusCollectorRegistersLazily(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	// Nothing registered before first use.
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)

	collector.RecordAssignment(0)
	collector.RecordAssignment(3)
	collector.RecordBucketOpened(3)
	collector.RecordPartitionCount(1)
	collector.RecordMaxBucketID(3)

	families, err = reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				byName[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				byName[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}

	require.InDelta(t, 2, byName["test_bucket_assigner_assignments_total"], 0.001)
	require.InDelta(t, 1, byName["test_bucket_assigner_buckets_opened_total"], 0.001)
	require.InDelta(t, 1, byName["test_bucket_assigner_partitions"], 0.001)
	require.InDelta(t, 3, byName["test_bucket_assigner_max_bucket_id"], 0.001)
}

func TestPrometheusCollectorSharedRegistry(t *testing.T) {
	t.Parallel()

	// Two collectors on one registry must not panic on re-registration.
	reg := prometheus.NewRegistry()
	a := NewPrometheus(reg, "shared")
	b := NewPrometheus(reg, "shared")

	a.RecordAssignment(0)
	require.NotPanics(t, func() { b.RecordAssignment(1) })
}
