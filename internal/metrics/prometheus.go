package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gavin9402/paimon/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Registration is lazy: collectors are created and registered on first use,
// so constructing the collector is cheap and safe before the registry is
// finalized. All metrics are unlabeled to keep the hot assignment path cheap.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	assignments   prometheus.Counter
	bucketsOpened prometheus.Counter
	bucketReuse   prometheus.Counter
	partitions    prometheus.Gauge
	maxBucketID   prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "paimon" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "paimon"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignments = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "bucket_assigner",
			Name:      "assignments_total",
			Help:      "Total records routed to a bucket.",
		})

		p.bucketsOpened = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "bucket_assigner",
			Name:      "buckets_opened_total",
			Help:      "Total new bucket ids opened across all partitions.",
		})

		p.bucketReuse = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "bucket_assigner",
			Name:      "bucket_overflow_reuse_total",
			Help:      "Total overflow reuses of existing buckets after the bucket cap was reached.",
		})

		p.partitions = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "bucket_assigner",
			Name:      "partitions",
			Help:      "Distinct partition keys seen by this assigner.",
		})

		p.maxBucketID = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "bucket_assigner",
			Name:      "max_bucket_id",
			Help:      "Maximum bucket id returned by this assigner so far.",
		})

		for _, c := range []prometheus.Collector{
			p.assignments, p.bucketsOpened, p.bucketReuse, p.partitions, p.maxBucketID,
		} {
			// AlreadyRegisteredError is tolerated so two collectors sharing a
			// registry do not panic during tests.
			if err := p.reg.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					panic(err)
				}
			}
		}
	})
}

// RecordAssignment increments the assignment counter.
func (p *PrometheusCollector) RecordAssignment(_ /* bucket */ int) {
	p.ensureRegistered()
	p.assignments.Inc()
}

// RecordBucketOpened increments the buckets-opened counter.
func (p *PrometheusCollector) RecordBucketOpened(_ /* bucket */ int) {
	p.ensureRegistered()
	p.bucketsOpened.Inc()
}

// RecordBucketReused increments the overflow-reuse counter.
func (p *PrometheusCollector) RecordBucketReused(_ /* bucket */ int) {
	p.ensureRegistered()
	p.bucketReuse.Inc()
}

// RecordPartitionCount sets the partition gauge.
func (p *PrometheusCollector) RecordPartitionCount(count int) {
	p.ensureRegistered()
	p.partitions.Set(float64(count))
}

// RecordMaxBucketID sets the max-bucket-id gauge.
func (p *PrometheusCollector) RecordMaxBucketID(id int) {
	p.ensureRegistered()
	p.maxBucketID.Set(float64(id))
}
