package paimon

import (
	"math/rand/v2"

	"github.com/gavin9402/paimon/types"
)

// Option configures an Assigner with optional dependencies.
type Option func(*assignerOptions)

// assignerOptions holds optional Assigner configuration.
type assignerOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
	rand    *rand.Rand
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewAssigner
//
// Example:
//
//	assigner, err := paimon.NewAssigner(&cfg, paimon.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger types.Logger) Option {
	return func(o *assignerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewAssigner
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "mytable")
//	assigner, err := paimon.NewAssigner(&cfg, paimon.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *assignerOptions) {
		o.metrics = metrics
	}
}

// WithRand sets the random source used to pick a reuse bucket once the
// global bucket cap is reached.
//
// The default is a PCG source seeded from the global generator. Inject a
// fixed-seed source for deterministic tests.
//
// Parameters:
//   - r: Random source for uniform bucket picks
//
// Returns:
//   - Option: Functional option for NewAssigner
func WithRand(r *rand.Rand) Option {
	return func(o *assignerOptions) {
		o.rand = r
	}
}
