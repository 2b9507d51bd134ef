package metrics

import (
	"qcert/camp/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// ConstructionMetrics tracks node construction through the factory.
// A nil *ConstructionMetrics is valid and records nothing.
type ConstructionMetrics struct {
	constructedTotal *prometheus.CounterVec
	failuresTotal    *prometheus.CounterVec
	internedBools    prometheus.Gauge
}

// NewConstructionMetrics creates and registers construction metrics with the
// provided registry. If registry is nil, a new one is created.
func NewConstructionMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ConstructionMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespace, subsystem := config.DefaultMetricsNamespace, config.DefaultMetricsSubsystem
	if cfg != nil {
		if cfg.Namespace != "" {
			namespace = cfg.Namespace
		}
		if cfg.Subsystem != "" {
			subsystem = cfg.Subsystem
		}
	}

	cm := &ConstructionMetrics{
		constructedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "nodes_constructed_total",
				Help:      "Total number of AST nodes constructed",
			},
			[]string{"kind"},
		),

		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "construction_failures_total",
				Help:      "Total number of rejected AST node constructions",
			},
			[]string{"kind", "error_type"},
		),

		internedBools: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "interned_bools",
				Help:      "Number of canonical boolean instances held by the factory",
			},
		),
	}

	registry.MustRegister(
		cm.constructedTotal,
		cm.failuresTotal,
		cm.internedBools,
	)

	return cm
}

// RecordConstructed records a successfully constructed node of the given kind.
func (cm *ConstructionMetrics) RecordConstructed(kind string) {
	if cm == nil {
		return
	}
	cm.constructedTotal.WithLabelValues(kind).Inc()
}

// RecordFailure records a rejected construction.
//
// Parameters:
//   - kind: tag of the node that could not be built
//   - errorType: "invalid_argument" or "invalid_state"
func (cm *ConstructionMetrics) RecordFailure(kind, errorType string) {
	if cm == nil {
		return
	}
	cm.failuresTotal.WithLabelValues(kind, errorType).Inc()
}

// SetInternedBools records the number of interned boolean instances.
func (cm *ConstructionMetrics) SetInternedBools(n int) {
	if cm == nil {
		return
	}
	cm.internedBools.Set(float64(n))
}
