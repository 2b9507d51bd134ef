// Package metrics provides Prometheus metrics for CAMP node construction.
//
// Metrics:
//   - <namespace>_<subsystem>_nodes_constructed_total: nodes built, by kind
//   - <namespace>_<subsystem>_construction_failures_total: rejected constructions,
//     by kind and error type
//   - <namespace>_<subsystem>_interned_bools: canonical boolean instances held
//
// Metrics are registered on an explicit registry so tests and embedders can
// keep them isolated:
//
//	registry := prometheus.NewRegistry()
//	m := metrics.NewConstructionMetrics(&cfg.Telemetry.Metrics, registry)
package metrics
