// Package telemetry groups the observability packages used by camp:
// structured logging (logging) and Prometheus construction metrics (metrics).
package telemetry
