package config

// Config is the root configuration structure for the camp command.
type Config struct {
	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Output controls how command results are printed.
	Output OutputConfig `yaml:"output"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains construction metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains construction metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether construction metrics are collected.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "camp"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "ast"
	Subsystem string `yaml:"subsystem"`
}

// IsEnabled returns true unless metrics were explicitly disabled.
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// OutputConfig controls command output.
type OutputConfig struct {
	// Format is the output format.
	// Options: "text", "json"
	// Default: "text"
	Format string `yaml:"format"`
}
