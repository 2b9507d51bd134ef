// Package config provides configuration loading for the camp command.
//
// Configuration is read from a YAML file, filled in with defaults, optionally
// overridden from the environment, and validated:
//
//	cfg, err := config.LoadConfigWithEnvOverrides("camp.yaml", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Example
//
//	telemetry:
//	  logging:
//	    level: debug
//	    format: text
//	  metrics:
//	    enabled: true
//	    namespace: camp
//	output:
//	  format: json
//
// # Environment Overrides
//
// Variables use the form CAMP_SECTION_FIELD:
//
//	CAMP_LOGGING_LEVEL, CAMP_LOGGING_FORMAT, CAMP_METRICS_ENABLED, CAMP_OUTPUT_FORMAT
package config
