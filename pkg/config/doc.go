// Package config loads the CloudConnect application configuration.
//
// Configuration is a YAML file merged over built-in defaults, so a file
// only needs to name the settings it changes:
//
//	telemetry:
//	  logging:
//	    level: debug
//	  audit:
//	    database: audit.db
//	  metrics:
//	    enabled: true
package config
