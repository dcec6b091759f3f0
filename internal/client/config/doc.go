// Package config loads runtime configuration for the students directory CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config, or the CONFIG_PATH
//     environment variable (see parseJson).
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones. The result is validated before it is
// returned.
//
// Supported flags
//
//	-a string   base URL of the students API
//	-t int      request timeout in seconds (0 = no timeout)
//	-l string   log file path (empty = no logging)
//
// Environment
//
//	STUDENTS_API_URL      base URL of the students API
//	STUDENTS_API_TIMEOUT  request timeout, e.g. "10s"
//	STUDENTS_LOG_FILE     log file path
//	STUDENTS_LOG_LEVEL    debug | info | warn | error
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "request_timeout": "10s",
//	  "log_file": "studentdir.log",
//	  "log_level": "info"
//	}
package config
