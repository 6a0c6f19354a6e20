// Package config loads and validates the pipeline configuration from
// built-in defaults, an optional YAML file, and CARPRICE_* environment
// variable overrides, in that order of precedence.
package config
