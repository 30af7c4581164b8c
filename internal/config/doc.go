// Package config loads and validates the application configuration.
//
// Values are merged from three sources in priority order: environment
// variables, command-line flags, and an optional JSON file whose path is
// itself taken from the first two sources. Merging is additive — the first
// source to provide a non-zero value for a field wins.
package config
