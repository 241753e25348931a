// Package config loads and merges the console server configuration from
// environment variables, command-line flags, and an optional JSON file.
package config
