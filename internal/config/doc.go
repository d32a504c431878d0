// Package config resolves ghlookup settings from flags, GHLOOKUP_* environment
// variables, an optional YAML file and built-in defaults.
package config
