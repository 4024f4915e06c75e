// Package config loads, normalizes, and validates configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files resolved from an explicit flag,
// ~/.config/saints/config.toml, or ./saints.toml in that order. Obtain
// settings through this package so downstream code receives sanitized paths
// and clear validation errors.
package config
