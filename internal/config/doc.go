// Package config loads and validates the ostforge TOML configuration.
//
// Configuration flows through three steps: Default() supplies the
// repository defaults, Load() overlays an optional TOML file, and
// normalize/Validate expand paths and reject unusable values. All path
// fields in a loaded Config are absolute.
package config
