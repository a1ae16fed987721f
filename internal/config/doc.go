// Package config loads, normalizes, and validates Sweeparr configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads YAML or TOML files, and honours environment fallbacks such
// as SONARR_API_KEY and PLEX_TOKEN. The Config type centralizes every knob the
// cleanup run and the watch daemon need, including which backends are enabled:
// a backend participates in a run exactly when its section is present in the
// file.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
