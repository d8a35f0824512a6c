// Package config loads and validates the monitor configuration from an
// optional YAML file and environment variables, with sensible defaults
// for every field. Monitoring intervals are deliberately not configurable
// and live as constants next to the loops that use them.
package config
