// Package config loads service configuration from a YAML file and the
// environment, and validates it per service role.
package config
