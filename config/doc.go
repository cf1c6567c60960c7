// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Values can be overridden from the environment (PNS_* variables, optionally
// read from a .env file). The notification code table may be inlined or kept
// in a separate YAML file.
package config
