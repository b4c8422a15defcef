// Package config loads and validates the TOML configuration for bulkrename.
// Configuration is optional; every field has a working default so the CLI runs
// without a config file.
package config
