// Package config handles configuration management for dict.
// Settings come from embedded TOML defaults and DICT_ environment variables;
// there is no user configuration file.
package config
