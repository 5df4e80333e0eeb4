// Package config defines the settings shared by the moore2mealy subcommands
// and provides helpers to load, validate and save them in YAML format.
//
// Command-line flags override whatever the file provides.
package config
