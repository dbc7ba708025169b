// Package config provides configuration loading and validation.
//
// It uses Viper to load configuration from a config.yml file, layers .env
// files and environment variables on top, and unmarshals the result into
// typed config structs with defaults and validation.
//
// # Usage
//
//	cfg, err := config.LoadApp()
//	cfg, err := config.LoadApp(config.WithConfigFile("./config.yml"))
//
// Environment variables override file values using underscore-separated
// paths (e.g. SERVER_PORT, ANALYZER_WORKERS).
package config
