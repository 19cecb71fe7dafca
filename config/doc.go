// Package config loads iterkit tool configuration.
//
// Values come from a YAML file, then a .env file, then the process
// environment, each layer overriding the previous one. Environment keys
// are the service name followed by the mapstructure path, upper-cased
// and joined with underscores:
//
//	ITERCTL_LOGGING_LEVEL=debug
//	ITERCTL_ITERTOOLS_TEE_BLOCK_SIZE=256
//
// # Usage
//
//	cfg, err := config.Load("iterctl", config.WithConfigFile(path))
//
// Custom structs can embed ServiceConfig and use LoadConfig directly.
package config
