// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, environment variables and command
// line flags. It gives the rest of the program type-safe access to settings
// such as the backend selection and log level.
package config
