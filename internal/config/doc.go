// Package config loads kupu's settings with viper. Values come from, in
// increasing precedence: built-in defaults, config.yaml, a .env file, and
// KUPU_-prefixed environment variables. The result is validated before use.
package config
