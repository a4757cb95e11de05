package config

import (
	_ "embed"
)

//go:embed example.toml
var exampleConfig []byte

// Example returns a sample configuration file.
func Example() []byte {
	return append([]byte(nil), exampleConfig...)
}
