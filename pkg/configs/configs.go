// Package configs provides the embedded default configuration file
// printed by the `chunk config` command.
package configs

import _ "embed"

// DefaultConfigBytes is the default chunk.yml with every option documented.
//
//go:embed config.yml
var DefaultConfigBytes []byte
