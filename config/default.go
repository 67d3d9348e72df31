package config

import (
	_ "embed"
)

// defaultConfigYAML holds the built-in configuration. External config
// files and SITETRACK_* environment variables override it.
//
//go:embed default.yaml
var defaultConfigYAML []byte
