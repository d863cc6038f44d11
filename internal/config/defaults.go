package config

import (
	_ "embed"
)

//go:embed defaults/forest.yaml
var defaultYAML []byte
