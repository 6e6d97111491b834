package testdata

import (
	_ "embed"
)

// Menu is a YAML menu with five items, the last one without a colour.
//
//go:embed menu.yaml
var Menu []byte
