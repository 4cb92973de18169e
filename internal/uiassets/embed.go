package uiassets

import "embed"

// Files contains the bundled localhost UI.
//
//go:embed all:dist
var Files embed.FS
