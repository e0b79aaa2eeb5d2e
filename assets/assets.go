package assets

import "embed"

// Levels holds the embedded TMX playground levels.
//
//go:embed all:levels
var Levels embed.FS
