// Package theme provides the glyphs and colours used to draw the board.
//
// Themes are JSON files embedded at build time. Colours are written as hex
// strings and resolved to tcell styles when a theme is loaded.
package theme

import "embed"

// themeFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var themeFS embed.FS
