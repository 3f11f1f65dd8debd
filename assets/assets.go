// Package assets embeds the files the storefront needs when no overrides exist on disk.
package assets

import _ "embed"

// Stylesheet is the built-in theme, used when the configured stylesheet file is missing.
//
//go:embed ui/storefront.css
var Stylesheet string
