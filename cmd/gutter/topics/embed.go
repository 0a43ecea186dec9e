// Package topics embeds the markdown help topics shown by "gutter help".
package topics

import "embed"

// FS holds every help topic file
//
//go:embed *.md
var FS embed.FS
