//go:build nogit

package gutter

import "github.com/arthur-debert/gutter/pkg/style"

func changesEnabled(style.StyleComponents) bool {
	return false
}
