//go:build !nogit

package gutter

import "github.com/arthur-debert/gutter/pkg/style"

func changesEnabled(components style.StyleComponents) bool {
	return components.Changes()
}
