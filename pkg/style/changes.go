//go:build !nogit

package style

// ChangesSupported is true when version control markers are compiled in
const ChangesSupported = true

// Changes reports whether version control modification markers are shown
func (s StyleComponents) Changes() bool {
	return s.has(Changes)
}
