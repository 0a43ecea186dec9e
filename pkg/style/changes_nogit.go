//go:build nogit

package style

// ChangesSupported is true when version control markers are compiled in
const ChangesSupported = false
