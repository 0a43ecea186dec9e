// Package style resolves the decorations drawn around each line of output.
//
// A style request is a list of keywords such as "numbers,grid" or one of the
// bundles "full", "plain" and "auto". Each keyword expands into atomic
// components; the expansions are collected into a StyleComponents set which
// renderers query through named predicates:
//
//	components, err := style.ResolveStrings([]string{"full"}, interactive)
//	if err != nil {
//		return err
//	}
//	if components.Numbers() {
//		// draw the line number column
//	}
//
// "auto" is the only keyword whose expansion depends on context: it becomes
// "full" when output goes to an interactive terminal and "plain" otherwise.
//
// The Changes predicate depends on version control integration and is only
// compiled in when the nogit build tag is absent. Code that must build both
// ways checks ChangesSupported from a file guarded by the same tag.
package style
