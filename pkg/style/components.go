package style

// StyleComponents is the resolved, deduplicated set of atomic components.
// It has no mutators, so a value can be shared between goroutines once built.
type StyleComponents struct {
	set map[StyleComponent]struct{}
}

// NewStyleComponents builds a set from already expanded components.
// Duplicates collapse.
func NewStyleComponents(components ...StyleComponent) StyleComponents {
	set := make(map[StyleComponent]struct{}, len(components))
	for _, c := range components {
		set[c] = struct{}{}
	}
	return StyleComponents{set: set}
}

func (s StyleComponents) has(c StyleComponent) bool {
	_, ok := s.set[c]
	return ok
}

// Grid reports whether separator lines are drawn
func (s StyleComponents) Grid() bool {
	return s.has(Grid)
}

// Header reports whether the file header is printed
func (s StyleComponents) Header() bool {
	return s.has(Header)
}

// Numbers reports whether the line number column is shown
func (s StyleComponents) Numbers() bool {
	return s.has(Numbers)
}

// Snip reports whether elided ranges are marked
func (s StyleComponents) Snip() bool {
	return s.has(Snip)
}

// Plain reports whether every member is the Plain keyword. An empty set is
// plain.
func (s StyleComponents) Plain() bool {
	for c := range s.set {
		if c != Plain {
			return false
		}
	}
	return true
}

// Len returns the number of distinct members
func (s StyleComponents) Len() int {
	return len(s.set)
}

// Slice returns the members in declaration order
func (s StyleComponents) Slice() []StyleComponent {
	out := make([]StyleComponent, 0, len(s.set))
	for _, c := range allComponents {
		if s.has(c) {
			out = append(out, c)
		}
	}
	return out
}
