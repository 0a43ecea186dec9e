package style

// ReportEntry is the state of one atomic component
type ReportEntry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Report describes a resolution for display
type Report struct {
	Requested   []string      `json:"requested"`
	Interactive bool          `json:"interactive"`
	Components  []ReportEntry `json:"components"`
	Plain       bool          `json:"plain"`
}

// NewReport lists every atomic component the build supports together with
// whether the resolved set enables it
func NewReport(requested []string, interactive bool, resolved StyleComponents) *Report {
	report := &Report{
		Requested:   requested,
		Interactive: interactive,
		Plain:       resolved.Plain(),
	}
	for _, c := range allComponents {
		if !c.IsAtomic() {
			continue
		}
		if c == Changes && !ChangesSupported {
			continue
		}
		report.Components = append(report.Components, ReportEntry{
			Name:    c.String(),
			Enabled: resolved.has(c),
		})
	}
	return report
}

// CatalogEntry describes what one keyword expands to
type CatalogEntry struct {
	Name        string   `json:"name"`
	Atomic      bool     `json:"atomic"`
	Interactive []string `json:"interactive"`
	Piped       []string `json:"piped"`
}

// Catalog lists every keyword with its expansion in both contexts
type Catalog struct {
	Entries []CatalogEntry `json:"keywords"`
}

// NewCatalog builds the catalog in declaration order
func NewCatalog() *Catalog {
	catalog := &Catalog{}
	for _, c := range allComponents {
		catalog.Entries = append(catalog.Entries, CatalogEntry{
			Name:        c.String(),
			Atomic:      c.IsAtomic(),
			Interactive: names(c.Components(true)),
			Piped:       names(c.Components(false)),
		})
	}
	return catalog
}

func names(components []StyleComponent) []string {
	out := make([]string, len(components))
	for i, c := range components {
		out[i] = c.String()
	}
	return out
}
