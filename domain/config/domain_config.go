package config

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Identity rules
	IndexMarker   string // path stem that marks a directory index document
	FoldRootIndex bool   // fold a top-level index into the bare namespace key

	// Graph constraints
	MaxNodesPerGraph int
	MaxLinksPerGraph int

	// Metric settings
	BaseSymbolSize int

	// Linking rules
	AllowSelfLinks      bool
	DeduplicateLinks    bool
	CaseSensitiveTitles bool
}

// DefaultDomainConfig returns the default domain configuration.
//
// FoldRootIndex defaults to false: a top-level index.md keys as
// "<namespace>/index" rather than the bare namespace, matching the behavior
// the visualization frontend was built against. Nested index documents always
// fold into their parent directory.
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		IndexMarker:   "index",
		FoldRootIndex: false,

		MaxNodesPerGraph: 100000,
		MaxLinksPerGraph: 500000,

		BaseSymbolSize: 1,

		// Wikilinks are opportunistic author syntax: a page may cite itself
		// and may cite the same page twice, and both must show in the graph.
		AllowSelfLinks:      true,
		DeduplicateLinks:    false,
		CaseSensitiveTitles: false,
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.IndexMarker == "" {
		c.IndexMarker = "index"
	}
	if c.BaseSymbolSize < 1 {
		c.BaseSymbolSize = 1
	}
	return nil
}
