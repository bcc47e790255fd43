package queries

import "time"

// GetStatsQuery requests summary statistics for the current run
type GetStatsQuery struct{}

// Validate validates the query
func (q GetStatsQuery) Validate() error {
	return nil
}

// StatsResult describes one finished assembly run
type StatsResult struct {
	RunID           string    `json:"run_id"`
	Namespace       string    `json:"namespace"`
	BuiltAt         time.Time `json:"built_at"`
	DurationMillis  int64     `json:"duration_ms"`
	NodeCount       int       `json:"node_count"`
	LinkCount       int       `json:"link_count"`
	UnresolvedCount int       `json:"unresolved_count"`
	ClusterCount    int       `json:"cluster_count"`
	Density         float64   `json:"density"`
}
