package debruijn

// graphStats summarizes the reads and the graph built from them, before
// any simplification
type graphStats struct {
	Reads       int `json:"reads"`
	KmerSize    int `json:"kmerSize"`
	UniqueKmers int `json:"uniqueKmers"`
	TotalKmers  int `json:"totalKmers"`
	Nodes       int `json:"nodes"`
	Edges       int `json:"edges"`
	TotalWeight int `json:"totalWeight"`
	Sources     int `json:"sources"`
	Sinks       int `json:"sinks"`
}

// newGraphStats gathers the summary for a freshly built graph. On such
// a graph totalWeight always equals totalKmers, the report holds both
// so a mismatch is visible immediately
func newGraphStats(g *Graph, table kmerTable, reads, k int) graphStats {
	return graphStats{
		Reads:       reads,
		KmerSize:    k,
		UniqueKmers: len(table),
		TotalKmers:  table.total(),
		Nodes:       g.NodeCount(),
		Edges:       g.EdgeCount(),
		TotalWeight: g.TotalWeight(),
		Sources:     len(sourceNodes(g)),
		Sinks:       len(sinkNodes(g)),
	}
}
