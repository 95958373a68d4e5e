package debruijn

// Contig is one assembled sequence
type Contig struct {
	// Seq is the assembled nucleotide sequence
	Seq string

	// Length is the number of characters in Seq
	Length int
}

// extractContigs walks every simple path between every source and sink
// pair and spells out the sequence each path encodes: the first node's
// full label, then one character per following node, the part past its
// overlap with the node before it. Paths are walked in lexicographic
// (source, sink) order so the contig list is stable across runs
func extractContigs(g *Graph, sources, sinks []string) []Contig {
	var contigs []Contig
	for _, source := range sources {
		for _, sink := range sinks {
			for _, path := range allSimplePaths(g, source, sink) {
				seq := path[0]
				for _, node := range path[1:] {
					seq += node[len(path[0])-1:]
				}
				contigs = append(contigs, Contig{Seq: seq, Length: len(seq)})
			}
		}
	}
	return contigs
}
