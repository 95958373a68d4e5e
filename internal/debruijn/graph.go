package debruijn

import "sort"

// Graph is a directed graph over (k-1)-mer nodes with weighted edges.
// Both adjacency directions are stored so predecessor lookups cost the
// same as successor lookups. Every mutation goes through the methods
// below, which keep the two directions consistent with one another.
type Graph struct {
	out map[string]map[string]int
	in  map[string]map[string]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		out: make(map[string]map[string]int),
		in:  make(map[string]map[string]int),
	}
}

// buildGraph turns a k-mer count table into a de Bruijn graph: one edge
// per distinct k-mer, from its (k-1)-length prefix to its (k-1)-length
// suffix, weighted by the k-mer's occurrence count
func buildGraph(kmers kmerTable) *Graph {
	g := NewGraph()
	for kmer, count := range kmers {
		g.AddEdge(kmer[:len(kmer)-1], kmer[1:], count)
	}
	return g
}

// AddNode adds n to the graph if it is not already there
func (g *Graph) AddNode(n string) {
	if _, ok := g.out[n]; !ok {
		g.out[n] = make(map[string]int)
		g.in[n] = make(map[string]int)
	}
}

// AddEdge adds a directed edge from u to v, creating both endpoints as
// needed. Adding an edge that already exists sums the weights
func (g *Graph) AddEdge(u, v string, weight int) {
	g.AddNode(u)
	g.AddNode(v)
	g.out[u][v] += weight
	g.in[v][u] += weight
}

// RemoveEdge deletes the edge from u to v. The endpoints stay in the
// graph, whatever their remaining degree
func (g *Graph) RemoveEdge(u, v string) {
	if m, ok := g.out[u]; ok {
		delete(m, v)
	}
	if m, ok := g.in[v]; ok {
		delete(m, u)
	}
}

// RemoveNode deletes n and every edge touching it. Removing a node that
// is not in the graph is a no-op
func (g *Graph) RemoveNode(n string) {
	for v := range g.out[n] {
		delete(g.in[v], n)
	}
	for u := range g.in[n] {
		delete(g.out[u], n)
	}
	delete(g.out, n)
	delete(g.in, n)
}

// HasNode returns whether n is in the graph
func (g *Graph) HasNode(n string) bool {
	_, ok := g.out[n]
	return ok
}

// HasEdge returns whether the directed edge from u to v is in the graph
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.out[u][v]
	return ok
}

// Weight returns the weight of the edge from u to v, zero if there is
// no such edge
func (g *Graph) Weight(u, v string) int {
	return g.out[u][v]
}

// Nodes returns every node in lexicographic order. All scans over the
// graph iterate this slice, so runs against the same input visit nodes
// in the same order
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.out))
	for n := range g.out {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}

// Successors returns n's out-neighbors in lexicographic order
func (g *Graph) Successors(n string) []string {
	return sortedKeys(g.out[n])
}

// Predecessors returns n's in-neighbors in lexicographic order
func (g *Graph) Predecessors(n string) []string {
	return sortedKeys(g.in[n])
}

// InDegree returns the number of edges into n
func (g *Graph) InDegree(n string) int {
	return len(g.in[n])
}

// OutDegree returns the number of edges out of n
func (g *Graph) OutDegree(n string) int {
	return len(g.out[n])
}

// NodeCount returns the number of nodes in the graph
func (g *Graph) NodeCount() int {
	return len(g.out)
}

// EdgeCount returns the number of edges in the graph
func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.out {
		count += len(targets)
	}
	return count
}

// TotalWeight sums the weight of every edge. On a freshly built graph
// this equals the number of k-mer occurrences counted from the reads
func (g *Graph) TotalWeight() int {
	total := 0
	for _, targets := range g.out {
		for _, w := range targets {
			total += w
		}
	}
	return total
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
