package debruijn

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// allSimplePaths returns every directed path from start to end that
// visits no node twice. Successors are expanded in lexicographic order,
// so the result order is fixed for a given graph. A start equal to end,
// or an endpoint missing from the graph, yields no paths. Enumeration
// cost grows exponentially with branching, callers only run it across
// bubble spans or a mostly linear simplified graph
func allSimplePaths(g *Graph, start, end string) [][]string {
	if start == end || !g.HasNode(start) || !g.HasNode(end) {
		return nil
	}

	var paths [][]string
	visited := map[string]bool{start: true}
	path := []string{start}

	var walk func(node string)
	walk = func(node string) {
		if node == end {
			found := make([]string, len(path))
			copy(found, path)
			paths = append(paths, found)
			return
		}
		for _, next := range g.Successors(node) {
			if visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, next)
			walk(next)
			path = path[:len(path)-1]
			delete(visited, next)
		}
	}
	walk(start)

	return paths
}

// firstSimplePath returns the first path that allSimplePaths would
// find between start and end, without enumerating the rest, or nil if
// the two nodes are not connected
func firstSimplePath(g *Graph, start, end string) []string {
	if start == end || !g.HasNode(start) || !g.HasNode(end) {
		return nil
	}

	visited := map[string]bool{start: true}
	path := []string{start}

	var walk func(node string) []string
	walk = func(node string) []string {
		if node == end {
			found := make([]string, len(path))
			copy(found, path)
			return found
		}
		for _, next := range g.Successors(node) {
			if visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, next)
			if found := walk(next); found != nil {
				return found
			}
			path = path[:len(path)-1]
			delete(visited, next)
		}
		return nil
	}
	return walk(start)
}

// pathAverageWeight returns the mean weight of the path's consecutive
// edges. The caller guarantees the path has at least one edge
func pathAverageWeight(g *Graph, path []string) float64 {
	weights := make([]float64, len(path)-1)
	for i := range weights {
		weights[i] = float64(g.Weight(path[i], path[i+1]))
	}
	return stat.Mean(weights, nil)
}

// pathStats returns each path's edge count and weight. A single-edge
// path takes that edge's weight directly, longer paths take the mean
// over their edges
func pathStats(g *Graph, paths [][]string) ([]int, []float64) {
	lengths := make([]int, len(paths))
	weights := make([]float64, len(paths))
	for i, p := range paths {
		lengths[i] = len(p) - 1
		if lengths[i] == 1 {
			weights[i] = float64(g.Weight(p[0], p[1]))
		} else {
			weights[i] = pathAverageWeight(g, p)
		}
	}
	return lengths, weights
}

// sourceNodes returns every node without an incoming edge, in
// lexicographic order. These are the entry points contigs start from
func sourceNodes(g *Graph) []string {
	var sources []string
	for _, n := range g.Nodes() {
		if g.InDegree(n) == 0 {
			sources = append(sources, n)
		}
	}
	return sources
}

// sinkNodes returns every node without an outgoing edge, in
// lexicographic order. These are the exit points contigs end at
func sinkNodes(g *Graph) []string {
	var sinks []string
	for _, n := range g.Nodes() {
		if g.OutDegree(n) == 0 {
			sinks = append(sinks, n)
		}
	}
	return sinks
}

// ancestors returns the set of nodes from which n is reachable. A node
// is an ancestor of itself
func ancestors(g *Graph, n string) map[string]bool {
	seen := map[string]bool{n: true}
	queue := []string{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range g.Predecessors(cur) {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return seen
}

// lowestCommonAncestor returns the most downstream node that reaches
// both a and b: a common ancestor from which no other common ancestor
// is reachable. When several nodes qualify the lexicographically
// smallest wins. ok is false when a and b share no ancestor at all
func lowestCommonAncestor(g *Graph, a, b string) (lca string, ok bool) {
	ancA := ancestors(g, a)
	var common []string
	for n := range ancestors(g, b) {
		if ancA[n] {
			common = append(common, n)
		}
	}
	if len(common) == 0 {
		return "", false
	}
	sort.Strings(common)

	isCommon := make(map[string]bool, len(common))
	for _, n := range common {
		isCommon[n] = true
	}
	for _, c := range common {
		if !reachesAnother(g, c, isCommon) {
			return c, true
		}
	}

	// every candidate reaches another one, so they sit on a cycle and
	// are all equally deep
	return common[0], true
}

// reachesAnother reports whether a member of candidates other than
// start is reachable from start by a path of one or more edges
func reachesAnother(g *Graph, start string, candidates map[string]bool) bool {
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.Successors(cur) {
			if seen[next] {
				continue
			}
			if candidates[next] {
				return true
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return false
}
