package debruijn

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// pathSelector resolves competition between alternative paths through
// the graph. It owns the run's random source: ties that survive the
// weight and length rules are settled by an explicitly seeded generator,
// so two runs over the same input pick the same winners
type pathSelector struct {
	rnd *rand.Rand
}

// newPathSelector creates a selector seeded for one pipeline run
func newPathSelector(seed int64) *pathSelector {
	return &pathSelector{rnd: rand.New(rand.NewSource(seed))}
}

// selectBestPath keeps exactly one of the competing paths and removes
// the others from the graph. Paths with distinct weights are decided by
// weight, read depth being the strongest signal. Distinct lengths are
// the fallback, and a random draw settles full ties. With fewer than
// two paths there is no competition and the graph is left untouched
func (s *pathSelector) selectBestPath(g *Graph, paths [][]string, lengths []int, weights []float64, deleteEntry, deleteSink bool) *Graph {
	if len(paths) < 2 {
		return g
	}

	floats := make([]float64, len(lengths))
	for i, l := range lengths {
		floats[i] = float64(l)
	}

	var best int
	switch {
	case stat.StdDev(weights, nil) > 0:
		best = indexOfMax(weights)
	case stat.StdDev(floats, nil) > 0:
		best = indexOfMax(floats)
	default:
		best = s.rnd.Intn(len(paths))
	}
	log.WithFields(log.Fields{"paths": len(paths), "kept": best}).Debug("selected best path")

	losers := make([][]string, 0, len(paths)-1)
	for i, p := range paths {
		if i != best {
			losers = append(losers, p)
		}
	}
	return removePaths(g, losers, deleteEntry, deleteSink)
}

// indexOfMax returns the first index holding the maximum value
func indexOfMax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// removePaths removes every edge along each path, then the entry and/or
// final node of each path when the flags say so, then every node left
// without a single edge in either direction. Paths may share edges: the
// edge set is deduplicated so each edge is removed once
func removePaths(g *Graph, paths [][]string, deleteEntry, deleteSink bool) *Graph {
	type edge struct {
		u, v string
	}

	edges := make(map[edge]bool)
	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			edges[edge{path[i], path[i+1]}] = true
		}
	}
	for e := range edges {
		g.RemoveEdge(e.u, e.v)
	}

	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		if deleteEntry {
			g.RemoveNode(path[0])
		}
		if deleteSink {
			g.RemoveNode(path[len(path)-1])
		}
	}

	for _, n := range g.Nodes() {
		if g.InDegree(n)+g.OutDegree(n) == 0 {
			g.RemoveNode(n)
		}
	}
	return g
}
