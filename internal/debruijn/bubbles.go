package debruijn

import (
	log "github.com/sirupsen/logrus"
)

// simplifyBubbles collapses divergence and reconvergence spans until
// none remain. Each pass scans nodes in order, resolves the first
// bubble it finds and rescans the mutated graph from the top. A span
// only counts as a bubble when at least two simple paths cross it, so
// every pass that keeps the loop going has removed an edge and the
// loop terminates
func simplifyBubbles(g *Graph, sel *pathSelector) *Graph {
	for {
		anc, node, found := findBubble(g)
		if !found {
			return g
		}
		log.WithFields(log.Fields{"ancestor": anc, "node": node}).Debug("resolving bubble")
		solveBubble(g, sel, anc, node)
	}
}

// findBubble locates the first bubble in scan order: a node with more
// than one predecessor where some pair of predecessors shares a common
// ancestor, with at least two simple paths running from that ancestor
// down to the node
func findBubble(g *Graph) (anc, node string, found bool) {
	for _, n := range g.Nodes() {
		preds := g.Predecessors(n)
		if len(preds) < 2 {
			continue
		}
		for i, a := range preds {
			for _, b := range preds[i+1:] {
				ancestor, ok := lowestCommonAncestor(g, a, b)
				if !ok {
					continue
				}
				if len(allSimplePaths(g, ancestor, n)) < 2 {
					continue
				}
				return ancestor, n, true
			}
		}
	}
	return "", "", false
}

// solveBubble resolves a single bubble: every simple path across the
// span competes on weight then length, and one survives. The span's
// endpoints are kept either way, only interior edges and orphaned
// interior nodes are dropped
func solveBubble(g *Graph, sel *pathSelector, anc, node string) *Graph {
	paths := allSimplePaths(g, anc, node)
	lengths := make([]int, len(paths))
	weights := make([]float64, len(paths))
	for i, p := range paths {
		lengths[i] = len(p) - 1
		weights[i] = pathAverageWeight(g, p)
	}
	return sel.selectBestPath(g, paths, lengths, weights, false, false)
}
