package debruijn

import (
	log "github.com/sirupsen/logrus"
)

// trimEntryTips removes weakly supported branches hanging off the
// graph's entry points. A node fed by more than one predecessor is a
// junction: every current source with a simple path down to the
// junction puts that path up for competition and the losing paths are
// removed along with their source nodes. The source set is recomputed
// after every resolution, since trimming can delete sources and expose
// new ones
func trimEntryTips(g *Graph, sel *pathSelector) *Graph {
	for trimOneEntryTip(g, sel) {
	}
	return g
}

// trimOneEntryTip resolves the first entry junction reached by two or
// more source paths and reports whether it changed the graph
func trimOneEntryTip(g *Graph, sel *pathSelector) bool {
	sources := sourceNodes(g)
	if len(sources) < 2 {
		return false
	}
	for _, node := range g.Nodes() {
		if g.InDegree(node) < 2 {
			continue
		}
		var paths [][]string
		for _, src := range sources {
			if p := firstSimplePath(g, src, node); p != nil {
				paths = append(paths, p)
			}
		}
		if len(paths) < 2 {
			continue
		}
		log.WithFields(log.Fields{"node": node, "paths": len(paths)}).Debug("trimming entry tips")
		lengths, weights := pathStats(g, paths)
		sel.selectBestPath(g, paths, lengths, weights, true, false)
		return true
	}
	return false
}

// trimExitTips removes weakly supported branches hanging off the
// graph's exit points, the mirror image of trimEntryTips: a node with
// more than one successor is a junction, every sink reachable from it
// competes, and losing paths are removed along with their sink nodes
func trimExitTips(g *Graph, sel *pathSelector) *Graph {
	for trimOneExitTip(g, sel) {
	}
	return g
}

// trimOneExitTip resolves the first exit junction that reaches two or
// more sinks and reports whether it changed the graph
func trimOneExitTip(g *Graph, sel *pathSelector) bool {
	sinks := sinkNodes(g)
	if len(sinks) < 2 {
		return false
	}
	for _, node := range g.Nodes() {
		if g.OutDegree(node) < 2 {
			continue
		}
		var paths [][]string
		for _, sink := range sinks {
			if p := firstSimplePath(g, node, sink); p != nil {
				paths = append(paths, p)
			}
		}
		if len(paths) < 2 {
			continue
		}
		log.WithFields(log.Fields{"node": node, "paths": len(paths)}).Debug("trimming exit tips")
		lengths, weights := pathStats(g, paths)
		sel.selectBestPath(g, paths, lengths, weights, false, true)
		return true
	}
	return false
}
