package debruijn

import (
	"io"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// dot graph name, node and edge parents must match it
const dotName = "debruijn"

// heavily supported edges draw with a thicker pen
const dotPenWeight = 3

// writeDot renders the graph to w in Graphviz DOT: one record per node
// and one weight-labelled edge per k-mer. Edges with weight above
// dotPenWeight draw thick so well supported spans stand out
func writeDot(w io.Writer, g *Graph) error {
	viz := gographviz.NewGraph()
	viz.SetName(dotName)
	viz.SetDir(true)
	viz.SetStrict(false)

	for _, n := range g.Nodes() {
		viz.AddNode(dotName, strconv.Quote(n), nil)
	}
	for _, u := range g.Nodes() {
		for _, v := range g.Successors(u) {
			weight := g.Weight(u, v)
			attrs := map[string]string{
				"label": strconv.Quote(strconv.Itoa(weight)),
			}
			if weight > dotPenWeight {
				attrs["penwidth"] = "2"
			}
			viz.AddEdge(strconv.Quote(u), strconv.Quote(v), true, attrs)
		}
	}

	if _, err := io.WriteString(w, viz.String()); err != nil {
		return errors.Wrap(err, "failed to write DOT graph")
	}
	return nil
}

// saveDot writes the DOT rendering of the graph to path
func saveDot(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create DOT file %s", path)
	}
	if err := writeDot(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
