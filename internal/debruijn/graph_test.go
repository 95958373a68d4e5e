package debruijn

import (
	"reflect"
	"testing"
)

// testEdge is a u->v edge with its weight, for building graphs in tests
type testEdge struct {
	u, v string
	w    int
}

// graphFromEdges builds a graph from a list of weighted edges
func graphFromEdges(edges []testEdge) *Graph {
	g := NewGraph()
	for _, e := range edges {
		g.AddEdge(e.u, e.v, e.w)
	}
	return g
}

// graphEdges flattens a graph's edges back to a comparable map
func graphEdges(g *Graph) map[string]map[string]int {
	edges := make(map[string]map[string]int)
	for _, u := range g.Nodes() {
		for _, v := range g.Successors(u) {
			if edges[u] == nil {
				edges[u] = make(map[string]int)
			}
			edges[u][v] = g.Weight(u, v)
		}
	}
	return edges
}

func Test_buildGraph(t *testing.T) {
	type args struct {
		kmers kmerTable
	}
	tests := []struct {
		name      string
		args      args
		wantNodes []string
		wantEdges map[string]map[string]int
	}{
		{
			"one edge per distinct k-mer",
			args{
				kmers: kmerTable{
					"AACC": 2,
					"ACCG": 1,
				},
			},
			[]string{"AAC", "ACC", "CCG"},
			map[string]map[string]int{
				"AAC": {"ACC": 2},
				"ACC": {"CCG": 1},
			},
		},
		{
			"duplicate nodes collapse",
			args{
				kmers: kmerTable{
					"AAA": 3,
				},
			},
			[]string{"AA"},
			map[string]map[string]int{
				"AA": {"AA": 3},
			},
		},
		{
			"empty table",
			args{
				kmers: kmerTable{},
			},
			[]string{},
			map[string]map[string]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(tt.args.kmers)

			if gotNodes := g.Nodes(); !reflect.DeepEqual(gotNodes, tt.wantNodes) {
				t.Errorf("buildGraph() nodes = %v, want %v", gotNodes, tt.wantNodes)
			}
			if gotEdges := graphEdges(g); !reflect.DeepEqual(gotEdges, tt.wantEdges) {
				t.Errorf("buildGraph() edges = %v, want %v", gotEdges, tt.wantEdges)
			}
		})
	}
}

func Test_buildGraph_totalWeight(t *testing.T) {
	// the edge weights of a fresh graph sum to the number of k-mer
	// occurrences in the reads
	table := make(kmerTable)
	table.countRead("AACCGGTT", 4)
	table.countRead("CCGGTTAA", 4)

	g := buildGraph(table)

	if got, want := g.TotalWeight(), table.total(); got != want {
		t.Errorf("TotalWeight() = %d, want %d", got, want)
	}
}

func Test_Graph_AddEdge(t *testing.T) {
	g := NewGraph()
	g.AddEdge("AAC", "ACC", 1)
	g.AddEdge("AAC", "ACC", 2)

	if got, want := g.Weight("AAC", "ACC"), 3; got != want {
		t.Errorf("Weight() after re-adding an edge = %d, want %d", got, want)
	}
	if got, want := g.EdgeCount(), 1; got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}
	if got, want := g.NodeCount(), 2; got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
}

func Test_Graph_RemoveEdge(t *testing.T) {
	g := graphFromEdges([]testEdge{
		{"AAC", "ACC", 1},
		{"ACC", "CCG", 1},
	})
	g.RemoveEdge("AAC", "ACC")

	if g.HasEdge("AAC", "ACC") {
		t.Error("HasEdge() = true after RemoveEdge(), want false")
	}
	if !g.HasNode("AAC") || !g.HasNode("ACC") {
		t.Error("RemoveEdge() removed an endpoint, want endpoints kept")
	}
	if got, want := g.InDegree("ACC"), 0; got != want {
		t.Errorf("InDegree() = %d, want %d", got, want)
	}
}

func Test_Graph_RemoveNode(t *testing.T) {
	g := graphFromEdges([]testEdge{
		{"AAC", "ACC", 1},
		{"ACC", "CCG", 1},
		{"CCG", "CGG", 1},
	})
	g.RemoveNode("ACC")

	if g.HasNode("ACC") {
		t.Error("HasNode() = true after RemoveNode(), want false")
	}
	if g.HasEdge("AAC", "ACC") || g.HasEdge("ACC", "CCG") {
		t.Error("RemoveNode() left a dangling edge")
	}
	if got, want := g.OutDegree("AAC"), 0; got != want {
		t.Errorf("OutDegree() = %d, want %d", got, want)
	}
	if got, want := g.EdgeCount(), 1; got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}

	// removing a node twice is a no-op
	g.RemoveNode("ACC")
	if got, want := g.NodeCount(), 2; got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
}

func Test_Graph_neighbors(t *testing.T) {
	g := graphFromEdges([]testEdge{
		{"GGT", "GTA", 1},
		{"GGT", "GTC", 1},
		{"AGG", "GGT", 1},
		{"CGG", "GGT", 1},
	})

	if got, want := g.Successors("GGT"), []string{"GTA", "GTC"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Successors() = %v, want %v", got, want)
	}
	if got, want := g.Predecessors("GGT"), []string{"AGG", "CGG"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Predecessors() = %v, want %v", got, want)
	}
	if got, want := g.InDegree("GGT"), 2; got != want {
		t.Errorf("InDegree() = %d, want %d", got, want)
	}
	if got, want := g.OutDegree("GGT"), 2; got != want {
		t.Errorf("OutDegree() = %d, want %d", got, want)
	}
}
