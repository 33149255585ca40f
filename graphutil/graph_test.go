package graphutil

import "testing"

type edgeGraph struct {
	nodes []string
	edges map[string][]string
	rev   map[string][]string
}

func (g edgeGraph) Nodes() []string             { return g.nodes }
func (g edgeGraph) Successors(x string) []string { return g.edges[x] }
func (g edgeGraph) Predecessors(x string) []string { return g.rev[x] }

func TestReachabilityMatrixTransitiveClosure(t *testing.T) {
	g := edgeGraph{
		nodes: []string{"a", "b", "c"},
		edges: map[string][]string{
			"a": {"b"},
			"b": {"c"},
		},
	}
	reach := ReachabilityMatrix(g)
	idx := map[string]int{"a": 0, "b": 1, "c": 2}
	if !reach[idx["a"]][idx["c"]] {
		t.Error("a should reach c transitively through b")
	}
	if reach[idx["c"]][idx["a"]] {
		t.Error("c should not reach a")
	}
	if !reach[idx["a"]][idx["a"]] {
		t.Error("reachability should be reflexive")
	}
}

func TestClosureOnDisconnectedGraph(t *testing.T) {
	adj := [][]bool{
		{false, false},
		{false, false},
	}
	closure := Closure(adj)
	if !closure[0][0] || !closure[1][1] {
		t.Error("closure should be reflexive even with no edges")
	}
	if closure[0][1] || closure[1][0] {
		t.Error("disconnected nodes should not reach each other")
	}
}
