package grid

import "gonum.org/v1/gonum/graph"

// AsGraph exposes g as a gonum/graph Graph and Weighted, the same
// adapter shape other_examples/rmera-gochem__graph.go uses for
// chemgraph.Topology. Node IDs are the grid's own linear cell indices.
// Occupied and clearance-masked cells are omitted from Nodes and from
// From/HasEdgeBetween, so gonum graph algorithms see exactly the free
// cells the bespoke Search in search.go walks — except that, unlike
// Search, this adapter has no notion of a query's exempt source/target
// cells, so an occupied or clearance-masked endpoint simply will not
// appear as a graph node here. It exists for cross-checking Search
// against gonum/graph/path.DijkstraFrom in tests, and for callers who
// want a different gonum/graph algorithm over the same occupancy field.
type graphView struct {
	g *Grid
}

// AsGraph returns a graphView over g.
func (g *Grid) AsGraph() graph.Weighted {
	return graphView{g: g}
}

func (v graphView) free(idx int) bool {
	return !v.g.Cells[idx].Occupied && !v.g.isNearProtein(idx)
}

func (v graphView) Node(id int64) graph.Node {
	idx := int(id)
	if idx < 0 || idx >= len(v.g.Cells) || !v.free(idx) {
		return nil
	}
	return cellNode(idx)
}

func (v graphView) Nodes() graph.Nodes {
	var nodes []graph.Node
	for idx := range v.g.Cells {
		if v.free(idx) {
			nodes = append(nodes, cellNode(idx))
		}
	}
	return &nodeIterator{nodes: nodes, cursor: -1}
}

func (v graphView) From(id int64) graph.Nodes {
	idx := int(id)
	if idx < 0 || idx >= len(v.g.Cells) || !v.free(idx) {
		return graph.Empty
	}
	var nodes []graph.Node
	for _, n := range v.g.neighbors(idx) {
		if v.free(n) {
			nodes = append(nodes, cellNode(n))
		}
	}
	return &nodeIterator{nodes: nodes, cursor: -1}
}

func (v graphView) HasEdgeBetween(xid, yid int64) bool {
	x, y := int(xid), int(yid)
	if !v.free(x) || !v.free(y) {
		return false
	}
	for _, n := range v.g.neighbors(x) {
		if n == y {
			return true
		}
	}
	return false
}

func (v graphView) Edge(uid, vid int64) graph.Edge {
	we := v.WeightedEdge(uid, vid)
	if we == nil {
		return nil
	}
	return we
}

func (v graphView) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if !v.HasEdgeBetween(uid, vid) {
		return nil
	}
	u, x := int(uid), int(vid)
	return cellEdge{from: cellNode(u), to: cellNode(x), weight: v.g.stepCost(u, x)}
}

func (v graphView) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	we := v.WeightedEdge(xid, yid)
	if we == nil {
		return 0, false
	}
	return we.Weight(), true
}

// cellNode is a gonum graph.Node backed by a grid linear cell index.
type cellNode int

func (n cellNode) ID() int64 { return int64(n) }

// cellEdge is a gonum graph.WeightedEdge between two cellNodes.
type cellEdge struct {
	from, to cellNode
	weight   float64
}

func (e cellEdge) From() graph.Node         { return e.from }
func (e cellEdge) To() graph.Node           { return e.to }
func (e cellEdge) ReversedEdge() graph.Edge { return cellEdge{from: e.to, to: e.from, weight: e.weight} }
func (e cellEdge) Weight() float64          { return e.weight }

// nodeIterator is a minimal graph.Nodes over a pre-built slice.
type nodeIterator struct {
	nodes  []graph.Node
	cursor int
}

func (it *nodeIterator) Next() bool {
	if it.cursor+1 >= len(it.nodes) {
		return false
	}
	it.cursor++
	return true
}

func (it *nodeIterator) Node() graph.Node {
	if it.cursor < 0 || it.cursor >= len(it.nodes) {
		return nil
	}
	return it.nodes[it.cursor]
}

func (it *nodeIterator) Reset() { it.cursor = -1 }

func (it *nodeIterator) Len() int {
	if it.cursor >= len(it.nodes) {
		return 0
	}
	return len(it.nodes) - it.cursor - 1
}
