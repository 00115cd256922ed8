package grid

import (
	"container/heap"
	"math"
)

// Step costs for the 26-neighbour stencil: axis-aligned, face-diagonal
// and corner-diagonal moves, scaled by cell size. spec.md §4.3.
const (
	stepAxis    = 1.0
	stepFace    = math.Sqrt2
	stepCorner  = 1.7320508075688772 // math.Sqrt(3)
)

// PathResult is the outcome of a single-target search: the ordered
// sequence of linear cell indices from source to target inclusive, and the
// cumulative Euclidean length of that path.
type PathResult struct {
	Cells    []int
	Distance float64
}

// Search runs a bounded, clearance-aware shortest-path search from the
// cell at sourceIdx to every cell in targetIdxs, stopping as soon as
// every target has been settled or the frontier's minimum tentative
// distance exceeds maxDist. It returns a map from target cell index to
// PathResult; a target with no entry in the map was unreachable within
// maxDist.
//
// exempt lists cell indices that are allowed to violate the clearance
// mask (nearProtein): callers pass the source and target atoms' own
// shell cells here, since those are legitimately inside/adjacent to the
// protein body by construction and would otherwise be rejected outright.
func (g *Grid) Search(sourceIdx int, targetIdxs []int, maxDist float64, exempt map[int]bool) (map[int]*PathResult, error) {
	if maxDist <= 0 {
		return nil, ErrNonPositiveMaxDist
	}
	g.softReset()

	results := make(map[int]*PathResult, len(targetIdxs))
	remaining := make(map[int]bool, len(targetIdxs))
	for _, t := range targetIdxs {
		if t == sourceIdx {
			results[t] = &PathResult{Cells: []int{sourceIdx}, Distance: 0}
			continue
		}
		remaining[t] = true
	}
	if len(remaining) == 0 {
		return results, nil
	}

	pq := &priorityQueue{}
	heap.Init(pq)

	g.Cells[sourceIdx].Distance = 0
	g.touch(sourceIdx)
	heap.Push(pq, pqItem{idx: sourceIdx, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		u := item.idx
		if g.Cells[u].Visited {
			continue
		}
		if item.dist > maxDist {
			break
		}
		g.Cells[u].Visited = true

		if remaining[u] {
			results[u] = g.reconstruct(u)
			delete(remaining, u)
			if len(remaining) == 0 {
				break
			}
		}

		for _, v := range g.neighbors(u) {
			if g.Cells[v].Occupied && !exempt[v] {
				continue
			}
			if g.isNearProtein(v) && !exempt[v] {
				continue
			}
			step := g.stepCost(u, v)
			cand := item.dist + step
			if cand > maxDist {
				continue
			}
			if cand < g.Cells[v].Distance {
				if math.IsInf(g.Cells[v].Distance, 1) {
					g.touch(v)
				}
				g.Cells[v].Distance = cand
				g.Cells[v].Prev = u
				heap.Push(pq, pqItem{idx: v, dist: cand})
			}
		}
	}

	return results, nil
}

// stepCost returns the Euclidean step cost between adjacent cells u and
// v, scaled by CellSize: 1, sqrt(2) or sqrt(3) depending on how many of
// the three axes differ between them.
func (g *Grid) stepCost(u, v int) float64 {
	cu, cv := g.Cells[u], g.Cells[v]
	diffs := 0
	if cu.I != cv.I {
		diffs++
	}
	if cu.J != cv.J {
		diffs++
	}
	if cu.K != cv.K {
		diffs++
	}
	switch diffs {
	case 1:
		return stepAxis * g.CellSize
	case 2:
		return stepFace * g.CellSize
	default:
		return stepCorner * g.CellSize
	}
}

// reconstruct walks Prev back-pointers from target to source, then
// reverses the result into source-to-target order.
func (g *Grid) reconstruct(target int) *PathResult {
	var cells []int
	for idx := target; idx != -1; idx = g.Cells[idx].Prev {
		cells = append(cells, idx)
		if g.Cells[idx].Prev == -1 {
			break
		}
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return &PathResult{Cells: cells, Distance: g.Cells[target].Distance}
}

// pqItem is a priority-queue entry: a cell index and the tentative
// distance it was pushed with. Stale entries (superseded by a shorter
// relaxation, or already Visited) are discarded lazily on pop rather
// than removed from the heap, which keeps the heap implementation
// simple at the cost of a few extra pops.
type pqItem struct {
	idx  int
	dist float64
}

// priorityQueue is a container/heap min-heap of pqItem ordered by
// dist. Equal distances pop in FIFO order (push order), giving the
// deterministic tie-break spec.md §4.3 calls for.
type priorityQueue struct {
	items []pqItem
	seq   []int
	next  int
}

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	if pq.items[i].dist != pq.items[j].dist {
		return pq.items[i].dist < pq.items[j].dist
	}
	return pq.seq[i] < pq.seq[j]
}

func (pq *priorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.seq[i], pq.seq[j] = pq.seq[j], pq.seq[i]
}

func (pq *priorityQueue) Push(x interface{}) {
	pq.items = append(pq.items, x.(pqItem))
	pq.seq = append(pq.seq, pq.next)
	pq.next++
}

func (pq *priorityQueue) Pop() interface{} {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	pq.seq = pq.seq[:n-1]
	return item
}
