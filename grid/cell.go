package grid

import "math"

// Cell is a single voxel of the occupancy grid, indexed by (I, J, K).
// Occupied is set once at grid construction and is otherwise read-only
// outside of the atom-shell Unoccupy/Reoccupy calls the driver makes
// between searches. Visited, Distance and Prev are BFS-local scratch
// state, reset between searches by Grid's soft-reset (see Grid.touch).
type Cell struct {
	I, J, K  int
	Occupied bool
	Visited  bool
	Distance float64
	Prev     int // linear index of the predecessor cell, -1 if none
}

func freshCell(i, j, k int) Cell {
	return Cell{I: i, J: j, K: k, Distance: math.Inf(1), Prev: -1}
}
