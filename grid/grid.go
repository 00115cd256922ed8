/*
Package grid implements the uniform three-dimensional occupancy grid
spec.md §4.2 describes, plus the bounded, clearance-aware shortest-path
search of §4.3.

Grid is additionally exposed, through AsGraph, as an adapter that
implements gonum.org/v1/gonum/graph's Graph and Weighted interfaces
(see graph.go), the same adapter shape
other_examples/rmera-gochem__graph.go uses to expose a chem.Molecule to
gonum's graph algorithms. That adapter is not on the hot path (the
production search in search.go is a bespoke bounded Dijkstra, for the
reasons SPEC_FULL.md's DOMAIN STACK section lays out) but it is
exercised by this package's tests as a correctness oracle, and is public
API for callers who want to run other gonum/graph algorithms over the
grid.
*/
package grid

import (
	"errors"
	"math"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
)

// PathClearanceRadius is the minimum distance, in Ångström, a path cell
// must maintain from any occupied cell: the cross-linker moiety is
// about 1.5 carbon atoms thick. Fixed design constant, spec.md §4.3.
const PathClearanceRadius = 3.0

// MaxProteinDimension is the bounding-box edge length, in Ångström,
// beyond which local-grid mode should be used instead of a full grid.
const MaxProteinDimension = 150.0

var (
	// ErrNonPositiveCellSize is returned when the requested cell edge
	// length is not strictly positive.
	ErrNonPositiveCellSize = errors.New("grid: cell size must be positive")
	// ErrNegativeSolventRadius is returned when the solvent radius is
	// negative.
	ErrNegativeSolventRadius = errors.New("grid: solvent radius must not be negative")
	// ErrEmptyAtomList is returned when a grid is requested over no
	// atoms at all: there is no bounding box to build.
	ErrEmptyAtomList = errors.New("grid: atom list is empty")
	// ErrOutOfBounds is returned when a point or cell falls outside the
	// grid's extent.
	ErrOutOfBounds = errors.New("grid: point outside grid bounds")
	// ErrUnknownAtom is returned when Unoccupy/Reoccupy is called with
	// an atom that was not part of the grid's construction (or, in
	// local-grid mode, fell entirely outside the local box).
	ErrUnknownAtom = errors.New("grid: atom is not part of this grid")
	// ErrShellConflict is returned by CheckClear when a source or target
	// cell remains occupied after its own atom's shell has been
	// un-occupied, indicating overlap with another atom's shell.
	ErrShellConflict = errors.New("grid: cell occupied by another atom's shell")
	// ErrNonPositiveMaxDist is returned when Search is called with a
	// non-positive distance bound.
	ErrNonPositiveMaxDist = errors.New("grid: maximum distance must be positive")
)

// Grid is a dense, uniform decomposition of an axis-aligned box into
// cubic cells of edge CellSize, marking cells whose centre lies within
// any atom's van der Waals sphere (optionally expanded by a solvent
// radius) as occupied.
type Grid struct {
	Origin         geom.Point
	CellSize       float64
	Nx, Ny, Nz     int
	Cells          []Cell
	solventRadius  float64
	clearanceCount []int32
	atomCells      map[*atom.Atom][]int
	atomClearance  map[*atom.Atom][]int
	touched        []int
	local          bool
}

// New builds a full grid over every atom in atoms. cellSize is the
// cubic cell edge length (Å); solventRadius inflates every atom's van
// der Waals sphere before it is rasterised into the grid.
func New(atoms atom.List, cellSize, solventRadius float64) (*Grid, error) {
	if cellSize <= 0 {
		return nil, ErrNonPositiveCellSize
	}
	if solventRadius < 0 {
		return nil, ErrNegativeSolventRadius
	}
	if len(atoms) == 0 {
		return nil, ErrEmptyAtomList
	}
	box, maxVdw := centerBox(atoms)
	margin := maxVdw + solventRadius + cellSize
	box = box.ExpandBy(margin)
	g := allocate(box, cellSize, solventRadius, false)
	g.rasterize(atoms)
	return g, nil
}

// ShouldUseLocalGrid reports whether atoms' bounding box is large
// enough (spec.md §4.2's MaxProteinDimension trigger) that local-grid
// mode is the recommended default for per-source searches.
func ShouldUseLocalGrid(atoms atom.List) bool {
	if len(atoms) == 0 {
		return false
	}
	box, _ := centerBox(atoms)
	dx, dy, dz := box.Extent()
	return dx > MaxProteinDimension || dy > MaxProteinDimension || dz > MaxProteinDimension
}

// NewLocal builds a grid restricted to the intersection of the full
// atom bounding box and a cube of edge 2*(maxDist+2*cellSize) centred
// on source, per spec.md §4.2's local-grid mode. Atoms lying wholly
// outside the resulting box are skipped entirely.
func NewLocal(atoms atom.List, source *atom.Atom, cellSize, solventRadius, maxDist float64) (*Grid, error) {
	if cellSize <= 0 {
		return nil, ErrNonPositiveCellSize
	}
	if solventRadius < 0 {
		return nil, ErrNegativeSolventRadius
	}
	if maxDist <= 0 {
		return nil, ErrNonPositiveMaxDist
	}
	if len(atoms) == 0 {
		return nil, ErrEmptyAtomList
	}
	fullBox, _ := centerBox(atoms)
	half := maxDist + 2*cellSize
	cube := geom.Box{
		Min: source.Position.Add(-half, -half, -half),
		Max: source.Position.Add(half, half, half),
	}
	localBox := geom.Intersect(cube, fullBox)

	included := make(atom.List, 0, len(atoms))
	maxVdw := 0.0
	for _, a := range atoms {
		reach := a.Vdw + solventRadius
		atomBox := geom.Box{
			Min: a.Position.Add(-reach, -reach, -reach),
			Max: a.Position.Add(reach, reach, reach),
		}
		if boxesOverlap(atomBox, localBox) {
			included = append(included, a)
			if a.Vdw > maxVdw {
				maxVdw = a.Vdw
			}
		}
	}

	margin := maxVdw + solventRadius + cellSize
	box := localBox.ExpandBy(margin)
	g := allocate(box, cellSize, solventRadius, true)
	g.rasterize(included)
	return g, nil
}

func boxesOverlap(a, b geom.Box) bool {
	i := geom.Intersect(a, b)
	dx, dy, dz := i.Extent()
	return dx >= 0 && dy >= 0 && dz >= 0
}

func centerBox(atoms atom.List) (geom.Box, float64) {
	box := geom.EmptyBox()
	maxVdw := 0.0
	for _, a := range atoms {
		box = box.Extend(a.Position)
		if a.Vdw > maxVdw {
			maxVdw = a.Vdw
		}
	}
	return box, maxVdw
}

func allocate(box geom.Box, cellSize, solventRadius float64, local bool) *Grid {
	dx, dy, dz := box.Extent()
	nx := int(math.Ceil(dx / cellSize))
	ny := int(math.Ceil(dy / cellSize))
	nz := int(math.Ceil(dz / cellSize))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	if nz < 1 {
		nz = 1
	}
	cells := make([]Cell, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				cells[i+j*nx+k*nx*ny] = freshCell(i, j, k)
			}
		}
	}
	return &Grid{
		Origin:         box.Min,
		CellSize:       cellSize,
		Nx:             nx,
		Ny:             ny,
		Nz:             nz,
		Cells:          cells,
		solventRadius:  solventRadius,
		clearanceCount: make([]int32, len(cells)),
		atomCells:      make(map[*atom.Atom][]int),
		atomClearance:  make(map[*atom.Atom][]int),
		local:          local,
	}
}

// rasterize marks every cell whose centre lies within (atom.Vdw +
// solventRadius) of the atom's centre as occupied, iterating only the
// cubic index range bounding that sphere (spec.md §4.2 step 4).
func (g *Grid) rasterize(atoms atom.List) {
	for _, a := range atoms {
		reach := a.Vdw + g.solventRadius
		iMin, jMin, kMin, iMax, jMax, kMax := g.boundingRange(a.Position, reach)
		cells := make([]int, 0, 32)
		for k := kMin; k <= kMax; k++ {
			for j := jMin; j <= jMax; j++ {
				for i := iMin; i <= iMax; i++ {
					idx := g.index(i, j, k)
					if geom.Distance(g.CellCenter(idx), a.Position) <= reach {
						g.Cells[idx].Occupied = true
						cells = append(cells, idx)
					}
				}
			}
		}
		g.atomCells[a] = cells
		g.addClearance(a, cells)
	}
}

// addClearance dilates shellCells (the cells a's own shell occupies) by
// PathClearanceRadius and records a's contribution to clearanceCount, a
// reference count rather than a flat bool: several atoms' shells may
// dilate into the same cell, and Unoccupy/Reoccupy on one atom must
// only undo that one atom's contribution, not the whole cell's
// clearance status. This is what lets Unoccupy lift the clearance
// dilation around a source or target atom's own shell without
// disturbing the clearance contributed by the rest of the protein, the
// gap spec.md §9's open question about clearance/solvent-radius
// independence leaves unresolved and DESIGN.md's "Open Question
// decisions" section settles this way.
func (g *Grid) addClearance(a *atom.Atom, shellCells []int) {
	affected := make(map[int]bool)
	for _, idx := range shellCells {
		center := g.CellCenter(idx)
		iMin, jMin, kMin, iMax, jMax, kMax := g.boundingRange(center, PathClearanceRadius)
		for k := kMin; k <= kMax; k++ {
			for j := jMin; j <= jMax; j++ {
				for i := iMin; i <= iMax; i++ {
					vIdx := g.index(i, j, k)
					if geom.Distance(g.CellCenter(vIdx), center) <= PathClearanceRadius {
						affected[vIdx] = true
					}
				}
			}
		}
	}
	list := make([]int, 0, len(affected))
	for idx := range affected {
		g.clearanceCount[idx]++
		list = append(list, idx)
	}
	g.atomClearance[a] = list
}

// isNearProtein reports whether idx lies within PathClearanceRadius of
// any atom's van der Waals shell, per the currently live clearanceCount
// contributions (i.e. honouring any Unoccupy calls in effect).
func (g *Grid) isNearProtein(idx int) bool {
	return g.clearanceCount[idx] > 0
}

// boundingRange returns the inclusive cell-index range whose cells
// could possibly lie within radius of center, clipped to the grid.
func (g *Grid) boundingRange(center geom.Point, radius float64) (iMin, jMin, kMin, iMax, jMax, kMax int) {
	toIdx := func(v, origin float64) int {
		return int(math.Floor((v - origin) / g.CellSize))
	}
	iMin = clamp(toIdx(center.X()-radius, g.Origin.X()), 0, g.Nx-1)
	jMin = clamp(toIdx(center.Y()-radius, g.Origin.Y()), 0, g.Ny-1)
	kMin = clamp(toIdx(center.Z()-radius, g.Origin.Z()), 0, g.Nz-1)
	iMax = clamp(toIdx(center.X()+radius, g.Origin.X()), 0, g.Nx-1)
	jMax = clamp(toIdx(center.Y()+radius, g.Origin.Y()), 0, g.Ny-1)
	kMax = clamp(toIdx(center.Z()+radius, g.Origin.Z()), 0, g.Nz-1)
	return
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// index returns the linear index of cell (i, j, k).
func (g *Grid) index(i, j, k int) int {
	return i + j*g.Nx + k*g.Nx*g.Ny
}

// InBoundsIJK reports whether (i, j, k) addresses a real cell.
func (g *Grid) InBoundsIJK(i, j, k int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny && k >= 0 && k < g.Nz
}

// CellCenter returns the world-coordinate centre of the cell at linear
// index idx.
func (g *Grid) CellCenter(idx int) geom.Point {
	c := g.Cells[idx]
	half := g.CellSize / 2
	return g.Origin.Add(
		float64(c.I)*g.CellSize+half,
		float64(c.J)*g.CellSize+half,
		float64(c.K)*g.CellSize+half,
	)
}

// CellIndexAt floor-quantises p into index space and returns the
// linear index of the cell containing it, or ok=false if p lies outside
// the grid.
func (g *Grid) CellIndexAt(p geom.Point) (idx int, ok bool) {
	i := int(math.Floor((p.X() - g.Origin.X()) / g.CellSize))
	j := int(math.Floor((p.Y() - g.Origin.Y()) / g.CellSize))
	k := int(math.Floor((p.Z() - g.Origin.Z()) / g.CellSize))
	if !g.InBoundsIJK(i, j, k) {
		return 0, false
	}
	return g.index(i, j, k), true
}

// AtomCellIndex returns the linear index of the cell containing a's
// centre. It returns ErrUnknownAtom if a was skipped when building this
// grid (local-grid mode), and ErrOutOfBounds if a's position falls
// outside the grid's extent.
func (g *Grid) AtomCellIndex(a *atom.Atom) (int, error) {
	if _, ok := g.atomCells[a]; !ok {
		return 0, ErrUnknownAtom
	}
	idx, ok := g.CellIndexAt(a.Position)
	if !ok {
		return 0, ErrOutOfBounds
	}
	return idx, nil
}

// ShellCells returns the linear indices of every cell belonging to a's
// own van der Waals shell (the same set Unoccupy/Reoccupy toggle), or
// ok=false if a was not part of this grid's construction. Callers build
// Search's exempt set from this: an atom's bonded neighbours stay
// occupied and keep dilating clearanceCount across the atom's own
// shell even after Unoccupy, so the shell cells themselves must be
// exempted from the clearance check, not just the occupancy check.
func (g *Grid) ShellCells(a *atom.Atom) ([]int, bool) {
	cells, ok := g.atomCells[a]
	if !ok {
		return nil, false
	}
	out := make([]int, len(cells))
	copy(out, cells)
	return out, true
}

// CheckClear reports whether the cell at idx is free of occupancy. It
// returns ErrShellConflict if idx is still occupied, which after the
// cell's own atom has been Unoccupy'd can only mean another atom's
// shell overlaps it (spec.md §7's Consistency error kind).
func (g *Grid) CheckClear(idx int) error {
	if g.Cells[idx].Occupied {
		return ErrShellConflict
	}
	return nil
}

// Unoccupy clears the occupied flag on every cell belonging to a's own
// van der Waals shell, and lifts a's own contribution to the clearance
// mask around it, so a search can start or end inside it. It is the
// caller's responsibility to Reoccupy the same atom once the search
// concludes.
func (g *Grid) Unoccupy(a *atom.Atom) error {
	cells, ok := g.atomCells[a]
	if !ok {
		return ErrUnknownAtom
	}
	for _, idx := range cells {
		g.Cells[idx].Occupied = false
	}
	for _, idx := range g.atomClearance[a] {
		g.clearanceCount[idx]--
	}
	return nil
}

// Reoccupy restores the occupied flag on every cell belonging to a's
// own van der Waals shell, and restores a's contribution to the
// clearance mask.
func (g *Grid) Reoccupy(a *atom.Atom) error {
	cells, ok := g.atomCells[a]
	if !ok {
		return ErrUnknownAtom
	}
	for _, idx := range cells {
		g.Cells[idx].Occupied = true
	}
	for _, idx := range g.atomClearance[a] {
		g.clearanceCount[idx]++
	}
	return nil
}

// touch records idx as mutated by the current search, for the next
// soft-reset.
func (g *Grid) touch(idx int) {
	g.touched = append(g.touched, idx)
}

// softReset restores every cell mutated by the previous search to
// (unvisited, distance = +Inf, back-pointer = none), per spec.md §3,
// and clears the touched list. It costs O(cells explored by the
// previous search), not O(grid size).
func (g *Grid) softReset() {
	for _, idx := range g.touched {
		g.Cells[idx].Visited = false
		g.Cells[idx].Distance = math.Inf(1)
		g.Cells[idx].Prev = -1
	}
	g.touched = g.touched[:0]
}

// neighborOffsets is the fixed 26-neighbour stencil (the full 3x3x3
// cube minus the centre), enumerated in a deterministic order so that
// tie-breaking in Search is reproducible.
var neighborOffsets = func() [][3]int {
	offs := make([][3]int, 0, 26)
	for dk := -1; dk <= 1; dk++ {
		for dj := -1; dj <= 1; dj++ {
			for di := -1; di <= 1; di++ {
				if di == 0 && dj == 0 && dk == 0 {
					continue
				}
				offs = append(offs, [3]int{di, dj, dk})
			}
		}
	}
	return offs
}()

// neighbors returns the in-bounds linear indices of idx's up-to-26
// neighbours, with no occupancy or clearance filtering applied.
func (g *Grid) neighbors(idx int) []int {
	c := g.Cells[idx]
	out := make([]int, 0, 26)
	for _, off := range neighborOffsets {
		i, j, k := c.I+off[0], c.J+off[1], c.K+off[2]
		if g.InBoundsIJK(i, j, k) {
			out = append(out, g.index(i, j, k))
		}
	}
	return out
}
