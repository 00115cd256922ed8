package xwalk

import (
	"fmt"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
	"github.com/xwalk-go/xwalk/grid"
	"github.com/xwalk-go/xwalk/pairs"
)

// Run is the distance driver (spec.md §4.5): it enumerates candidate
// pairs from atoms and p, groups them by source atom, builds the
// occupancy grid (once, or once per source in local-grid mode), and
// runs one bounded search per source against its target set. It
// returns one Record per candidate pair, in enumeration order.
//
// Input and Configuration errors (spec.md §7) abort the run and are
// returned directly. Geometric and Consistency errors are attached to
// the offending Record instead; Run itself still returns nil in that
// case, matching spec.md §7's "no error propagates silently;
// unreachable-within-bound is not an error."
func Run(atoms atom.List, p Params) ([]Record, error) {
	p = WithDefaults(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for _, a := range atoms {
		if !a.Valid() {
			return nil, newError(KindInput, fmt.Sprintf("atom %s: coordinates or residue sequence number out of bounds", a.Descriptor()))
		}
	}

	candidateAtoms := atoms
	if p.BackboneOnly {
		candidateAtoms = atoms.Backbone()
	}

	spec := pairs.Spec{
		Selector1:      p.Selector1,
		Selector2:      p.Selector2,
		Intramolecular: p.Intramolecular,
		Intermolecular: p.Intermolecular,
		Homomeric:      p.Homomeric,
	}
	candidates := pairs.Enumerate(candidateAtoms, spec)
	if len(candidates) == 0 {
		return nil, nil
	}

	groups, order := groupBySource(candidates)
	maxDist := p.effectiveMaxDistance()

	useLocal := p.LocalGrid || grid.ShouldUseLocalGrid(atoms)

	var full *grid.Grid
	var err error
	if !useLocal {
		full, err = grid.New(atoms, p.CellSize, p.SolventRadius)
		if err != nil {
			return nil, newError(KindConfiguration, err.Error())
		}
	}

	var records []Record
	index := 0
	for _, source := range order {
		targets := groups[source]

		g := full
		if useLocal {
			g, err = grid.NewLocal(atoms, source, p.CellSize, p.SolventRadius, maxDist)
			if err != nil {
				return nil, newError(KindConfiguration, err.Error())
			}
		}

		batch := runSource(g, source, targets, maxDist, index)
		records = append(records, batch...)
		index += len(batch)
	}
	return records, nil
}

// groupBySource partitions pairs by their source atom, preserving the
// order in which each distinct source was first seen.
func groupBySource(candidates []pairs.Pair) (map[*atom.Atom][]*atom.Atom, []*atom.Atom) {
	groups := make(map[*atom.Atom][]*atom.Atom)
	var order []*atom.Atom
	for _, pr := range candidates {
		if _, ok := groups[pr.A]; !ok {
			order = append(order, pr.A)
		}
		groups[pr.A] = append(groups[pr.A], pr.B)
	}
	return groups, order
}

// runSource un-occupies source and every target's own shell, searches
// once, and re-occupies those shells before returning. It follows
// original_source/src/xwalk/math/SolventPathDistance.java's literal
// per-atom-shell reset loop (SPEC_FULL.md §S.4): every target is
// un-occupied and re-occupied individually, not as one aggregate pass,
// since two atoms can share grid cells. Unoccupy only lifts an atom's
// own shell and clearance contribution, not its bonded neighbours', so
// the source's and every searched target's shell cells are collected
// into an exempt set and passed to Search: without it, a lysine NZ's
// own shell would still be rejected by the clearance dilation its
// bonded CE etc. contribute (grid.Search's documented contract).
func runSource(g *grid.Grid, source *atom.Atom, targets []*atom.Atom, maxDist float64, startIndex int) []Record {
	records := make([]Record, 0, len(targets))

	srcIdx, err := g.AtomCellIndex(source)
	if err != nil {
		for i, t := range targets {
			records = append(records, failureRecord(startIndex+i, source, t, err))
		}
		return records
	}

	if uErr := g.Unoccupy(source); uErr != nil {
		for i, t := range targets {
			records = append(records, failureRecord(startIndex+i, source, t, uErr))
		}
		return records
	}
	defer g.Reoccupy(source)

	if cErr := g.CheckClear(srcIdx); cErr != nil {
		for i, t := range targets {
			records = append(records, failureRecord(startIndex+i, source, t, cErr))
		}
		return records
	}

	targetIdx := make([]int, 0, len(targets))
	idxToTarget := make(map[int]*atom.Atom, len(targets))
	pending := make([]Record, len(targets))
	unoccupied := make([]*atom.Atom, 0, len(targets))

	exempt := make(map[int]bool)
	if shell, ok := g.ShellCells(source); ok {
		for _, idx := range shell {
			exempt[idx] = true
		}
	}

	for i, t := range targets {
		pending[i] = Record{Index: startIndex + i, Source: source, Target: t, Euclidean: geom.Distance(source.Position, t.Position)}
		idx, err := g.AtomCellIndex(t)
		if err != nil {
			pending[i].Err = &Error{Kind: classifyGridError(err), msg: err.Error()}
			continue
		}
		if err := g.Unoccupy(t); err != nil {
			pending[i].Err = &Error{Kind: classifyGridError(err), msg: err.Error()}
			continue
		}
		unoccupied = append(unoccupied, t)
		if err := g.CheckClear(idx); err != nil {
			pending[i].Err = &Error{Kind: classifyGridError(err), msg: err.Error()}
			continue
		}
		targetIdx = append(targetIdx, idx)
		idxToTarget[idx] = t
		if shell, ok := g.ShellCells(t); ok {
			for _, sIdx := range shell {
				exempt[sIdx] = true
			}
		}
	}
	defer func() {
		for _, t := range unoccupied {
			g.Reoccupy(t)
		}
	}()

	if len(targetIdx) > 0 {
		results, serr := g.Search(srcIdx, targetIdx, maxDist, exempt)
		if serr != nil {
			for i := range pending {
				if pending[i].Err == nil {
					pending[i].Err = &Error{Kind: classifyGridError(serr), msg: serr.Error()}
				}
			}
		} else {
			byTarget := make(map[*atom.Atom]*grid.PathResult, len(results))
			for idx, r := range results {
				byTarget[idxToTarget[idx]] = r
			}
			for i, t := range targets {
				if r, ok := byTarget[t]; ok {
					pending[i].SASD = r.Distance
					pending[i].Reachable = true
				}
			}
		}
	}

	records = append(records, pending...)
	return records
}

// failureRecord builds a Record carrying a Geometric or Consistency
// error, classified from err, instead of a search result.
func failureRecord(index int, source, target *atom.Atom, err error) Record {
	return Record{
		Index:     index,
		Source:    source,
		Target:    target,
		Euclidean: geom.Distance(source.Position, target.Position),
		Err:       &Error{Kind: classifyGridError(err), msg: err.Error()},
	}
}

// Format renders r as spec.md §6's tab-separated output line:
// index, filename, source descriptor, target descriptor, Euclidean
// (one decimal place, "-" on error), SASD (one decimal place, "-" if
// unreachable or on error), and an optional probability column.
func (r Record) Format(filename string) string {
	euclidean := "-"
	if r.Err == nil {
		euclidean = fmt.Sprintf("%.1f", r.Euclidean)
	}
	sasd := "-"
	if r.Err == nil && r.Reachable {
		sasd = fmt.Sprintf("%.1f", r.SASD)
	}
	line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s", r.Index, filename, r.Source.Descriptor(), r.Target.Descriptor(), euclidean, sasd)
	if r.Probability != nil {
		line += fmt.Sprintf("\t%.4f", *r.Probability)
	}
	return line
}
