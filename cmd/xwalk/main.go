/*
xwalk is a command-line driver for the solvent-accessible surface
distance engine (package github.com/xwalk-go/xwalk). It reads a small,
plain-text atom fixture (deliberately not a PDB parser — see
SPEC_FULL.md's Non-goals section), parses selector and distance flags,
runs the engine, and prints one tab-separated line per emitted pair.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rmera/scu"

	"github.com/xwalk-go/xwalk"
	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
	"github.com/xwalk-go/xwalk/pairs"
)

func main() {
	maxDist := flag.Float64("maxdist", xwalk.DefaultCrossLinkerLength, "Maximum cross-linker reach, in Angstrom")
	cellSize := flag.Float64("cellsize", xwalk.DefaultCellSize, "Occupancy grid cell edge length, in Angstrom")
	solventRadius := flag.Float64("solvent", 0, "Solvent radius, in Angstrom (0 selects the engine default)")
	intra := flag.Bool("intra", false, "Restrict pairs to atoms on the same chain")
	inter := flag.Bool("inter", false, "Restrict pairs to atoms on different chains")
	homomeric := flag.Bool("homomeric", false, "Deduplicate pairs across symmetric chains")
	localGrid := flag.Bool("local", false, "Force per-source local-grid rebuilding")
	backboneOnly := flag.Bool("backbone", false, "Restrict candidate atoms to the main chain")
	res1 := flag.String("res1", "", "Comma-separated residue names admitted as source atoms")
	res2 := flag.String("res2", "", "Comma-separated residue names admitted as target atoms")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "xwalk: solvent-accessible surface distances.\nUsage:\n  %s [flags] atoms.txt\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := args[0]

	atoms := readFixture(filename)

	p := xwalk.Params{
		MaxDistance:    *maxDist,
		CellSize:       *cellSize,
		SolventRadius:  *solventRadius,
		Intramolecular: *intra,
		Intermolecular: *inter,
		Homomeric:      *homomeric,
		LocalGrid:      *localGrid,
		BackboneOnly:   *backboneOnly,
		Selector1:      pairs.Selector{ResNames: splitNonEmpty(*res1)},
		Selector2:      pairs.Selector{ResNames: splitNonEmpty(*res2)},
	}

	records, err := xwalk.Run(atoms, p)
	scu.QErr(err)

	for _, r := range records {
		fmt.Println(r.Format(filename))
	}
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// readFixture reads the CLI's plain-text atom fixture: one atom per
// line, whitespace-separated fields in the order
//
//	serial name resName resSeq chain x y z [element]
//
// element defaults to the atom name's first character when omitted.
// This is not a PDB parser; PDB parsing is out of scope for this
// engine (spec.md §1) and for this CLI.
func readFixture(filename string) atom.List {
	lines, err := scu.NewMustReadFile(filename)
	scu.QErr(err)

	var atoms atom.List
	for line := lines.Next(); line != "EOF"; line = lines.Next() {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 8 && len(f) != 9 {
			scu.QErr(fmt.Errorf("xwalk: malformed fixture line: %q", line))
		}
		serial := scu.MustAtoi(f[0])
		name := f[1]
		resName := f[2]
		resSeq := scu.MustAtoi(f[3])
		chain := f[4][0]
		x := scu.MustParseFloat(f[5])
		y := scu.MustParseFloat(f[6])
		z := scu.MustParseFloat(f[7])
		element := name[:1]
		if len(f) == 9 {
			element = f[8]
		}
		a := atom.New(serial, name, resName, resSeq, 0, chain, 0, geom.NewPoint(x, y, z), element)
		atoms = append(atoms, a)
	}
	return atoms
}
