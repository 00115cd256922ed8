/*
Package xwalk computes solvent-accessible surface distances (SASD)
between candidate atom pairs in a protein structure: the shortest path
between two atoms that stays clear of the protein's van der Waals
volume, bounded by a cross-linker's maximum reach.

The core is an occupancy grid (package grid) built once per structure,
a bounded weighted shortest-path search over that grid, and a pair
enumerator (package pairs) that turns two atom selectors into candidate
pairs. This package orchestrates the three into a driver: group
candidates by source atom, build the grid, run one search per source
against its target set, and emit one Record per pair.
*/
package xwalk
