// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid owns the per-rank domain descriptor, the cell-type
// classification of the staggered grid, and the typed adjacency lists the
// rest of the solver dispatches boundary operators and sweeps over.
package grid

// Direction indexes a rank's four cardinal neighbors, in the fixed order
// prescribed by spec.md §3: east, north, west, south.
type Direction int

const (
	East Direction = iota
	North
	West
	South
)

// NoNeighbor is the sentinel Domain.Neighbors value meaning "physical
// boundary, no neighbor rank in this direction".
const NoNeighbor = -1

// Domain is the immutable-after-setup per-rank domain descriptor of
// spec.md §3.
type Domain struct {
	Dx, Dy                   float64 // uniform cell sizes, identical on all ranks
	GlobalSizeX, GlobalSizeY int     // cells in the whole problem
	SizeX, SizeY             int     // interior cells owned by this rank (excluding ghost layer)
	Imin, Jmin, Imax, Jmax   int     // global indices bounding the local subdomain including its ghost layer
	Neighbors                [4]int  // rank ids indexed by Direction; NoNeighbor if none
}

// HasNeighbor reports whether this rank has a real neighbor in direction d.
func (d *Domain) HasNeighbor(dir Direction) bool {
	return d.Neighbors[dir] != NoNeighbor
}
