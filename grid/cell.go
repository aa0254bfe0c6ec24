// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// CellType is the closed enum of cell classifications from spec.md §3.
type CellType int

const (
	Fluid CellType = iota
	Inlet
	Outlet
	FixedWall
	MovingWall
	FreeSlip
	Adiabatic
	DefaultType // exterior/ghost, owned by a neighbor rank or not yet set
)

func (t CellType) String() string {
	switch t {
	case Fluid:
		return "FLUID"
	case Inlet:
		return "INLET"
	case Outlet:
		return "OUTLET"
	case FixedWall:
		return "FIXED_WALL"
	case MovingWall:
		return "MOVING_WALL"
	case FreeSlip:
		return "FREE_SLIP"
	case Adiabatic:
		return "ADIABATIC"
	default:
		return "DEFAULT"
	}
}

// Side enumerates a cell's four borders, in the fixed order required by
// spec.md §3's borders() contract: top, bottom, left, right.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// Cell is one element of the (SizeX+2) x (SizeY+2) local grid. Neighbor
// pointers replace the source's raw pointers (see DESIGN.md "arena +
// indices"): each Cell lives in Grid.Cells and points directly at its four
// geometric neighbors, which is safe here because the whole matrix is
// allocated once and never resized or relocated after Build.
type Cell struct {
	I, J   int      // local indices into Grid.Cells
	Type   CellType // classification
	WallID int      // for FixedWall: the wall id (3,4,5,...) used to look up WallTemps; 0 otherwise

	neighbors [4]*Cell // indexed by Side; nil if out of the local grid
	borders   []Side   // sides facing a FLUID neighbor, in Top,Bottom,Left,Right order
}

// Neighbor returns the cell on the given side, or nil if (i,j) falls outside
// the local grid (which only happens for ghost cells themselves, never for
// an interior or ghost cell looking inward).
func (c *Cell) Neighbor(s Side) *Cell {
	return c.neighbors[s]
}

// Borders returns the sides of c that border a FLUID cell, in the fixed
// enumeration order top, bottom, left, right.
func (c *Cell) Borders() []Side {
	return c.borders
}

// NumFluidNeighbors returns len(c.Borders()), the invariant spec.md §3 caps
// at two for any non-fluid cell.
func (c *Cell) NumFluidNeighbors() int {
	return len(c.borders)
}
