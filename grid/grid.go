// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
)

// Grid holds the classified cells of the local (size_x+2) x (size_y+2)
// subdomain, plus the per-type cell lists spec.md §4.2 requires boundary
// operators and solver sweeps to iterate over.
type Grid struct {
	Dom   *Domain
	Cells [][]*Cell // [i][j], i in [0,SizeX+1], j in [0,SizeY+1]

	FluidCells      []*Cell
	FixedWallCells  []*Cell
	MovingWallCells []*Cell
	InletCells      []*Cell
	OutletCells     []*Cell
	AdiabaticCells  []*Cell
	FreeSlipCells   []*Cell
}

// sideDelta is the (di,dj) offset of each Side under the convention that i
// increases east and j increases north: Top is +j, Bottom is -j, Left is
// -i, Right is +i.
var sideDelta = [4][2]int{
	Top:    {0, 1},
	Bottom: {0, -1},
	Left:   {-1, 0},
	Right:  {1, 0},
}

// sideDirection maps a local ghost Side to the Domain.Neighbors Direction
// that owns it.
var sideDirection = map[Side]Direction{
	Right:  East,
	Top:    North,
	Left:   West,
	Bottom: South,
}

// codeToType decodes a PGM-style integer geometry code per spec.md §4.2.
func codeToType(code int) (t CellType, wallID int, ok bool) {
	switch code {
	case 0:
		return Fluid, 0, true
	case 1:
		return Inlet, 0, true
	case 2:
		return Outlet, 0, true
	case 3, 4, 5:
		return FixedWall, code, true
	case 6:
		return MovingWall, 0, true
	case 7:
		return FreeSlip, 0, true
	case 8:
		return Adiabatic, 0, true
	default:
		return DefaultType, 0, false
	}
}

// Build classifies the local subdomain described by dom from a global
// geometry map (global[gi][gj], size GlobalSizeX x GlobalSizeY, using the
// PGM code table of spec.md §4.2). A local ghost position whose side has a
// real neighbor rank is classified DefaultType regardless of the global
// map's value there: its true contents arrive via halo exchange, not
// physical boundary dispatch (see DESIGN.md for why the PGM only needs to
// describe the global domain's own outer ring, not per-rank ghost data).
func Build(dom *Domain, global [][]int) (*Grid, error) {
	g := &Grid{Dom: dom}
	nx, ny := dom.SizeX+2, dom.SizeY+2
	g.Cells = make([][]*Cell, nx)
	for i := 0; i < nx; i++ {
		g.Cells[i] = make([]*Cell, ny)
		for j := 0; j < ny; j++ {
			g.Cells[i][j] = &Cell{I: i, J: j}
		}
	}

	for i := 0; i < nx; i++ {
		gi := dom.Imin + i
		for j := 0; j < ny; j++ {
			gj := dom.Jmin + j
			c := g.Cells[i][j]
			if onGhostSide(dom, nx, ny, i, j, Left) || onGhostSide(dom, nx, ny, i, j, Right) ||
				onGhostSide(dom, nx, ny, i, j, Top) || onGhostSide(dom, nx, ny, i, j, Bottom) {
				c.Type = DefaultType
				continue
			}
			if gi < 0 || gi >= dom.GlobalSizeX || gj < 0 || gj >= dom.GlobalSizeY {
				return nil, chk.Err("grid: local cell (%d,%d) maps to out-of-range global index (%d,%d)", i, j, gi, gj)
			}
			code := global[gi][gj]
			t, wallID, ok := codeToType(code)
			if !ok {
				return nil, chk.Err("grid: invalid geometry code %d at global index (%d,%d)", code, gi, gj)
			}
			c.Type = t
			c.WallID = wallID
		}
	}

	linkNeighbors(g)
	if err := computeBordersAndLists(g); err != nil {
		return nil, err
	}
	return g, nil
}

// onGhostSide reports whether local cell (i,j) is a ghost cell on the given
// side AND that side has a real neighbor rank (so its contents are owned by
// halo exchange, not physical geometry).
func onGhostSide(dom *Domain, nx, ny, i, j int, s Side) bool {
	switch s {
	case Left:
		return i == 0 && dom.HasNeighbor(sideDirection[Left])
	case Right:
		return i == nx-1 && dom.HasNeighbor(sideDirection[Right])
	case Bottom:
		return j == 0 && dom.HasNeighbor(sideDirection[Bottom])
	case Top:
		return j == ny-1 && dom.HasNeighbor(sideDirection[Top])
	}
	return false
}

func linkNeighbors(g *Grid) {
	nx, ny := len(g.Cells), len(g.Cells[0])
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := g.Cells[i][j]
			for s := Side(0); s < 4; s++ {
				di, dj := sideDelta[s][0], sideDelta[s][1]
				ni, nj := i+di, j+dj
				if ni >= 0 && ni < nx && nj >= 0 && nj < ny {
					c.neighbors[s] = g.Cells[ni][nj]
				}
			}
		}
	}
}

// computeBordersAndLists fills each cell's borders() (sides facing FLUID),
// enforces the "at most two fluid neighbors" invariant, and appends cells
// to the per-type lists in row-major (i outer, j inner) order.
func computeBordersAndLists(g *Grid) error {
	nx, ny := len(g.Cells), len(g.Cells[0])
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := g.Cells[i][j]
			if c.Type != Fluid && c.Type != DefaultType {
				for _, s := range [4]Side{Top, Bottom, Left, Right} {
					if n := c.neighbors[s]; n != nil && n.Type == Fluid {
						c.borders = append(c.borders, s)
					}
				}
				if len(c.borders) > 2 {
					return chk.Err("grid: cell (%d,%d) of type %v borders %d fluid cells, at most 2 allowed", i, j, c.Type, len(c.borders))
				}
			}
			switch c.Type {
			case Fluid:
				g.FluidCells = append(g.FluidCells, c)
			case FixedWall:
				g.FixedWallCells = append(g.FixedWallCells, c)
			case MovingWall:
				g.MovingWallCells = append(g.MovingWallCells, c)
			case Inlet:
				g.InletCells = append(g.InletCells, c)
			case Outlet:
				g.OutletCells = append(g.OutletCells, c)
			case Adiabatic:
				g.AdiabaticCells = append(g.AdiabaticCells, c)
			case FreeSlip:
				g.FreeSlipCells = append(g.FreeSlipCells, c)
			}
		}
	}
	return nil
}

// BuildLidDrivenCavity produces the built-in lid-driven-cavity grid of
// spec.md §4.2: the top ghost row is MOVING_WALL, the other three ghost
// sides are FIXED_WALL, and the interior is FLUID. Ghost sides owned by a
// real neighbor rank (multi-rank decompositions) are DefaultType instead,
// exactly as in Build.
func BuildLidDrivenCavity(dom *Domain) (*Grid, error) {
	g := &Grid{Dom: dom}
	nx, ny := dom.SizeX+2, dom.SizeY+2
	g.Cells = make([][]*Cell, nx)
	for i := 0; i < nx; i++ {
		g.Cells[i] = make([]*Cell, ny)
		for j := 0; j < ny; j++ {
			g.Cells[i][j] = &Cell{I: i, J: j}
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := g.Cells[i][j]
			interior := i >= 1 && i <= dom.SizeX && j >= 1 && j <= dom.SizeY
			switch {
			case interior:
				c.Type = Fluid
			case onGhostSide(dom, nx, ny, i, j, Left) || onGhostSide(dom, nx, ny, i, j, Right) ||
				onGhostSide(dom, nx, ny, i, j, Top) || onGhostSide(dom, nx, ny, i, j, Bottom):
				c.Type = DefaultType
			case j == ny-1:
				c.Type = MovingWall
			default:
				c.Type = FixedWall
			}
		}
	}
	linkNeighbors(g)
	if err := computeBordersAndLists(g); err != nil {
		return nil, err
	}
	return g, nil
}
