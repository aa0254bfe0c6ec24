// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom is the concrete realization of the "process-topology
// bootstrap" and "geometry file parsing" collaborators spec.md §1 treats as
// out of scope interfaces: Topology computes a rank's tile and neighbors in
// an iproc x jproc decomposition, and ReadPGM parses the PGM-style geometry
// map of spec.md §4.2.
package geom

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gaurav44/CFD-lab/grid"
)

// Topology computes rank r's tile (r mod iproc, r div iproc) in an
// iproc x jproc decomposition of a globalSizeX x globalSizeY problem
// (spec.md §6 "Process topology"), and the grid.Domain descriptor for that
// tile: its owned subdomain bounds (including the 1-cell ghost layer) and
// its four cardinal neighbor ranks, grid.NoNeighbor at global edges.
//
// globalSizeX/globalSizeY are the interior cell counts (param.Imax/Jmax),
// excluding the geometry map's own outer ring. Domain.GlobalSizeX is that
// count plus 2: the geometry map handed to grid.Build/geom.ReadPGM carries
// one extra row/column all around, holding the true physical-boundary
// classification (inlet/wall/outlet codes) that a rank with no neighbor on
// a side reads directly instead of via halo exchange — see DESIGN.md.
//
// The interior is tiled as evenly as possible: the first globalSizeX%iproc
// columns of tiles get one extra cell in x (analogously for y), so every
// tile's SizeX differs from any other's by at most one — this is what lets
// the single-rank and multi-rank configurations of spec.md §8 scenario 5
// agree exactly when summed, since no cell is double counted or dropped.
func Topology(rank, iproc, jproc, globalSizeX, globalSizeY int, dx, dy float64) *grid.Domain {
	if iproc <= 0 || jproc <= 0 {
		chk.Panic("geom: iproc=%d, jproc=%d must both be positive", iproc, jproc)
	}
	if rank < 0 || rank >= iproc*jproc {
		chk.Panic("geom: rank=%d out of range for iproc*jproc=%d", rank, iproc*jproc)
	}

	tileI := rank % iproc
	tileJ := rank / iproc

	imin, sizeX := tileBounds(tileI, iproc, globalSizeX)
	jmin, sizeY := tileBounds(tileJ, jproc, globalSizeY)

	// imin/jmin are 0-based offsets into the interior; the geometry map's
	// outer ring shifts every interior cell one position to the right, so
	// this tile's ghost-inclusive Imin is imin unshifted (the -1 for the
	// ghost layer and the +1 for the ring cancel exactly).
	dom := &grid.Domain{
		Dx: dx, Dy: dy,
		GlobalSizeX: globalSizeX + 2, GlobalSizeY: globalSizeY + 2,
		SizeX: sizeX, SizeY: sizeY,
		Imin: imin, Jmin: jmin,
		Imax: imin + sizeX + 2, Jmax: jmin + sizeY + 2,
	}

	dom.Neighbors = [4]int{
		grid.East:  neighborRank(tileI+1, tileJ, iproc, jproc),
		grid.North: neighborRank(tileI, tileJ+1, iproc, jproc),
		grid.West:  neighborRank(tileI-1, tileJ, iproc, jproc),
		grid.South: neighborRank(tileI, tileJ-1, iproc, jproc),
	}
	return dom
}

// tileBounds divides globalSize cells across nTiles tiles as evenly as
// possible, returning the owned-cell start index and count for tile index
// idx. The first globalSize%nTiles tiles get one extra cell.
func tileBounds(idx, nTiles, globalSize int) (start, size int) {
	base := globalSize / nTiles
	rem := globalSize % nTiles
	size = base
	if idx < rem {
		size++
	}
	if idx < rem {
		start = idx * (base + 1)
	} else {
		start = rem*(base+1) + (idx-rem)*base
	}
	return start, size
}

// neighborRank returns the rank owning tile (i,j), or grid.NoNeighbor if
// (i,j) falls outside the iproc x jproc grid (a physical boundary).
func neighborRank(i, j, iproc, jproc int) int {
	if i < 0 || i >= iproc || j < 0 || j >= jproc {
		return grid.NoNeighbor
	}
	return j*iproc + i
}
