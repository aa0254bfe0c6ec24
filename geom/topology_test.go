// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gaurav44/CFD-lab/grid"
)

func TestTopologySingleRank(t *testing.T) {
	dom := Topology(0, 1, 1, 50, 50, 0.02, 0.02)
	chk.IntAssert(dom.SizeX, 50)
	chk.IntAssert(dom.SizeY, 50)
	chk.IntAssert(dom.Imax-dom.Imin, dom.SizeX+2)
	chk.IntAssert(dom.Jmax-dom.Jmin, dom.SizeY+2)
	chk.IntAssert(dom.GlobalSizeX, dom.SizeX+2)
	chk.IntAssert(dom.GlobalSizeY, dom.SizeY+2)
	chk.IntAssert(dom.Imin, 0)
	chk.IntAssert(dom.Jmin, 0)
	for d := grid.East; d <= grid.South; d++ {
		if dom.HasNeighbor(d) {
			t.Fatalf("single-rank topology must have no neighbors, got one in direction %d", d)
		}
	}
}

func TestTopologyTilesPartitionExactly(t *testing.T) {
	const iproc, jproc = 2, 3
	const gx, gy = 17, 11 // deliberately not evenly divisible
	sumX := make([]int, jproc)
	for rank := 0; rank < iproc*jproc; rank++ {
		dom := Topology(rank, iproc, jproc, gx, gy, 1, 1)
		tileJ := rank / iproc
		if rank%iproc == 0 {
			sumX[tileJ] = 0
		}
		sumX[tileJ] += dom.SizeX
	}
	for j, sum := range sumX {
		if sum != gx {
			t.Fatalf("row %d: tiles sum to SizeX=%d, want %d", j, sum, gx)
		}
	}
}

func TestTopologyNeighborsAtEdges(t *testing.T) {
	const iproc, jproc = 2, 2
	dom := Topology(0, iproc, jproc, 10, 10, 1, 1) // tile (0,0): bottom-left
	if dom.HasNeighbor(grid.West) || dom.HasNeighbor(grid.South) {
		t.Fatalf("corner tile (0,0) must have no West/South neighbor")
	}
	if !dom.HasNeighbor(grid.East) || !dom.HasNeighbor(grid.North) {
		t.Fatalf("corner tile (0,0) must have East/North neighbors")
	}
	if dom.Neighbors[grid.East] != 1 {
		t.Fatalf("East neighbor of rank 0 = %d, want 1", dom.Neighbors[grid.East])
	}
	if dom.Neighbors[grid.North] != 2 {
		t.Fatalf("North neighbor of rank 0 = %d, want 2", dom.Neighbors[grid.North])
	}
}
