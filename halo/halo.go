// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package halo is the solver's only collaboration with the process group
// (spec.md §9 "MPI abstraction"): ghost-layer exchange with the four
// cardinal neighbors, plus sum/min all-reduce. It wraps github.com/cpmech/gosl/mpi
// behind a narrow Communicator interface so a single-process run is a
// drop-in replacement.
package halo

import (
	"github.com/cpmech/gosl/mpi"

	"github.com/gaurav44/CFD-lab/grid"
)

// Communicator is the only interface the driver loop uses to talk to other
// ranks.
type Communicator interface {
	Rank() int
	Size() int
	// Exchange synchronizes field's one-cell ghost layer with the four
	// cardinal neighbors of dom. Directions without a neighbor are left
	// untouched. Corners are not exchanged directly.
	Exchange(dom *grid.Domain, field [][]float64)
	ReduceSum(local float64) float64
	ReduceMin(local float64) float64
}

// New returns the MPI-backed Communicator when running under mpirun,
// otherwise the trivial single-process implementation.
func New() Communicator {
	if mpi.IsOn() {
		return MPIComm{}
	}
	return SerialComm{}
}

// MPIComm is the multi-rank Communicator, grounded on gosl/mpi's
// Send/Recv/AllReduceSum/AllReduceMin primitives.
type MPIComm struct{}

func (MPIComm) Rank() int { return mpi.Rank() }
func (MPIComm) Size() int { return mpi.Size() }

// Exchange packs the outermost interior row/column toward each real
// neighbor direction into a contiguous buffer and swaps it for the
// neighbor's corresponding buffer (spec.md §4.7). Message sizes here are
// small (one row or column); see DESIGN.md for why a blocking Send/Recv
// pair, ordered by rank so the two sides of a pair never both send first,
// stands in for the true non-blocking post-then-wait contract the spec
// describes.
func (MPIComm) Exchange(dom *grid.Domain, field [][]float64) {
	nx, ny := dom.SizeX+2, dom.SizeY+2
	rank := mpi.Rank()

	if dom.HasNeighbor(grid.East) {
		exchangeColumn(field, ny, nx-2, nx-1, rank, dom.Neighbors[grid.East])
	}
	if dom.HasNeighbor(grid.West) {
		exchangeColumn(field, ny, 1, 0, rank, dom.Neighbors[grid.West])
	}
	if dom.HasNeighbor(grid.North) {
		exchangeRow(field, nx, ny-2, ny-1, rank, dom.Neighbors[grid.North])
	}
	if dom.HasNeighbor(grid.South) {
		exchangeRow(field, nx, 1, 0, rank, dom.Neighbors[grid.South])
	}
}

// exchangeColumn swaps one field column with peer. The lower-numbered rank
// of the pair sends first and the higher-numbered rank receives first, so
// the two sides of a halo pair never both issue a blocking Send against
// each other.
func exchangeColumn(field [][]float64, ny, sendCol, recvCol, rank, peer int) {
	out := make([]float64, ny)
	in := make([]float64, ny)
	for j := 0; j < ny; j++ {
		out[j] = field[sendCol][j]
	}
	if rank < peer {
		mpi.Send(out, peer)
		mpi.Recv(in, peer)
	} else {
		mpi.Recv(in, peer)
		mpi.Send(out, peer)
	}
	for j := 0; j < ny; j++ {
		field[recvCol][j] = in[j]
	}
}

// exchangeRow is exchangeColumn's row-major counterpart.
func exchangeRow(field [][]float64, nx, sendRow, recvRow, rank, peer int) {
	out := make([]float64, nx)
	in := make([]float64, nx)
	for i := 0; i < nx; i++ {
		out[i] = field[i][sendRow]
	}
	if rank < peer {
		mpi.Send(out, peer)
		mpi.Recv(in, peer)
	} else {
		mpi.Recv(in, peer)
		mpi.Send(out, peer)
	}
	for i := 0; i < nx; i++ {
		field[i][recvRow] = in[i]
	}
}

func (MPIComm) ReduceSum(local float64) float64 {
	v := []float64{local}
	mpi.AllReduceSum(v, make([]float64, 1))
	return v[0]
}

func (MPIComm) ReduceMin(local float64) float64 {
	v := []float64{local}
	mpi.AllReduceMin(v, make([]float64, 1))
	return v[0]
}

// SerialComm is the single-process Communicator: there are no neighbor
// ranks, so Exchange is a no-op and every reduce is the identity.
type SerialComm struct{}

func (SerialComm) Rank() int                                   { return 0 }
func (SerialComm) Size() int                                   { return 1 }
func (SerialComm) Exchange(dom *grid.Domain, field [][]float64) {}
func (SerialComm) ReduceSum(local float64) float64             { return local }
func (SerialComm) ReduceMin(local float64) float64             { return local }
