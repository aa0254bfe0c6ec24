// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field owns the dense (size_x+2) x (size_y+2) matrices the solver
// reads and writes every timestep: u, v, p, T, F, G, RS.
package field

// Fields owns the local subdomain's field matrices, including the 1-cell
// ghost layer. All matrices share the same (SizeX+2) x (SizeY+2) shape.
// Exclusively owned by the solver within a rank: no aliasing between
// concurrent readers and writers is permitted (spec.md §5).
type Fields struct {
	SizeX, SizeY int

	U, V   [][]float64 // velocity components, staggered at east/north faces
	P      [][]float64 // pressure, cell-centered
	T      [][]float64 // temperature, cell-centered (nil unless energy_eq)
	F, G   [][]float64 // intermediate velocities, co-located with U, V
	RS     [][]float64 // pressure Poisson right-hand side, cell-centered
}

// New allocates all matrices for a subdomain of sizeX x sizeY interior
// cells, initializing interior cells to ui, vi, pi, ti and leaving the ghost
// layer at zero (set on first boundary apply / halo exchange).
func New(sizeX, sizeY int, ui, vi, pi, ti float64, energyEq bool) *Fields {
	f := &Fields{SizeX: sizeX, SizeY: sizeY}
	nx, ny := sizeX+2, sizeY+2
	f.U = alloc(nx, ny)
	f.V = alloc(nx, ny)
	f.P = alloc(nx, ny)
	f.F = alloc(nx, ny)
	f.G = alloc(nx, ny)
	f.RS = alloc(nx, ny)
	fillInterior(f.U, sizeX, sizeY, ui)
	fillInterior(f.V, sizeX, sizeY, vi)
	fillInterior(f.P, sizeX, sizeY, pi)
	if energyEq {
		f.T = alloc(nx, ny)
		fillInterior(f.T, sizeX, sizeY, ti)
	}
	return f
}

func alloc(nx, ny int) [][]float64 {
	m := make([][]float64, nx)
	for i := range m {
		m[i] = make([]float64, ny)
	}
	return m
}

func fillInterior(m [][]float64, sizeX, sizeY int, val float64) {
	for i := 1; i <= sizeX; i++ {
		for j := 1; j <= sizeY; j++ {
			m[i][j] = val
		}
	}
}
