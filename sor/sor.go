// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sor implements the lexicographic Gauss-Seidel-SOR sweep over the
// pressure Poisson equation of spec.md §4.5.
package sor

import (
	"github.com/gaurav44/CFD-lab/bc"
	"github.com/gaurav44/CFD-lab/disc"
	"github.com/gaurav44/CFD-lab/field"
	"github.com/gaurav44/CFD-lab/grid"
)

// Solver owns the stencil and relaxation factor an SOR sweep needs.
type Solver struct {
	Stencil disc.Stencil
	Omega   float64
}

// Sweep performs one in-place lexicographic SOR sweep over g.FluidCells,
// applying the pressure boundary condition before the sweep (spec.md §4.5:
// "the pressure boundary condition is re-applied at the start of every
// iteration, not just once before the loop") and returns this rank's local
// sum of squared residuals, Σ(Laplacian(p) - RS)² over fluid cells, for the
// caller to reduce across ranks.
func (s Solver) Sweep(g *grid.Grid, bcs []*bc.Boundary, f *field.Fields) float64 {
	bc.ApplyPressureAll(bcs, f)

	dxInv2 := 1.0 / (s.Stencil.Dx * s.Stencil.Dx)
	dyInv2 := 1.0 / (s.Stencil.Dy * s.Stencil.Dy)
	denom := 2.0*(dxInv2+dyInv2)

	for _, c := range g.FluidCells {
		i, j := c.I, c.J
		f.P[i][j] = (1-s.Omega)*f.P[i][j] +
			s.Omega/denom*(s.Stencil.SorHelper(f.P, i, j)-f.RS[i][j])
	}

	var sumSq float64
	for _, c := range g.FluidCells {
		i, j := c.I, c.J
		res := s.Stencil.Laplacian(f.P, i, j) - f.RS[i][j]
		sumSq += res * res
	}
	return sumSq
}
