// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package step implements the adaptive CFL timestep and the per-phase
// numerics of spec.md §4.6: temperature transport, flux (F,G) computation,
// the pressure Poisson right-hand side, and the velocity correction.
package step

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/gaurav44/CFD-lab/disc"
	"github.com/gaurav44/CFD-lab/field"
	"github.com/gaurav44/CFD-lab/grid"
	"github.com/gaurav44/CFD-lab/param"
)

// Integrator bundles the case-wide physical constants the per-step phase
// sequence needs. Built once from a Parameters record and the domain's cell
// sizes.
type Integrator struct {
	Stencil        disc.Stencil
	Nu, Alpha, Beta float64
	GX, GY         float64
	Tau, DtInitial float64
	EnergyEq       bool
}

// NewIntegrator builds an Integrator from a parsed parameter record and the
// local cell sizes.
func NewIntegrator(p *param.Parameters, dx, dy float64) Integrator {
	return Integrator{
		Stencil:   disc.Stencil{Dx: dx, Dy: dy, Gamma: p.Gamma},
		Nu:        p.Nu,
		Alpha:     p.Alpha,
		Beta:      p.Beta,
		GX:        p.GX,
		GY:        p.GY,
		Tau:       p.Tau,
		DtInitial: p.DtInitial,
		EnergyEq:  p.EnergyEq,
	}
}

// ComputeDt returns this rank's locally-bound adaptive timestep (spec.md
// §4.6): tau times the minimum of the viscous, convective and (if enabled)
// thermal-diffusive stability bounds, evaluated over this rank's fluid
// cells. The caller must reduce_min the result across ranks before using
// it. If tau <= 0 the configured dt_initial is returned unchanged.
func (s Integrator) ComputeDt(g *grid.Grid, f *field.Fields) float64 {
	if s.Tau <= 0 {
		return s.DtInitial
	}
	dx, dy := s.Stencil.Dx, s.Stencil.Dy
	inv := 1/(dx*dx) + 1/(dy*dy)

	dt := 0.5 / (s.Nu * inv)

	var maxU, maxV float64
	for _, c := range g.FluidCells {
		maxU = utl.Max(maxU, math.Abs(f.U[c.I][c.J]))
		maxV = utl.Max(maxV, math.Abs(f.V[c.I][c.J]))
	}
	if maxU > 0 {
		dt = utl.Min(dt, dx/maxU)
	}
	if maxV > 0 {
		dt = utl.Min(dt, dy/maxV)
	}
	if s.EnergyEq {
		dt = utl.Min(dt, 0.5/(s.Alpha*inv))
	}
	return s.Tau * dt
}

// ValidateDt rejects a non-finite or non-positive timestep (spec.md §7.4:
// this indicates blow-up and the run must abort with a diagnostic rather
// than continue with garbage state).
func ValidateDt(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return chk.Err("step: computed dt = %v is non-finite or non-positive, aborting", dt)
	}
	return nil
}

// UpdateTemperature advances T by one step on fluid cells, using a scratch
// copy of T so that no cell reads a value already overwritten in this sweep
// (spec.md §9 "field aliasing"). A no-op when the fields carry no
// temperature (energy_eq disabled).
func (s Integrator) UpdateTemperature(g *grid.Grid, f *field.Fields, dt float64) {
	if f.T == nil {
		return
	}
	scratch := make([][]float64, len(f.T))
	for i := range scratch {
		scratch[i] = append([]float64(nil), f.T[i]...)
	}
	for _, c := range g.FluidCells {
		i, j := c.I, c.J
		scratch[i][j] = f.T[i][j] + dt*(s.Alpha*s.Stencil.Laplacian(f.T, i, j)-
			s.Stencil.ConvectionT(f.U, f.V, f.T, i, j))
	}
	f.T = scratch
}

// ComputeFluxes fills F, G on fluid cells (spec.md §4.6), then sets F/G at
// every obstacle-fluid interface to the wall-face velocity already enforced
// there by the boundary operators, since no flux is integrated across a
// solid face.
func (s Integrator) ComputeFluxes(g *grid.Grid, f *field.Fields, dt float64) {
	for _, c := range g.FluidCells {
		i, j := c.I, c.J

		fx := f.U[i][j] + dt*(s.Nu*s.Stencil.Laplacian(f.U, i, j)-s.Stencil.ConvectionU(f.U, f.V, i, j)+s.GX)
		if s.EnergyEq {
			fx -= dt * s.Beta * 0.5 * (f.T[i][j] + f.T[i+1][j]) * s.GX
		}
		f.F[i][j] = fx

		fy := f.V[i][j] + dt*(s.Nu*s.Stencil.Laplacian(f.V, i, j)-s.Stencil.ConvectionV(f.U, f.V, i, j)+s.GY)
		if s.EnergyEq {
			fy -= dt * s.Beta * 0.5 * (f.T[i][j] + f.T[i][j+1]) * s.GY
		}
		f.G[i][j] = fy
	}
	applyFluxBoundaries(g, f)
}

// applyFluxBoundaries sets F, G on wall faces equal to the u, v already
// fixed there by the boundary operators, reusing the same normal-direction
// index mapping as bc.applyNoSlip.
func applyFluxBoundaries(g *grid.Grid, f *field.Fields) {
	lists := [][]*grid.Cell{
		g.FixedWallCells, g.MovingWallCells, g.InletCells,
		g.OutletCells, g.AdiabaticCells, g.FreeSlipCells,
	}
	for _, cells := range lists {
		for _, c := range cells {
			i, j := c.I, c.J
			for _, side := range c.Borders() {
				switch side {
				case grid.Top:
					f.G[i][j] = f.V[i][j]
				case grid.Bottom:
					f.G[i][j-1] = f.V[i][j-1]
				case grid.Left:
					f.F[i-1][j] = f.U[i-1][j]
				case grid.Right:
					f.F[i][j] = f.U[i][j]
				}
			}
		}
	}
}

// ComputeRHS fills the pressure Poisson right-hand side RS on fluid cells.
func (s Integrator) ComputeRHS(g *grid.Grid, f *field.Fields, dt float64) {
	dx, dy := s.Stencil.Dx, s.Stencil.Dy
	for _, c := range g.FluidCells {
		i, j := c.I, c.J
		f.RS[i][j] = ((f.F[i][j]-f.F[i-1][j])/dx + (f.G[i][j]-f.G[i][j-1])/dy) / dt
	}
}

// CorrectVelocity projects F, G onto the divergence-free u, v using the
// converged pressure field (spec.md §4.6).
func (s Integrator) CorrectVelocity(g *grid.Grid, f *field.Fields, dt float64) {
	dx, dy := s.Stencil.Dx, s.Stencil.Dy
	for _, c := range g.FluidCells {
		i, j := c.I, c.J
		f.U[i][j] = f.F[i][j] - dt*(f.P[i+1][j]-f.P[i][j])/dx
		f.V[i][j] = f.G[i][j] - dt*(f.P[i][j+1]-f.P[i][j])/dy
	}
}
