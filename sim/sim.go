// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim is the driver loop of spec.md §4.8: it owns no numerics of
// its own, only the phase sequence that orchestrates field, grid, disc,
// bc, sor, step and halo into one timestep, and the output cadence.
package sim

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gaurav44/CFD-lab/bc"
	"github.com/gaurav44/CFD-lab/field"
	"github.com/gaurav44/CFD-lab/geom"
	"github.com/gaurav44/CFD-lab/grid"
	"github.com/gaurav44/CFD-lab/halo"
	"github.com/gaurav44/CFD-lab/output"
	"github.com/gaurav44/CFD-lab/param"
	"github.com/gaurav44/CFD-lab/sor"
	"github.com/gaurav44/CFD-lab/step"
)

// Sim owns every piece of state the driver loop mutates over the run:
// the domain descriptor, the classified grid, the field matrices, the
// ordered boundary sequence, the pressure solver and time integrator, the
// rank communicator, and the output sink. Constructed once by New, mutated
// only inside Run, dropped at shutdown (spec.md §3 lifecycle).
type Sim struct {
	Params *param.Parameters
	Dom    *grid.Domain
	Grid   *grid.Grid
	Fields *field.Fields
	Bcs    []*bc.Boundary

	Integrator step.Integrator
	SOR        sor.Solver
	Comm       halo.Communicator
	Sink       output.Sink

	CaseName string
	Verbose  bool

	// OnStep, if set, is called once per completed timestep with the dt
	// used, the SOR iteration count and final residual. It lets main.go
	// feed the optional diag package without sim depending on it.
	OnStep func(step int, dt float64, iters int, resid float64)

	nFluidGlobal float64
}

// New builds a Sim for this rank from a parsed parameter record, an
// optional geometry map (nil selects the built-in lid-driven-cavity
// generator, per spec.md §4.2), a case name (used for the output
// directory/file prefix), a communicator and an output sink.
func New(p *param.Parameters, globalGeo [][]int, caseName string, comm halo.Communicator, sink output.Sink, verbose bool) *Sim {
	dx := p.XLength / float64(p.Imax)
	dy := p.YLength / float64(p.Jmax)

	dom := geom.Topology(comm.Rank(), p.Iproc, p.Jproc, p.Imax, p.Jmax, dx, dy)

	var g *grid.Grid
	var err error
	if globalGeo == nil {
		g, err = grid.BuildLidDrivenCavity(dom)
	} else {
		g, err = grid.Build(dom, globalGeo)
	}
	if err != nil {
		chk.Panic("sim: grid setup failed: %v", err)
	}

	f := field.New(dom.SizeX, dom.SizeY, p.UI, p.VI, p.PI, p.TI, p.EnergyEq)

	bcs := bc.New(g, bc.Config{
		WallVel:   p.WallVel,
		UIN:       p.UIN,
		VIN:       p.VIN,
		TIN:       p.TI,
		WallTemps: p.WallTemps,
		EnergyEq:  p.EnergyEq,
	})

	integrator := step.NewIntegrator(p, dx, dy)
	s := &Sim{
		Params:     p,
		Dom:        dom,
		Grid:       g,
		Fields:     f,
		Bcs:        bcs,
		Integrator: integrator,
		SOR:        sor.Solver{Stencil: integrator.Stencil, Omega: p.Omega},
		Comm:       comm,
		Sink:       sink,
		CaseName:   caseName,
		Verbose:    verbose,
	}
	s.nFluidGlobal = comm.ReduceSum(float64(len(g.FluidCells)))
	return s
}

// showMsg reports whether this rank should print progress/warning
// messages: verbose and rank 0, exactly fem.Main.ShowMsg's gate, so loop
// errors are logged once rather than N-way duplicated (spec.md §7).
func (s *Sim) showMsg() bool {
	return s.Verbose && s.Comm.Rank() == 0
}

// applyBoundaries dispatches the full velocity (+temperature, if enabled)
// boundary capability set, used both for the one-time initial setup and at
// the end of every timestep so the ghost state the next iteration's
// convection terms read is current (spec.md §2 data flow: "boundary apply"
// precedes each iteration's temperature update and flux compute).
func (s *Sim) applyBoundaries() {
	bc.ApplyAll(s.Bcs, s.Fields)
	if s.Params.EnergyEq {
		bc.ApplyTemperatureAll(s.Bcs, s.Fields)
	}
}

// Run drives the solver from t=0 to t_end, per spec.md §4.8, emitting a
// snapshot at t=0 and every time t crosses a multiple of OutputFreq
// (spec.md §9 Open Question: strict periodic emission, not the source's
// double-incrementing scheme).
func (s *Sim) Run() error {
	if s.showMsg() {
		io.Pf("> %s: %d fluid cells (global), t_end=%g\n", s.CaseName, int(s.nFluidGlobal), s.Params.TEnd)
	}

	s.applyBoundaries()

	timestep := 0
	t := 0.0
	nextOutput := s.Params.OutputFreq
	if err := s.Sink.Write(timestep, t, s.Grid, s.Fields); err != nil && s.showMsg() {
		io.PfYel("sim: warning: initial snapshot not written: %v\n", err)
	}

	for t <= s.Params.TEnd {
		dt := s.Integrator.ComputeDt(s.Grid, s.Fields)
		dt = s.Comm.ReduceMin(dt)
		if err := step.ValidateDt(dt); err != nil {
			chk.Panic("%v", err)
		}

		if s.Params.EnergyEq {
			s.Integrator.UpdateTemperature(s.Grid, s.Fields, dt)
			s.Comm.Exchange(s.Dom, s.Fields.T)
		}

		s.Integrator.ComputeFluxes(s.Grid, s.Fields, dt)
		s.Comm.Exchange(s.Dom, s.Fields.F)
		s.Comm.Exchange(s.Dom, s.Fields.G)

		s.Integrator.ComputeRHS(s.Grid, s.Fields, dt)

		iter := 0
		res := math.Inf(1)
		for res > s.Params.Eps {
			if iter >= s.Params.Itermax {
				if s.showMsg() {
					io.PfYel("sim: step %d: SOR did not converge after %d iterations, residual = %g\n", timestep, iter, res)
				}
				break
			}
			localSq := s.SOR.Sweep(s.Grid, s.Bcs, s.Fields)
			s.Comm.Exchange(s.Dom, s.Fields.P)
			globalSq := s.Comm.ReduceSum(localSq)
			res = math.Sqrt(globalSq / s.nFluidGlobal)
			iter++
		}

		s.Integrator.CorrectVelocity(s.Grid, s.Fields, dt)
		s.Comm.Exchange(s.Dom, s.Fields.U)
		s.Comm.Exchange(s.Dom, s.Fields.V)

		s.applyBoundaries()

		t += dt
		timestep++

		if s.OnStep != nil {
			s.OnStep(timestep, dt, iter, res)
		}

		if t >= nextOutput {
			if err := s.Sink.Write(timestep, t, s.Grid, s.Fields); err != nil && s.showMsg() {
				io.PfYel("sim: warning: snapshot at step %d not written: %v\n", timestep, err)
			}
			nextOutput += s.Params.OutputFreq
		}
	}
	return nil
}
