// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bc implements the boundary operator variants of spec.md §4.4 as a
// tagged-variant family (per spec.md §9 "avoid inheritance") dispatched by
// the driver over three capabilities: Apply (velocity), ApplyPressure,
// ApplyTemperature.
package bc

import (
	"github.com/gaurav44/CFD-lab/field"
	"github.com/gaurav44/CFD-lab/grid"
)

// Kind tags which boundary contract a Boundary implements.
type Kind int

const (
	KindMovingWall Kind = iota
	KindInlet
	KindOutlet
	KindFixedWall
	KindAdiabatic
	KindFreeSlip
)

// Boundary is one variant of the capability set {apply, apply_pressure,
// apply_temperature}, holding only the cells it owns and the parameters its
// contract needs.
type Boundary struct {
	Kind      Kind
	Cells     []*grid.Cell
	WallVel   float64            // tangential velocity prescribed by a moving wall
	UIN, VIN  float64            // inlet face velocities
	TIN       float64            // inlet inflow temperature
	WallTemps map[int]float64    // wall id -> prescribed temperature, for FixedWall lookups
	EnergyEq  bool
}

// Config carries case-wide boundary parameters shared across variants.
type Config struct {
	WallVel   float64
	UIN, VIN  float64
	TIN       float64
	WallTemps map[int]float64
	EnergyEq  bool
}

// New builds the ordered boundary-variant sequence for a grid: moving
// walls, inlets, outlets, fixed walls, adiabatic, free slip (spec.md §4.4's
// fixed apply order, free slip appended last since the source leaves its
// ordering unspecified relative to adiabatic).
func New(g *grid.Grid, cfg Config) []*Boundary {
	var bcs []*Boundary
	add := func(k Kind, cells []*grid.Cell) {
		if len(cells) == 0 {
			return
		}
		bcs = append(bcs, &Boundary{
			Kind: k, Cells: cells,
			WallVel: cfg.WallVel, UIN: cfg.UIN, VIN: cfg.VIN, TIN: cfg.TIN,
			WallTemps: cfg.WallTemps, EnergyEq: cfg.EnergyEq,
		})
	}
	add(KindMovingWall, g.MovingWallCells)
	add(KindInlet, g.InletCells)
	add(KindOutlet, g.OutletCells)
	add(KindFixedWall, g.FixedWallCells)
	add(KindAdiabatic, g.AdiabaticCells)
	add(KindFreeSlip, g.FreeSlipCells)
	return bcs
}

// ApplyAll dispatches Apply (velocity) over every variant in order.
func ApplyAll(bcs []*Boundary, f *field.Fields) {
	for _, b := range bcs {
		b.Apply(f)
	}
}

// ApplyPressureAll dispatches ApplyPressure over every variant in order.
func ApplyPressureAll(bcs []*Boundary, f *field.Fields) {
	for _, b := range bcs {
		b.ApplyPressure(f)
	}
}

// ApplyTemperatureAll dispatches ApplyTemperature over every variant in
// order, a no-op unless EnergyEq is set.
func ApplyTemperatureAll(bcs []*Boundary, f *field.Fields) {
	for _, b := range bcs {
		if b.EnergyEq {
			b.ApplyTemperature(f)
		}
	}
}

// Apply implements the velocity contract for b.Kind.
func (b *Boundary) Apply(f *field.Fields) {
	switch b.Kind {
	case KindMovingWall:
		for _, c := range b.Cells {
			applyNoSlip(f, c, b.WallVel)
		}
	case KindFixedWall, KindAdiabatic:
		for _, c := range b.Cells {
			applyNoSlip(f, c, 0)
		}
	case KindFreeSlip:
		for _, c := range b.Cells {
			applyFreeSlip(f, c)
		}
	case KindInlet:
		for _, c := range b.Cells {
			f.U[c.I][c.J] = b.UIN
			f.V[c.I][c.J] = b.VIN
		}
	case KindOutlet:
		for _, c := range b.Cells {
			for _, s := range c.Borders() {
				n := c.Neighbor(s)
				f.U[c.I][c.J] = f.U[n.I][n.J]
				f.V[c.I][c.J] = f.V[n.I][n.J]
			}
		}
	}
}

// ApplyPressure implements the Neumann/reference-value pressure contract.
func (b *Boundary) ApplyPressure(f *field.Fields) {
	if b.Kind == KindOutlet {
		for _, c := range b.Cells {
			f.P[c.I][c.J] = 0
		}
		return
	}
	for _, c := range b.Cells {
		var sum float64
		borders := c.Borders()
		for _, s := range borders {
			n := c.Neighbor(s)
			sum += f.P[n.I][n.J]
		}
		if len(borders) > 0 {
			f.P[c.I][c.J] = sum / float64(len(borders))
		}
	}
}

// ApplyTemperature implements the Dirichlet/Neumann temperature contract.
// Only called by ApplyTemperatureAll when EnergyEq is set.
func (b *Boundary) ApplyTemperature(f *field.Fields) {
	switch b.Kind {
	case KindFixedWall:
		for _, c := range b.Cells {
			twall, ok := b.WallTemps[c.WallID]
			if !ok {
				continue // wall carries no prescribed temperature
			}
			for _, s := range c.Borders() {
				n := c.Neighbor(s)
				f.T[c.I][c.J] = 2*twall - f.T[n.I][n.J]
			}
		}
	case KindAdiabatic:
		for _, c := range b.Cells {
			for _, s := range c.Borders() {
				n := c.Neighbor(s)
				f.T[c.I][c.J] = f.T[n.I][n.J]
			}
		}
	case KindInlet:
		for _, c := range b.Cells {
			f.T[c.I][c.J] = b.TIN
		}
	case KindOutlet:
		for _, c := range b.Cells {
			for _, s := range c.Borders() {
				n := c.Neighbor(s)
				f.T[c.I][c.J] = f.T[n.I][n.J]
			}
		}
	}
}

// applyNoSlip writes the no-slip contract (wallVel==0) or moving-wall
// contract (wallVel!=0) for one cell: normal velocity zero on the wall
// face, tangential velocity reflected so its border-midline average equals
// wallVel. Borders are processed in their fixed Top,Bottom,Left,Right
// order; for a corner cell (two borders) the second border's writes take
// precedence on any matrix entry the two borders share.
func applyNoSlip(f *field.Fields, c *grid.Cell, wallVel float64) {
	i, j := c.I, c.J
	for _, s := range c.Borders() {
		switch s {
		case grid.Top:
			f.V[i][j] = 0
			f.U[i][j] = 2*wallVel - f.U[i][j+1]
		case grid.Bottom:
			f.V[i][j-1] = 0
			f.U[i][j] = 2*wallVel - f.U[i][j-1]
		case grid.Left:
			f.U[i-1][j] = 0
			f.V[i][j] = 2*wallVel - f.V[i-1][j]
		case grid.Right:
			f.U[i][j] = 0
			f.V[i][j] = 2*wallVel - f.V[i+1][j]
		}
	}
}

// applyFreeSlip writes zero normal velocity and a tangential velocity that
// copies the fluid neighbor's (no reflection).
func applyFreeSlip(f *field.Fields, c *grid.Cell) {
	i, j := c.I, c.J
	for _, s := range c.Borders() {
		switch s {
		case grid.Top:
			f.V[i][j] = 0
			f.U[i][j] = f.U[i][j+1]
		case grid.Bottom:
			f.V[i][j-1] = 0
			f.U[i][j] = f.U[i][j-1]
		case grid.Left:
			f.U[i-1][j] = 0
			f.V[i][j] = f.V[i-1][j]
		case grid.Right:
			f.U[i][j] = 0
			f.V[i][j] = f.V[i+1][j]
		}
	}
}
