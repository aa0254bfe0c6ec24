// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag is an optional, ambient diagnostic: it plots the per-timestep
// final SOR residual and dt history, the way gofem's `out`
// package analogously plots boundary-condition functions and beam
// diagrams via github.com/cpmech/gosl/plt. Never imported by the numerical
// core packages; main.go only calls it when its third positional argument
// (doplot) is true.
package diag

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// History accumulates the per-timestep dt and the final SOR residual and
// iteration count, for later plotting. The driver (package sim) does not
// depend on this type; main.go installs Record as Sim.OnStep when doplot is set.
type History struct {
	Step   []float64
	Dt     []float64
	Iters  []float64
	Resid  []float64
}

// Record appends one timestep's summary.
func (h *History) Record(step int, dt float64, iters int, resid float64) {
	h.Step = append(h.Step, float64(step))
	h.Dt = append(h.Dt, dt)
	h.Iters = append(h.Iters, float64(iters))
	h.Resid = append(h.Resid, resid)
}

// PlotResidualHistory writes a two-panel PNG (dt and final SOR residual,
// both versus timestep) to dirout/fname, in the same Subplot/Gll/Save
// idiom gofem's out.PlotAll uses.
func PlotResidualHistory(h *History, dirout, fname string) error {
	if len(h.Step) == 0 {
		return nil
	}
	plt.Subplot(2, 1, 1)
	plt.Plot(h.Step, h.Dt, nil)
	plt.Gll("timestep", "dt", "")
	plt.Subplot(2, 1, 2)
	plt.Plot(h.Step, h.Resid, nil)
	plt.Gll("timestep", "SOR residual", "")
	plt.SaveD(dirout, fname)
	plt.Clf()
	io.Pf("> diagnostic plot written to %s/%s\n", dirout, fname)
	return nil
}
