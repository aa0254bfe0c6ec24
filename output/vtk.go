// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package output writes per-rank, per-timestep structured-grid field dumps
// (spec.md §6), the concrete realization of the "output writing" external
// collaborator. The driver (package sim) talks to it only through the
// narrow Sink interface, so tests can substitute a no-op sink (spec.md §9
// "MPI abstraction" principle applied to the output collaborator too).
package output

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gaurav44/CFD-lab/field"
	"github.com/gaurav44/CFD-lab/grid"
)

// Sink is the narrow interface the driver writes snapshots through.
type Sink interface {
	Write(step int, t float64, g *grid.Grid, f *field.Fields) error
}

// blankValue marks an obstacle cell in the written VTK file (spec.md §6
// "Obstacle cells are blanked in the output").
const blankValue = 0.0

// VTKWriter writes legacy-format ASCII VTK STRUCTURED_POINTS files, one per
// emitted timestep, under <dirOut>/<case>_<rank>_<step>.vtk.
type VTKWriter struct {
	Case   string
	DirOut string
	Rank   int
}

// NewVTKWriter creates the output directory (spec.md §7.2: a failure to
// create it is a non-fatal warning, not a setup error, since the driver can
// still run without emitting snapshots) and returns a writer for it.
func NewVTKWriter(caseName string, rank int) *VTKWriter {
	dirOut := caseName + "_Output"
	if err := os.MkdirAll(dirOut, 0755); err != nil {
		io.PfYel("output: warning: cannot create output directory %q: %v\n", dirOut, err)
	}
	return &VTKWriter{Case: caseName, DirOut: dirOut, Rank: rank}
}

// Write emits one snapshot: cell-centered pressure (and temperature, if
// present) plus point-centered velocity averaged from the staggered u, v
// faces (spec.md §6), blanking obstacle cells. A write failure is logged
// and does not abort the run (spec.md §7.2).
func (w *VTKWriter) Write(step int, t float64, g *grid.Grid, f *field.Fields) error {
	nx, ny := g.Dom.SizeX, g.Dom.SizeY

	l := io.Sf("# vtk DataFile Version 3.0\n")
	l += io.Sf("%s rank=%d step=%d t=%g\n", w.Case, w.Rank, step, t)
	l += io.Sf("ASCII\n")
	l += io.Sf("DATASET STRUCTURED_POINTS\n")
	l += io.Sf("DIMENSIONS %d %d 1\n", nx, ny)
	l += io.Sf("ORIGIN %g %g 0\n", float64(g.Dom.Imin)*g.Dom.Dx, float64(g.Dom.Jmin)*g.Dom.Dy)
	l += io.Sf("SPACING %g %g 1\n", g.Dom.Dx, g.Dom.Dy)
	l += io.Sf("POINT_DATA %d\n", nx*ny)
	l += io.Sf("VECTORS velocity double\n")
	for j := 1; j <= ny; j++ {
		for i := 1; i <= nx; i++ {
			c := g.Cells[i][j]
			if c.Type != grid.Fluid {
				l += io.Sf("%g %g 0\n", blankValue, blankValue)
				continue
			}
			u := 0.5 * (f.U[i-1][j] + f.U[i][j])
			v := 0.5 * (f.V[i][j-1] + f.V[i][j])
			l += io.Sf("%g %g 0\n", u, v)
		}
	}
	l += io.Sf("CELL_DATA %d\n", (nx-1)*(ny-1))
	l += io.Sf("SCALARS pressure double 1\n")
	l += io.Sf("LOOKUP_TABLE default\n")
	l += cellScalarLines(g, f.P, nx, ny)
	if f.T != nil {
		l += io.Sf("SCALARS temperature double 1\n")
		l += io.Sf("LOOKUP_TABLE default\n")
		l += cellScalarLines(g, f.T, nx, ny)
	}

	fname := io.Sf("%s_%d_%d.vtk", w.Case, w.Rank, step)
	return writeSnapshot(w.DirOut, fname, l)
}

// writeSnapshot calls io.WriteStringToFileD and turns a write failure into the
// non-fatal warning spec.md §7.2 prescribes rather than aborting the run;
// io.WriteStringToFileD panics (gosl's usual I/O-error idiom) rather than
// returning an error, so the recover here is this package's only one.
func writeSnapshot(dirOut, fname, content string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			io.PfYel("output: warning: cannot write %q: %v\n", fname, r)
			err = chk.Err("output: write %q failed: %v", fname, r)
		}
	}()
	io.WriteStringToFileD(dirOut, fname, content)
	return nil
}

func cellScalarLines(g *grid.Grid, m [][]float64, nx, ny int) string {
	var l string
	for j := 1; j < ny; j++ {
		for i := 1; i < nx; i++ {
			if g.Cells[i][j].Type != grid.Fluid {
				l += io.Sf("%g\n", blankValue)
				continue
			}
			l += io.Sf("%g\n", m[i][j])
		}
	}
	return l
}

// NullSink discards every snapshot; used by tests that drive sim.Run
// without touching the filesystem.
type NullSink struct{}

func (NullSink) Write(step int, t float64, g *grid.Grid, f *field.Fields) error { return nil }
