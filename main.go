// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/gaurav44/CFD-lab/diag"
	"github.com/gaurav44/CFD-lab/geom"
	"github.com/gaurav44/CFD-lab/halo"
	"github.com/gaurav44/CFD-lab/output"
	"github.com/gaurav44/CFD-lab/param"
	"github.com/gaurav44/CFD-lab/sim"
)

func main() {

	// catch errors
	defer func() {
		failed := false
		if err := recover(); err != nil {
			failed = true
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v\n", err)
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
		if failed {
			os.Exit(1)
		}
	}()
	mpi.Start(false)

	// read input parameters: launched under mpirun/mpiexec, so positional
	// argv is the natural CLI surface, exactly gofem's rationale for
	// io.ArgTo* over a flag/cobra parser.
	paramfile, fnkey := io.ArgToFilename(0, "cavity", ".dat", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGonavier -- 2D staggered-grid incompressible Navier-Stokes solver\n")
		io.Pf("Chorin projection, SOR pressure solve, optional Boussinesq energy transport\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"parameter file", "paramfile", paramfile,
			"show messages", "verbose", verbose,
			"plot residual/dt history", "doplot", doplot,
		))
	}

	p := param.ReadFile(paramfile)

	var globalGeo [][]int
	if p.GeoFile != "NONE" && p.GeoFile != "" {
		globalGeo = geom.ReadPGM(p.GeoFile, p.Imax, p.Jmax)
	}

	comm := halo.New()
	sink := output.NewVTKWriter(fnkey, comm.Rank())

	s := sim.New(p, globalGeo, fnkey, comm, sink, verbose)

	var hist diag.History
	if doplot {
		s.OnStep = hist.Record
	}

	err := s.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	if doplot && comm.Rank() == 0 {
		if err := diag.PlotResidualHistory(&hist, fnkey+"_Output", fnkey+"_history.png"); err != nil {
			io.PfYel("main: warning: diagnostic plot not written: %v\n", err)
		}
	}

	if comm.Rank() == 0 && verbose {
		io.PfGreen("> Success\n")
	}
}
