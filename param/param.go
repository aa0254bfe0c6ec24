// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package param reads the whitespace key-value parameter file and holds the
// read-only parameter record consumed by the solver.
package param

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Parameters holds the read-only parameter record described by the parameter
// file. Constructed once at startup, never mutated afterwards.
type Parameters struct {

	// geometry
	GeoFile           string  // path to the PGM geometry file, or "NONE" for the built-in cavity generator
	XLength, YLength  float64 // physical extents of the whole problem
	Imax, Jmax        int     // global number of cells in x, y (excluding ghost layer)
	Iproc, Jproc      int     // process-topology tile counts

	// physical parameters
	Nu    float64 // kinematic viscosity
	Alpha float64 // thermal diffusivity
	Beta  float64 // thermal expansion coefficient (Boussinesq)
	GX, GY float64 // body force components

	// time control
	DtInitial  float64 // dt (used unchanged when Tau<=0)
	Tau        float64 // CFL safety factor; Tau<=0 disables adaptive dt
	TEnd       float64 // final simulation time
	OutputFreq float64 // output interval in simulation time units (dt_value)

	// SOR
	Omega   float64 // relaxation factor
	Eps     float64 // convergence tolerance on the global residual
	Itermax int     // max SOR iterations per timestep

	// discretization
	Gamma float64 // donor-cell upwind blending factor

	// initial/boundary values
	UI, VI, PI, TI float64
	UIN, VIN       float64
	WallVel        float64 // tangential velocity prescribed by MOVING_WALL cells (lid velocity); not a parameter-file key, hardcoded the way Case.cpp's LidDrivenCavity::wall_velocity is

	// energy transport
	EnergyEq  bool
	WallTemps map[int]float64 // wall id -> prescribed temperature (ids 3,4,5,...)
}

// Default returns a Parameters populated with the zero/default values
// prescribed by the parameter-file contract: every recognized key that is
// missing from the file takes its zero value, except the handful with a
// physically-sensible non-zero default captured here.
func Default() *Parameters {
	return &Parameters{
		GeoFile:    "NONE",
		Imax:       50,
		Jmax:       50,
		Iproc:      1,
		Jproc:      1,
		Omega:      1.7,
		Gamma:      0.9,
		Itermax:    100,
		OutputFreq: 1,
		WallVel:    1.0,
		WallTemps:  make(map[int]float64),
	}
}

// ReadFile reads a whitespace "key value" parameter file where '#' starts a
// line comment, and returns the parsed record. Missing keys keep Default's
// value. Panics (via chk.Panic) on an unreadable file or a malformed line,
// matching the fatal "setup error" class of spec.md §7.
func ReadFile(path string) *Parameters {
	buf := io.ReadFile(path)
	p := Default()
	lines := strings.Split(string(buf), "\n")
	for lineno, raw := range lines {
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			chk.Panic("param: %s:%d: expected 'key value', got %q", path, lineno+1, raw)
		}
		if err := p.set(fields[0], fields[1]); err != nil {
			chk.Panic("param: %s:%d: %v", path, lineno+1, err)
		}
	}
	return p
}

// set assigns a single recognized key. Unrecognized keys are ignored so that
// parameter files written for a later revision of this format still parse.
func (p *Parameters) set(key, val string) error {
	switch key {
	case "geo_file":
		p.GeoFile = val
	case "xlength":
		return setFloat(&p.XLength, val)
	case "ylength":
		return setFloat(&p.YLength, val)
	case "imax":
		return setInt(&p.Imax, val)
	case "jmax":
		return setInt(&p.Jmax, val)
	case "iproc":
		return setInt(&p.Iproc, val)
	case "jproc":
		return setInt(&p.Jproc, val)
	case "nu":
		return setFloat(&p.Nu, val)
	case "alpha":
		return setFloat(&p.Alpha, val)
	case "beta":
		return setFloat(&p.Beta, val)
	case "GX":
		return setFloat(&p.GX, val)
	case "GY":
		return setFloat(&p.GY, val)
	case "dt":
		return setFloat(&p.DtInitial, val)
	case "tau":
		return setFloat(&p.Tau, val)
	case "t_end":
		return setFloat(&p.TEnd, val)
	case "dt_value":
		return setFloat(&p.OutputFreq, val)
	case "omg":
		return setFloat(&p.Omega, val)
	case "eps":
		return setFloat(&p.Eps, val)
	case "itermax":
		return setInt(&p.Itermax, val)
	case "gamma":
		return setFloat(&p.Gamma, val)
	case "UI":
		return setFloat(&p.UI, val)
	case "VI":
		return setFloat(&p.VI, val)
	case "PI":
		return setFloat(&p.PI, val)
	case "TI":
		return setFloat(&p.TI, val)
	case "UIN":
		return setFloat(&p.UIN, val)
	case "VIN":
		return setFloat(&p.VIN, val)
	case "energy_eq":
		p.EnergyEq = val == "on"
	case "num_walls":
		// accepted and ignored; wall_temp_k keys are read directly
		return nil
	case "wall_temp_3":
		return setWallTemp(p.WallTemps, 3, val)
	case "wall_temp_4":
		return setWallTemp(p.WallTemps, 4, val)
	case "wall_temp_5":
		return setWallTemp(p.WallTemps, 5, val)
	}
	return nil
}

func setFloat(dst *float64, val string) error {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return chk.Err("cannot parse float value %q", val)
	}
	*dst = v
	return nil
}

func setInt(dst *int, val string) error {
	v, err := strconv.Atoi(val)
	if err != nil {
		return chk.Err("cannot parse integer value %q", val)
	}
	*dst = v
	return nil
}

func setWallTemp(m map[int]float64, id int, val string) error {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return chk.Err("cannot parse wall temperature %q", val)
	}
	m[id] = v
	return nil
}
