// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package disc implements the pure finite-difference stencils of
// spec.md §4.3: donor-cell convection, central-difference diffusion, the
// pressure Laplacian and its SOR right-hand-side helper. None of these
// functions hold state; they only read the field matrices passed to them.
package disc

import "math"

// Stencil bundles the cell sizes and donor-cell upwind blending factor
// every discretization function needs.
type Stencil struct {
	Dx, Dy, Gamma float64
}

// ConvectionU evaluates ∂(u²)/∂x + ∂(uv)/∂y at (i,j) with donor-cell
// upwinding blended with central differences by Gamma.
func (s Stencil) ConvectionU(u, v [][]float64, i, j int) float64 {
	dx, dy, gamma := s.Dx, s.Dy, s.Gamma

	duudx := 1.0/dx*(sq(avg(u[i][j], u[i+1][j]))-sq(avg(u[i-1][j], u[i][j]))) +
		gamma/dx*(math.Abs(avg(u[i][j], u[i+1][j]))*diffHalf(u[i][j], u[i+1][j])-
			math.Abs(avg(u[i-1][j], u[i][j]))*diffHalf(u[i-1][j], u[i][j]))

	duvdy := 1.0/dy*(avg(v[i][j], v[i+1][j])*avg(u[i][j], u[i][j+1])-
		avg(v[i][j-1], v[i+1][j-1])*avg(u[i][j-1], u[i][j])) +
		gamma/dy*(math.Abs(avg(v[i][j], v[i+1][j]))*diffHalf(u[i][j], u[i][j+1])-
			math.Abs(avg(v[i][j-1], v[i+1][j-1]))*diffHalf(u[i][j-1], u[i][j]))

	return duudx + duvdy
}

// ConvectionV evaluates ∂(uv)/∂x + ∂(v²)/∂y at (i,j), the y-momentum
// analogue of ConvectionU.
func (s Stencil) ConvectionV(u, v [][]float64, i, j int) float64 {
	dx, dy, gamma := s.Dx, s.Dy, s.Gamma

	duvdx := 1.0/dx*(avg(u[i][j], u[i][j+1])*avg(v[i][j], v[i+1][j])-
		avg(u[i-1][j], u[i-1][j+1])*avg(v[i-1][j], v[i][j])) +
		gamma/dx*(math.Abs(avg(u[i][j], u[i][j+1]))*diffHalf(v[i][j], v[i+1][j])-
			math.Abs(avg(u[i-1][j], u[i-1][j+1]))*diffHalf(v[i-1][j], v[i][j]))

	dvvdy := 1.0/dy*(sq(avg(v[i][j], v[i][j+1]))-sq(avg(v[i][j-1], v[i][j]))) +
		gamma/dy*(math.Abs(avg(v[i][j], v[i][j+1]))*diffHalf(v[i][j], v[i][j+1])-
			math.Abs(avg(v[i][j-1], v[i][j]))*diffHalf(v[i][j-1], v[i][j]))

	return duvdx + dvvdy
}

// ConvectionT evaluates ∂(uT)/∂x + ∂(vT)/∂y at cell-centered (i,j).
func (s Stencil) ConvectionT(u, v, T [][]float64, i, j int) float64 {
	dx, dy, gamma := s.Dx, s.Dy, s.Gamma

	duTdx := 1.0/dx*(u[i][j]*avg(T[i][j], T[i+1][j])-u[i-1][j]*avg(T[i-1][j], T[i][j])) +
		gamma/dx*(math.Abs(u[i][j])*diffHalf(T[i][j], T[i+1][j])-
			math.Abs(u[i-1][j])*diffHalf(T[i-1][j], T[i][j]))

	dvTdy := 1.0/dy*(v[i][j]*avg(T[i][j], T[i][j+1])-v[i][j-1]*avg(T[i][j-1], T[i][j])) +
		gamma/dy*(math.Abs(v[i][j])*diffHalf(T[i][j], T[i][j+1])-
			math.Abs(v[i][j-1])*diffHalf(T[i][j-1], T[i][j]))

	return duTdx + dvTdy
}

// Laplacian returns the central-difference discrete Laplacian of phi at
// (i,j).
func (s Stencil) Laplacian(phi [][]float64, i, j int) float64 {
	return (phi[i+1][j]-2*phi[i][j]+phi[i-1][j])/(s.Dx*s.Dx) +
		(phi[i][j+1]-2*phi[i][j]+phi[i][j-1])/(s.Dy*s.Dy)
}

// SorHelper returns the neighbor-sum term of the SOR update,
// (p(i+1,j)+p(i-1,j))/dx² + (p(i,j+1)+p(i,j-1))/dy².
func (s Stencil) SorHelper(p [][]float64, i, j int) float64 {
	return (p[i+1][j]+p[i-1][j])/(s.Dx*s.Dx) + (p[i][j+1]+p[i][j-1])/(s.Dy*s.Dy)
}

func avg(a, b float64) float64    { return 0.5 * (a + b) }
func sq(a float64) float64        { return a * a }
func diffHalf(a, b float64) float64 { return 0.5 * (a - b) }
