package disc

import (
	"math"
	"testing"
)

func uniform(n, m int, val float64) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, m)
		for j := range a[i] {
			a[i][j] = val
		}
	}
	return a
}

func TestLaplacianZeroOnUniformField(t *testing.T) {
	s := Stencil{Dx: 0.1, Dy: 0.1, Gamma: 0.5}
	p := uniform(5, 5, 3.0)
	if got := s.Laplacian(p, 2, 2); math.Abs(got) > 1e-12 {
		t.Fatalf("Laplacian of a uniform field should be 0, got %v", got)
	}
}

func TestConvectionUZeroOnStillUniformFlow(t *testing.T) {
	s := Stencil{Dx: 0.1, Dy: 0.1, Gamma: 0.9}
	u := uniform(5, 5, 2.0)
	v := uniform(5, 5, 0.0)
	if got := s.ConvectionU(u, v, 2, 2); math.Abs(got) > 1e-12 {
		t.Fatalf("ConvectionU of a uniform flow should vanish, got %v", got)
	}
}

func TestSorHelperMatchesLaplacianNeighborSum(t *testing.T) {
	s := Stencil{Dx: 0.2, Dy: 0.1, Gamma: 0.5}
	p := [][]float64{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
		{0, 0, 0, 0},
	}
	got := s.SorHelper(p, 1, 1)
	want := (p[2][1]+p[0][1])/(s.Dx*s.Dx) + (p[1][2]+p[1][0])/(s.Dy*s.Dy)
	if got != want {
		t.Fatalf("SorHelper = %v, want %v", got, want)
	}
}

func TestConvectionTVanishesOnUniformTemperature(t *testing.T) {
	s := Stencil{Dx: 0.1, Dy: 0.1, Gamma: 0.5}
	u := uniform(5, 5, 1.0)
	v := uniform(5, 5, 1.0)
	T := uniform(5, 5, 42.0)
	if got := s.ConvectionT(u, v, T, 2, 2); math.Abs(got) > 1e-12 {
		t.Fatalf("ConvectionT of a uniform temperature field should vanish, got %v", got)
	}
}
