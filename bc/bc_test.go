package bc

import (
	"testing"

	"github.com/gaurav44/CFD-lab/field"
	"github.com/gaurav44/CFD-lab/grid"
)

func domain3x3() *grid.Domain {
	return &grid.Domain{Dx: 1, Dy: 1, GlobalSizeX: 5, GlobalSizeY: 5, SizeX: 3, SizeY: 3,
		Imin: 0, Jmin: 0, Imax: 5, Jmax: 5, Neighbors: [4]int{grid.NoNeighbor, grid.NoNeighbor, grid.NoNeighbor, grid.NoNeighbor}}
}

func fullGrid(n, m, fill int) [][]int {
	g := make([][]int, n)
	for i := range g {
		g[i] = make([]int, m)
		for j := range g[i] {
			g[i][j] = fill
		}
	}
	return g
}

func TestFixedWallNoSlipBottom(t *testing.T) {
	dom := domain3x3()
	global := fullGrid(5, 5, 0)
	for i := 0; i < 5; i++ {
		global[i][0] = 3 // south fixed wall row
	}
	g, err := grid.Build(dom, global)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := field.New(3, 3, 1.0, 0, 0, 0, false)
	bcs := New(g, Config{})
	ApplyAll(bcs, f)

	// wall cell at (1,0): fluid neighbor to the north (j=1)
	if f.V[1][0] != 0 {
		t.Fatalf("normal V(1,0) = %v, want 0", f.V[1][0])
	}
	want := 2*0 - f.U[1][1]
	if f.U[1][0] != want {
		t.Fatalf("tangential U(1,0) = %v, want %v", f.U[1][0], want)
	}
}

func TestMovingWallTopDrivesTangentialVelocity(t *testing.T) {
	dom := domain3x3()
	global := fullGrid(5, 5, 0)
	for i := 0; i < 5; i++ {
		global[i][4] = 6 // north moving-wall row
	}
	g, err := grid.Build(dom, global)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := field.New(3, 3, 0, 0, 0, 0, false)
	bcs := New(g, Config{WallVel: 1.0})
	ApplyAll(bcs, f)

	// wall cell at (1,4): fluid neighbor to the south, wall face is V(1,3)
	if f.V[1][3] != 0 {
		t.Fatalf("normal V(1,3) = %v, want 0", f.V[1][3])
	}
	want := 2*1.0 - f.U[1][3]
	if f.U[1][4] != want {
		t.Fatalf("tangential U(1,4) = %v, want %v", f.U[1][4], want)
	}
}

func TestOutletPressureIsZero(t *testing.T) {
	dom := domain3x3()
	global := fullGrid(5, 5, 0)
	for j := 0; j < 5; j++ {
		global[4][j] = 2 // east outlet column
	}
	g, err := grid.Build(dom, global)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := field.New(3, 3, 0, 0, 5.0, 0, false)
	bcs := New(g, Config{})
	ApplyPressureAll(bcs, f)

	if f.P[4][2] != 0 {
		t.Fatalf("outlet P(4,2) = %v, want 0", f.P[4][2])
	}
}

func TestFixedWallPressureCopiesFluidNeighbor(t *testing.T) {
	dom := domain3x3()
	global := fullGrid(5, 5, 0)
	for i := 0; i < 5; i++ {
		global[i][0] = 3
	}
	g, err := grid.Build(dom, global)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := field.New(3, 3, 0, 0, 0, 0, false)
	f.P[1][1] = 7.0
	bcs := New(g, Config{})
	ApplyPressureAll(bcs, f)

	if f.P[1][0] != 7.0 {
		t.Fatalf("wall P(1,0) = %v, want 7.0 (copied from fluid neighbor)", f.P[1][0])
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	dom := domain3x3()
	global := fullGrid(5, 5, 0)
	for i := 0; i < 5; i++ {
		global[i][4] = 6 // north moving wall
		global[i][0] = 3 // south fixed wall
	}
	for j := 0; j < 5; j++ {
		global[0][j] = 1 // west inlet
		global[4][j] = 2 // east outlet
	}
	g, err := grid.Build(dom, global)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := field.New(3, 3, 1.0, 0.5, 0, 0, false)
	bcs := New(g, Config{WallVel: 1.0, UIN: 2.0, VIN: -1.0})

	ApplyAll(bcs, f)
	before := snapshot(f.U, f.V)

	ApplyAll(bcs, f)
	after := snapshot(f.U, f.V)

	if !equalMatrices(before, after) {
		t.Fatal("applying velocity boundaries twice changed the field: Apply is not idempotent")
	}
}

func TestApplyPressureIsIdempotent(t *testing.T) {
	dom := domain3x3()
	global := fullGrid(5, 5, 0)
	for i := 0; i < 5; i++ {
		global[i][4] = 6 // north moving wall
		global[i][0] = 3 // south fixed wall
	}
	for j := 0; j < 5; j++ {
		global[4][j] = 2 // east outlet
	}
	g, err := grid.Build(dom, global)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := field.New(3, 3, 0, 0, 0, 0, false)
	for _, c := range g.FluidCells {
		f.P[c.I][c.J] = float64(c.I + 2*c.J)
	}
	bcs := New(g, Config{})

	ApplyPressureAll(bcs, f)
	before := snapshot(f.P)

	ApplyPressureAll(bcs, f)
	after := snapshot(f.P)

	if !equalMatrices(before, after) {
		t.Fatal("applying the pressure boundary twice changed the field: ApplyPressure is not idempotent")
	}
}

func snapshot(mats ...[][]float64) [][][]float64 {
	out := make([][][]float64, len(mats))
	for k, m := range mats {
		cp := make([][]float64, len(m))
		for i := range m {
			cp[i] = append([]float64(nil), m[i]...)
		}
		out[k] = cp
	}
	return out
}

func equalMatrices(a, b [][][]float64) bool {
	for k := range a {
		for i := range a[k] {
			for j := range a[k][i] {
				if a[k][i][j] != b[k][i][j] {
					return false
				}
			}
		}
	}
	return true
}

func TestInletSetsVelocityDirectly(t *testing.T) {
	dom := domain3x3()
	global := fullGrid(5, 5, 0)
	for j := 0; j < 5; j++ {
		global[0][j] = 1 // west inlet column
	}
	g, err := grid.Build(dom, global)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := field.New(3, 3, 0, 0, 0, 0, false)
	bcs := New(g, Config{UIN: 2.0, VIN: -1.0})
	ApplyAll(bcs, f)

	if f.U[0][1] != 2.0 || f.V[0][1] != -1.0 {
		t.Fatalf("inlet (U,V)(0,1) = (%v,%v), want (2.0,-1.0)", f.U[0][1], f.V[0][1])
	}
}
