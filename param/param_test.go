package param

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestReadFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cavity.dat")
	content := "# lid driven cavity\nimax 50\njmax 50\nnu 0.01\nomg 1.7\nenergy_eq off\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	p := ReadFile(path)
	chk.IntAssert(p.Imax, 50)
	chk.IntAssert(p.Jmax, 50)
	chk.Float64(t, "nu", 1e-15, p.Nu, 0.01)
	chk.Float64(t, "omega", 1e-15, p.Omega, 1.7)
	if p.EnergyEq {
		t.Fatal("expected energy_eq off")
	}
	// untouched keys keep Default()'s values
	chk.IntAssert(p.Itermax, 100)
}

func TestReadFileWallTemps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "convection.dat")
	content := "energy_eq on\nnum_walls 2\nwall_temp_3 1.0\nwall_temp_4 0.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	p := ReadFile(path)
	if !p.EnergyEq {
		t.Fatal("expected energy_eq on")
	}
	chk.Float64(t, "wall_temp_3", 1e-15, p.WallTemps[3], 1.0)
	chk.Float64(t, "wall_temp_4", 1e-15, p.WallTemps[4], 0.0)
}

func TestReadFileCommentsAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.dat")
	content := "\n# full comment line\nnu 0.02 # inline comment\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	p := ReadFile(path)
	chk.Float64(t, "nu", 1e-15, p.Nu, 0.02)
}

func TestReadFileMalformedLinePanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "malformed.dat")
	content := "nu 0.02 extra-token\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on malformed line")
		}
	}()
	ReadFile(path)
}
