// Copyright 2026 The Gonavier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadPGM parses the PGM-style integer geometry map of spec.md §4.2: an
// ASCII PGM header ("P2", width, height, maxval, all of which may be
// preceded by '#' comment lines) followed by width*height whitespace
// separated integer codes, row-major with the first row at the grid's
// maximum y (standard PGM raster order, top row first). The returned
// grid is reoriented to global[i][j] with j=0 at the bottom, matching
// grid.Build's (gi, gj) indexing convention.
//
// The map carries one extra row/column all around the imax x jmax interior
// declared by the parameter file: that outer ring is the true
// physical-boundary classification a rank with no neighbor on a side reads
// directly (geom.Topology sizes Domain.GlobalSizeX/Y the same way). ReadPGM
// panics (via chk.Panic, a setup error per spec.md §7.1) if the parsed
// dimensions don't match (imax+2) x (jmax+2).
func ReadPGM(path string, imax, jmax int) [][]int {
	buf := io.ReadFile(path)

	toks := tokenizePGM(string(buf))
	if len(toks) < 4 {
		chk.Panic("geom: %q is not a valid PGM file: too few header tokens", path)
	}
	if toks[0] != "P2" {
		chk.Panic("geom: %q has magic number %q, expected P2", path, toks[0])
	}
	width := atoi(path, toks[1])
	height := atoi(path, toks[2])
	_ = atoi(path, toks[3]) // maxval, unused: codes are read as raw integers

	wantW, wantH := imax+2, jmax+2
	if width != wantW || height != wantH {
		chk.Panic("geom: %q has dimensions %dx%d, expected (imax+2) x (jmax+2) = %dx%d", path, width, height, wantW, wantH)
	}

	codes := toks[4:]
	if len(codes) != width*height {
		chk.Panic("geom: %q declares %dx%d=%d codes but contains %d", path, width, height, width*height, len(codes))
	}

	// PGM rasters store row 0 as the topmost (maximum-y) row; flip to
	// global[i][j] with j increasing north, matching grid.Build.
	global := make([][]int, width)
	for i := range global {
		global[i] = make([]int, height)
	}
	for row := 0; row < height; row++ {
		gj := height - 1 - row
		for gi := 0; gi < width; gi++ {
			global[gi][gj] = atoi(path, codes[row*width+gi])
		}
	}
	return global
}

// tokenizePGM splits a PGM file's bytes on whitespace, dropping '#' line
// comments anywhere they appear (the ASCII PGM header and body share a
// single whitespace-and-comment-tolerant grammar).
func tokenizePGM(content string) []string {
	var toks []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		toks = append(toks, strings.Fields(line)...)
	}
	return toks
}

func atoi(path, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		chk.Panic("geom: %q: cannot parse integer code %q", path, s)
	}
	return v
}
