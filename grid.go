package jdep

import (
	"math"
	"strings"
)

// Grid is an immutable map of scalar values over the (CML, satellite
// phase) plane, sampled on a regular square grid and periodic in both
// axes. Rows run along satellite phase, columns along CML.
type Grid struct {
	vals []float64 // row-major, len n*n
	n    int       // samples per axis
}

func newGrid(vals []float64, n int) *Grid {
	return &Grid{vals: vals, n: n}
}

// N returns the number of samples along each axis.
func (g *Grid) N() int { return g.n }

// Step returns the sample spacing of both axes in degrees.
func (g *Grid) Step() float64 { return 360 / float64(g.n) }

// At returns the sample at phase row i and CML column j. Indices wrap, so
// At(i, j) == At(i+N, j+N) for all i, j.
func (g *Grid) At(i, j int) float64 {
	return g.vals[wrapIdx(i, g.n)*g.n+wrapIdx(j, g.n)]
}

// Max returns the largest sample in the grid.
func (g *Grid) Max() float64 {
	max := g.vals[0]
	for _, v := range g.vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Interp returns the bilinear interpolation of the grid at the given
// coordinate. Both axes are treated as circular: a coordinate between the
// last and first sample blends those two samples rather than clamping, so
// lookups at 0 and 360 degrees are identical.
func (g *Grid) Interp(c PhaseCoord) float64 {
	step := g.Step()
	x := norm360(c.CML) / step
	y := norm360(c.Phase) / step
	j0, i0 := int(x), int(y)
	fx, fy := x-float64(j0), y-float64(i0)
	v0 := lerp(g.At(i0, j0), g.At(i0, j0+1), fx)
	v1 := lerp(g.At(i0+1, j0), g.At(i0+1, j0+1), fx)
	return lerp(v0, v1, fy)
}

// lerp in the a+f*(b-a) form so a uniform grid interpolates to exactly
// its sample value.
func lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

// RegionBits encodes which named emission regions cover a grid cell, one
// bit per region label.
type RegionBits uint8

const (
	RegionA RegionBits = 1 << iota
	RegionAp
	RegionApp
	RegionB
	RegionBp
	RegionC
	RegionD
)

// regionNames maps bits to labels in the fixed decode order.
var regionNames = []struct {
	bit  RegionBits
	name string
}{
	{RegionA, "A"},
	{RegionAp, "A'"},
	{RegionApp, `A"`},
	{RegionB, "B"},
	{RegionBp, "B'"},
	{RegionC, "C"},
	{RegionD, "D"},
}

// Labels decodes the set bits into region labels prefixed with the
// emission class, e.g. "Io A" or "non-Io B'". The order is fixed.
func (b RegionBits) Labels(prefix string) []string {
	var out []string
	for _, r := range regionNames {
		if b&r.bit != 0 {
			out = append(out, prefix+" "+r.name)
		}
	}
	return out
}

// String returns the bare letters of the set bits joined with "+", e.g.
// "A" or "B+C". The zero value prints as the empty string.
func (b RegionBits) String() string {
	var parts []string
	for _, r := range regionNames {
		if b&r.bit != 0 {
			parts = append(parts, r.name)
		}
	}
	return strings.Join(parts, "+")
}

// RegionMask is an immutable grid of RegionBits with the same axes and
// periodicity as the corresponding probability Grid.
type RegionMask struct {
	bits []RegionBits // row-major, len n*n
	n    int
}

func newRegionMask(bits []RegionBits, n int) *RegionMask {
	return &RegionMask{bits: bits, n: n}
}

// N returns the number of samples along each axis.
func (m *RegionMask) N() int { return m.n }

// At returns the bits at phase row i and CML column j, wrapping indices.
func (m *RegionMask) At(i, j int) RegionBits {
	return m.bits[wrapIdx(i, m.n)*m.n+wrapIdx(j, m.n)]
}

// Nearest returns the bits of the cell closest to the coordinate. Region
// labels are discrete, so the mask is sampled rather than interpolated.
func (m *RegionMask) Nearest(c PhaseCoord) RegionBits {
	step := 360 / float64(m.n)
	j := int(math.Round(norm360(c.CML) / step))
	i := int(math.Round(norm360(c.Phase) / step))
	return m.At(i, j)
}

func wrapIdx(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
