// Package damplot renders the jdep probability maps and observation
// tracks. It consumes the read-only grid accessors of the core package;
// the core does not depend on this package.
package damplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lwa-project/jdep"
)

// trackColor marks Jupiter's location on top of the heat map.
var trackColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// probGrid adapts a jdep.Grid to the plotter.GridXYZ interface. Columns
// are CML, rows are satellite phase, both in degrees.
type probGrid struct{ g *jdep.Grid }

func (p probGrid) Dims() (int, int)   { return p.g.N(), p.g.N() }
func (p probGrid) Z(c, r int) float64 { return p.g.At(r, c) }
func (p probGrid) X(c int) float64    { return float64(c) * p.g.Step() }
func (p probGrid) Y(r int) float64    { return float64(r) * p.g.Step() }

// mapGrid selects the probability grid and phase axis for an emission
// type. EmissionIo shares the all-emission map.
func mapGrid(ds *jdep.Dataset, etype jdep.EmissionType) (*jdep.Grid, jdep.Satellite, error) {
	if ds == nil {
		ds = jdep.DefaultDataset()
	}
	switch etype {
	case jdep.EmissionAll, jdep.EmissionIo:
		return ds.ProbabilityAll, jdep.Io, nil
	case jdep.EmissionNonIo:
		return ds.ProbabilityNonIo, jdep.Ganymede, nil
	}
	return nil, 0, &jdep.InputError{
		What:   "emission type",
		Value:  etype.String(),
		Reason: "must be one of all, io, non-io",
	}
}

// ProbabilityMap builds a heat map of the emission probability over the
// (CML, satellite phase) plane. A nil dataset selects the bundled one.
func ProbabilityMap(ds *jdep.Dataset, etype jdep.EmissionType) (*plot.Plot, error) {
	g, sat, err := mapGrid(ds, etype)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Jovian DAM probability (%s emission)", etype)
	p.X.Label.Text = "CML (System III) [deg]"
	p.Y.Label.Text = fmt.Sprintf("%s phase [deg]", sat)
	p.Add(plotter.NewHeatMap(probGrid{g}, palette.Heat(16, 1)))
	p.X.Min, p.X.Max = 0, 360
	p.Y.Min, p.Y.Max = 0, 360
	return p, nil
}

// AddTrack overlays Jupiter's path through the (CML, phase) plane of the
// given satellite from start to end at the given cadence (15 minutes when
// step is zero). Segments that wrap through the 0/360 boundary are split
// so no line is drawn across the discontinuity. A single-instant track is
// drawn as one marker.
func AddTrack(p *plot.Plot, sat jdep.Satellite, start, end time.Time, step time.Duration) error {
	if step <= 0 {
		step = 15 * time.Minute
	}
	var segs []plotter.XYs
	var seg plotter.XYs
	for t := start; !t.After(end); t = t.Add(step) {
		c, err := jdep.CurrentPhaseCoord(t, sat)
		if err != nil {
			return err
		}
		pt := plotter.XY{X: c.CML, Y: c.Phase}
		if n := len(seg); n > 0 && (math.Abs(pt.X-seg[n-1].X) > 180 || math.Abs(pt.Y-seg[n-1].Y) > 180) {
			segs = append(segs, seg)
			seg = nil
		}
		seg = append(seg, pt)
	}
	if len(seg) > 0 {
		segs = append(segs, seg)
	}

	for _, s := range segs {
		if len(s) == 1 {
			sc, err := plotter.NewScatter(s)
			if err != nil {
				return err
			}
			sc.GlyphStyle.Color = trackColor
			p.Add(sc)
			continue
		}
		ln, sc, err := plotter.NewLinePoints(s)
		if err != nil {
			return err
		}
		ln.LineStyle.Color = trackColor
		sc.GlyphStyle.Color = trackColor
		p.Add(ln, sc)
	}
	return nil
}

// WriteImage renders the plot to w in the given raster or vector format
// ("png", "svg", "pdf", ...) at width by height inches.
func WriteImage(w io.Writer, p *plot.Plot, width, height float64, format string) error {
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
