package damplot

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/lwa-project/jdep"
)

const rad = math.Pi / 180

// regionDashes tells the outlines of adjacent or overlapping regions
// apart: the primed regions and D are dashed or dotted, the rest solid.
var regionDashes = map[jdep.RegionBits][]vg.Length{
	jdep.RegionAp:  {vg.Points(6), vg.Points(3)},
	jdep.RegionApp: {vg.Points(6), vg.Points(3)},
	jdep.RegionBp:  {vg.Points(1), vg.Points(3)},
	jdep.RegionD:   {vg.Points(6), vg.Points(3)},
}

// AddRegions outlines each emission region of mask on top of p and writes
// the region letter at the region's centroid. An outline follows the cell
// edges between cells inside and outside the region; the mask is periodic,
// so a region crossing the 0/360 seam is outlined on both sides of it.
func AddRegions(p *plot.Plot, mask *jdep.RegionMask) error {
	for bit := jdep.RegionA; bit <= jdep.RegionD; bit <<= 1 {
		segs, center, ok := regionOutline(mask, bit)
		if !ok {
			continue
		}
		style := draw.LineStyle{
			Color:  trackColor,
			Width:  vg.Points(1),
			Dashes: regionDashes[bit],
		}
		for _, s := range segs {
			ln, err := plotter.NewLine(s)
			if err != nil {
				return err
			}
			ln.LineStyle = style
			p.Add(ln)
		}
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{center},
			Labels: []string{bit.String()},
		})
		if err != nil {
			return err
		}
		for k := range lbl.TextStyle {
			lbl.TextStyle[k].Color = trackColor
		}
		p.Add(lbl)
	}
	return nil
}

// regionOutline collects the boundary edges of the cells holding bit as
// two-point segments in degrees, and the circular centroid of those cells
// for the label. ok is false when no cell holds the bit.
func regionOutline(mask *jdep.RegionMask, bit jdep.RegionBits) (segs []plotter.XYs, center plotter.XY, ok bool) {
	n := mask.N()
	step := 360 / float64(n)
	h := step / 2
	var sinx, cosx, siny, cosy float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if mask.At(i, j)&bit == 0 {
				continue
			}
			ok = true
			x, y := float64(j)*step, float64(i)*step
			sinx += math.Sin(x * rad)
			cosx += math.Cos(x * rad)
			siny += math.Sin(y * rad)
			cosy += math.Cos(y * rad)
			if mask.At(i, j+1)&bit == 0 {
				segs = appendEdge(segs, x+h, y-h, x+h, y+h)
			}
			if mask.At(i, j-1)&bit == 0 {
				segs = appendEdge(segs, x-h, y-h, x-h, y+h)
			}
			if mask.At(i+1, j)&bit == 0 {
				segs = appendEdge(segs, x-h, y+h, x+h, y+h)
			}
			if mask.At(i-1, j)&bit == 0 {
				segs = appendEdge(segs, x-h, y-h, x+h, y-h)
			}
		}
	}
	if !ok {
		return nil, plotter.XY{}, false
	}
	center = plotter.XY{
		X: math.Mod(math.Atan2(sinx, cosx)/rad+360, 360),
		Y: math.Mod(math.Atan2(siny, cosy)/rad+360, 360),
	}
	return segs, center, true
}

// appendEdge records one cell edge. An edge poking past the 0 side of an
// axis gets a +360 twin so the outline stays visible at the seam.
func appendEdge(segs []plotter.XYs, x0, y0, x1, y1 float64) []plotter.XYs {
	segs = append(segs, plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if math.Min(x0, x1) < 0 {
		segs = append(segs, plotter.XYs{{X: x0 + 360, Y: y0}, {X: x1 + 360, Y: y1}})
	}
	if math.Min(y0, y1) < 0 {
		segs = append(segs, plotter.XYs{{X: x0, Y: y0 + 360}, {X: x1, Y: y1 + 360}})
	}
	return segs
}
