package damplot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lwa-project/jdep"
)

// WriteHTML renders an interactive heat map of the probability grid as a
// standalone HTML page, for quick inspection in a browser. A nil dataset
// selects the bundled one.
func WriteHTML(w io.Writer, ds *jdep.Dataset, etype jdep.EmissionType) error {
	g, sat, err := mapGrid(ds, etype)
	if err != nil {
		return err
	}

	n := g.N()
	axis := make([]string, n)
	for k := 0; k < n; k++ {
		axis[k] = strconv.FormatFloat(float64(k)*g.Step(), 'f', -1, 64)
	}
	data := make([]opts.HeatMapData, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, g.At(i, j)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Jovian DAM probability"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Jovian DAM probability (%s emission)", etype)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "CML (System III) [deg]"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: fmt.Sprintf("%s phase [deg]", sat), Data: axis}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(g.Max()),
		}),
	)
	hm.SetXAxis(axis).AddSeries("probability", data)
	return hm.Render(w)
}
