package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
)

// multiSeries is the legend entry for points shared by several models.
const multiSeries = "multiple models"

// renderHTML draws the groups as a go-echarts scatter, one series per
// model plus one for shared points and one for the query marker. Each
// marker's tooltip lists the contributing models.
func renderHTML(req Request, tz string) ([]byte, error) {
	type series struct {
		name  string
		color string
		data  []opts.ScatterData
	}

	// Series appear in first-seen group order so the legend is stable
	// across reruns.
	var ordered []*series
	index := make(map[string]*series)
	addTo := func(name, color string, d opts.ScatterData) {
		s, ok := index[name]
		if !ok {
			s = &series{name: name, color: color}
			index[name] = s
			ordered = append(ordered, s)
		}
		s.data = append(s.data, d)
	}

	minLat, maxLat := req.Query.Latitude, req.Query.Latitude
	minLon, maxLon := req.Query.Longitude, req.Query.Longitude
	for _, g := range req.Groups {
		if g.Point.Lat < minLat {
			minLat = g.Point.Lat
		}
		if g.Point.Lat > maxLat {
			maxLat = g.Point.Lat
		}
		if g.Point.Lon < minLon {
			minLon = g.Point.Lon
		}
		if g.Point.Lon > maxLon {
			maxLon = g.Point.Lon
		}

		lines := make([]string, len(g.Models))
		for i, model := range g.Models {
			lines[i] = fmt.Sprintf("%s: %s", model, g.Point.Label())
		}
		d := opts.ScatterData{
			Name:  strings.Join(lines, "<br>"),
			Value: []interface{}{g.Point.Lon, g.Point.Lat},
		}
		if len(g.Models) == 1 {
			addTo(g.Models[0], catalog.GroupColor(g.Models).Hex(), d)
		} else {
			addTo(multiSeries, catalog.MultiModelColor.Hex(), d)
		}
	}

	pad := 0.1 * maxSpan(maxLat-minLat, maxLon-minLon)
	if pad < 0.5 {
		pad = 0.5
	}

	subtitle := fmt.Sprintf("query=(%.2f, %.2f) points=%d", req.Query.Latitude, req.Query.Longitude, len(req.Groups))
	if tz != "" {
		subtitle += " tz=" + tz
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Closest Grid Points", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Closest grid points", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{b}"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minLon - pad, Max: maxLon + pad, Name: "longitude (deg)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: minLat - pad, Max: maxLat + pad, Name: "latitude (deg)", NameLocation: "middle", NameGap: 30}),
	)

	for _, s := range ordered {
		scatter.AddSeries(s.name, s.data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.color}),
		)
	}
	scatter.AddSeries(req.QueryLabel, []opts.ScatterData{{
		Name:  req.QueryLabel,
		Value: []interface{}{req.Query.Longitude, req.Query.Latitude},
	}},
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 16}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: catalog.ObjectiveColor.Hex()}),
	)

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func maxSpan(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
