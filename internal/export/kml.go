package export

import (
	"bytes"
	"image/color"
	"strings"

	kml "github.com/twpayne/go-kml/v3"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
)

// renderKML writes one placemark per group plus an unstyled marker at the
// query coordinate. Single-model groups carry the model's icon color,
// shared points the multi-model purple.
func renderKML(req Request, tz string) ([]byte, error) {
	children := make([]kml.Element, 0, len(req.Groups)+1)
	for _, g := range req.Groups {
		c := catalog.GroupColor(g.Models)
		children = append(children, kml.Placemark(
			kml.Name(g.Point.Label()),
			kml.Description(strings.Join(g.Models, ", ")),
			kml.Style(
				kml.IconStyle(
					kml.Color(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}),
				),
			),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: g.Point.Lon, Lat: g.Point.Lat}),
			),
		))
	}

	query := []kml.Element{kml.Name(req.QueryLabel)}
	if tz != "" {
		query = append(query, kml.Description("timezone: "+tz))
	}
	query = append(query, kml.Point(
		kml.Coordinates(kml.Coordinate{Lon: req.Query.Longitude, Lat: req.Query.Latitude}),
	))
	children = append(children, kml.Placemark(query...))

	doc := kml.KML(kml.Document(children...))
	var buf bytes.Buffer
	if err := doc.WriteIndent(&buf, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
