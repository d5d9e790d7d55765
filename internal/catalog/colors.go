package catalog

import "fmt"

// Color is a named marker color with its RGB components. The name matches
// the folium/CSS palette the exported artifacts historically used.
type Color struct {
	Name string
	R    uint8
	G    uint8
	B    uint8
}

// Hex returns the CSS hex form used by the HTML renderer.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

var (
	// MultiModelColor marks points shared between several models.
	MultiModelColor = Color{Name: "purple", R: 128, G: 0, B: 128}
	// ObjectiveColor marks the query coordinate.
	ObjectiveColor = Color{Name: "black", R: 0, G: 0, B: 0}
)

var modelColors = ModelValues[Color]{
	ModelGFS05:       {Name: "red", R: 255, G: 0, B: 0},
	ModelGFS025:      {Name: "darkred", R: 139, G: 0, B: 0},
	ModelECMWF:       {Name: "green", R: 0, G: 128, B: 0},
	ModelUKMET:       {Name: "blue", R: 0, G: 0, B: 255},
	ModelNCEP:        {Name: "orange", R: 255, G: 165, B: 0},
	ModelDWD:         {Name: "orange", R: 255, G: 165, B: 0},
	ModelMeteoFrance: {Name: "darkred", R: 139, G: 0, B: 0},
	ModelCMCC:        {Name: "darkgreen", R: 0, G: 100, B: 0},
	ModelJMA:         {Name: "darkblue", R: 0, G: 0, B: 139},
	ModelICON:        {Name: "lightgreen", R: 144, G: 238, B: 144},
	ModelECCC:        {Name: "lightblue", R: 173, G: 216, B: 230},
}

// ColorFor returns the marker color assigned to a model.
func ColorFor(model string) (Color, bool) {
	return modelColors.GetForModel(model)
}

// GroupColor picks the marker color for a point group: the model's own
// color when a single model selected the point, MultiModelColor otherwise.
func GroupColor(models []string) Color {
	if len(models) == 1 {
		if c, ok := ColorFor(models[0]); ok {
			return c
		}
	}
	return MultiModelColor
}
