package export

import (
	"path/filepath"
	"strings"
)

// fullPath builds the final artifact path. The extension check is
// case-insensitive, so "report.KML" is left alone while "report" becomes
// "report.kml". An empty name falls back to closest_points_map.<ext>.
func fullPath(name, dir, ext string) string {
	if name == "" {
		name = "closest_points_map." + ext
	}
	if !strings.HasSuffix(strings.ToLower(name), "."+ext) {
		name += "." + ext
	}
	if dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}
