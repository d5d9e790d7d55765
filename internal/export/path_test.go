package export

import (
	"path/filepath"
	"testing"
)

func TestFullPath(t *testing.T) {
	tests := []struct {
		name string
		file string
		dir  string
		ext  string
		want string
	}{
		{name: "appends missing extension", file: "report", ext: "kml", want: "report.kml"},
		{name: "suffix check ignores case", file: "report.KML", ext: "kml", want: "report.KML"},
		{name: "joins directory", file: "report", dir: "out", ext: "html", want: filepath.Join("out", "report.html")},
		{name: "empty name falls back", file: "", ext: "html", want: "closest_points_map.html"},
		{name: "empty name with directory", file: "", dir: "out", ext: "kml", want: filepath.Join("out", "closest_points_map.kml")},
		{name: "foreign extension gets suffixed", file: "map.html", ext: "kml", want: "map.html.kml"},
		{name: "dotted names keep their stem", file: "v1.2-study", ext: "kml", want: "v1.2-study.kml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fullPath(tt.file, tt.dir, tt.ext); got != tt.want {
				t.Errorf("fullPath(%q, %q, %q) = %q, want %q", tt.file, tt.dir, tt.ext, got, tt.want)
			}
		})
	}
}
