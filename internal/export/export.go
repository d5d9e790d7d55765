// Package export renders point groups into shareable artifacts: an
// interactive HTML scatter map and a KML placemark file.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/timezone"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

// Query marker labels. HTML exports default to LabelPoint, KML exports
// to LabelObjective.
const (
	LabelPoint     = "POINT"
	LabelObjective = "OBJECTIVE"
)

var (
	ErrEmptyAsset        = errors.New("empty asset name")
	ErrOverwriteDeclined = errors.New("overwrite declined")
)

// ConfirmFunc decides whether an existing file at path may be replaced.
type ConfirmFunc func(path string) bool

// Allow returns a ConfirmFunc with a fixed answer.
func Allow(allowed bool) ConfirmFunc {
	return func(string) bool { return allowed }
}

// Request describes one export.
type Request struct {
	// Asset names the output file; the format extension is appended
	// when missing.
	Asset string
	// Dir is an optional output directory joined in front of the file
	// name.
	Dir string
	// Query is the coordinate the groups were computed for.
	Query types.Coords
	// Groups are the point groups to render.
	Groups []types.PointGroup
	// QueryLabel overrides the query marker label. Empty picks the
	// format default.
	QueryLabel string
	// Confirm is consulted when the target file already exists. A nil
	// callback declines.
	Confirm ConfirmFunc
}

// Service writes point-group artifacts and returns their final paths.
type Service interface {
	ExportHTML(req Request) (string, error)
	ExportKML(req Request) (string, error)
}

type exportService struct {
	tz     timezone.Service
	logger *slog.Logger
}

// NewService builds the exporter. Timezone lookup is optional: when the
// offline finder fails to initialize, exports still work without the
// timezone annotation.
func NewService(logger *slog.Logger) Service {
	tz, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookup unavailable", "error", err)
		tz = nil
	}
	return NewServiceWithTimezones(tz, logger)
}

// NewServiceWithTimezones wires an explicit timezone service, mainly for
// tests.
func NewServiceWithTimezones(tz timezone.Service, logger *slog.Logger) Service {
	return &exportService{
		tz:     tz,
		logger: logger.With("component", "export"),
	}
}

func (s *exportService) ExportHTML(req Request) (string, error) {
	if req.QueryLabel == "" {
		req.QueryLabel = LabelPoint
	}
	return s.export(req, "html", renderHTML)
}

func (s *exportService) ExportKML(req Request) (string, error) {
	if req.QueryLabel == "" {
		req.QueryLabel = LabelObjective
	}
	return s.export(req, "kml", renderKML)
}

type renderFunc func(req Request, tz string) ([]byte, error)

// export runs the shared flow: resolve the path, settle the overwrite
// question, render in memory, then write. A declined overwrite or a
// render failure leaves any existing file untouched.
func (s *exportService) export(req Request, ext string, render renderFunc) (string, error) {
	if strings.TrimSpace(req.Asset) == "" {
		return "", ErrEmptyAsset
	}
	path := fullPath(req.Asset, req.Dir, ext)

	if _, err := os.Stat(path); err == nil {
		if req.Confirm == nil || !req.Confirm(path) {
			s.logger.Info("keeping existing file", "path", path)
			return "", fmt.Errorf("%w: %s", ErrOverwriteDeclined, path)
		}
	}

	data, err := render(req, s.queryTimezone(req.Query))
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", ext, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	s.logger.Info("export written", "path", path, "bytes", len(data))
	return path, nil
}

func (s *exportService) queryTimezone(query types.Coords) string {
	if s.tz == nil {
		return ""
	}
	name, err := s.tz.Lookup(query)
	if err != nil {
		s.logger.Warn("timezone lookup failed", "error", err)
		return ""
	}
	return name
}
