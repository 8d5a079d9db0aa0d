// Package render implements frame renderers.
package render

import (
	"context"
	"io"
	"os"

	"overlap/internal/domain/entity"
	domainerrors "overlap/internal/domain/errors"
	"overlap/internal/domain/service"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Marker fill colors.
const (
	HighlightFill = "#3F51B5"
	DefaultFill   = "#808080"
)

// Feature kinds written in the "kind" property.
const (
	KindMarker = "marker"
	KindCircle = "circle"
)

// GeoJSONRenderer writes every frame as one GeoJSON FeatureCollection per line.
// Feature geometries are geographic; screen positions are kept in properties.
type GeoJSONRenderer struct {
	w io.Writer
}

var _ service.Renderer = (*GeoJSONRenderer)(nil)

// NewGeoJSONRenderer creates a renderer writing newline-delimited GeoJSON to w
func NewGeoJSONRenderer(w io.Writer) *GeoJSONRenderer {
	return &GeoJSONRenderer{w: w}
}

func (r *GeoJSONRenderer) Render(ctx context.Context, frame entity.Frame) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	data, err := FeatureCollection(frame).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode frame")
	}

	if _, err := r.w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write frame")
	}

	return nil
}

// FeatureCollection converts a frame: one feature per active marker followed by circles A and B.
func FeatureCollection(frame entity.Frame) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, m := range frame.Markers {
		f := geojson.NewFeature(m.Location)
		f.Properties = geojson.Properties{
			"kind":        KindMarker,
			"name":        m.Name,
			"rating":      m.Rating.Label(),
			"price":       string(m.Price),
			"screen_x":    m.Screen[0],
			"screen_y":    m.Screen[1],
			"highlighted": m.Highlighted,
			"fill":        fill(m.Highlighted),
		}
		fc.Append(f)
	}

	for _, c := range []entity.CircleView{frame.CircleA, frame.CircleB} {
		f := geojson.NewFeature(c.GeoAnchor)
		f.Properties = geojson.Properties{
			"kind":            KindCircle,
			"role":            string(c.Role),
			"center_x":        c.Center[0],
			"center_y":        c.Center[1],
			"radius_px":       c.Radius,
			"ground_radius_m": c.GroundRadiusMeters,
		}
		fc.Append(f)
	}

	fc.ExtraMembers = geojson.Properties{
		"session":     frame.SessionID.String(),
		"highlighted": frame.HighlightedCount(),
	}
	if frame.Err != nil {
		fc.ExtraMembers["error"] = domainerrors.NewErrorInfo(frame.Err)
	}

	return fc
}

func fill(highlighted bool) string {
	if highlighted {
		return HighlightFill
	}

	return DefaultFill
}

// OpenOutput opens the frame stream; an empty path or "-" is stdout, which is never closed.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create frame output")
	}

	return file, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
