package geo

import (
	"context"
	"log/slog"
	"os"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"golang.org/x/text/unicode/norm"

	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
)

// NameProperty is the feature property holding the region name in the
// boundary file.
const NameProperty = "nom"

// Shape is one region boundary.
type Shape struct {
	// Name is the region name (name_reg), taken from NameProperty.
	Name       string
	Geometry   geom.T
	Properties map[string]interface{}
}

// LoadShapes reads a GeoJSON feature collection. A missing or malformed file
// yields an error matching errors.ErrDataUnavailable. Features without a
// name cannot join any region and are skipped.
func LoadShapes(ctx context.Context, logger *slog.Logger, path string) ([]Shape, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDataUnavailableError("shapes", err).WithContext("path", path)
	}

	var fc geojson.FeatureCollection
	if err := fc.UnmarshalJSON(data); err != nil {
		return nil, errors.NewDataUnavailableError("shapes", err).WithContext("path", path)
	}

	shapes := make([]Shape, 0, len(fc.Features))
	for _, feature := range fc.Features {
		name, ok := feature.Properties[NameProperty].(string)
		if !ok {
			continue
		}

		props := make(map[string]interface{}, len(feature.Properties))
		for k, v := range feature.Properties {
			if k != NameProperty {
				props[k] = v
			}
		}

		shapes = append(shapes, Shape{
			Name:       norm.NFC.String(name),
			Geometry:   feature.Geometry,
			Properties: props,
		})
	}

	logger.InfoContext(ctx, "shapes loaded",
		slog.String("path", path),
		slog.Int("features", len(shapes)))

	return shapes, nil
}

// Bounds returns the XY extent of the given geometries; nil entries are
// skipped.
func Bounds(geometries ...geom.T) *geom.Bounds {
	b := geom.NewBounds(geom.XY)
	for _, g := range geometries {
		if g != nil {
			b.Extend(g)
		}
	}
	return b
}

// Polygons flattens a geometry into its polygons. Geometries that are not
// polygonal yield nothing.
func Polygons(g geom.T) []*geom.Polygon {
	switch t := g.(type) {
	case *geom.Polygon:
		return []*geom.Polygon{t}
	case *geom.MultiPolygon:
		polys := make([]*geom.Polygon, 0, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			polys = append(polys, t.Polygon(i))
		}
		return polys
	default:
		return nil
	}
}
