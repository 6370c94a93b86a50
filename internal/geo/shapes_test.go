package geo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	apperrors "github.com/XwaeK/2024-assignment-pandas/internal/errors"
)

func TestLoadShapes(t *testing.T) {
	shapes, err := LoadShapes(context.Background(), nil, filepath.Join("testdata", "regions.geojson"))
	require.NoError(t, err)
	require.Len(t, shapes, 4)

	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma", "Delta"}, names)

	assert.IsType(t, &geom.Polygon{}, shapes[0].Geometry)
	assert.IsType(t, &geom.MultiPolygon{}, shapes[2].Geometry)
	assert.Equal(t, "01", shapes[0].Properties["code"])
	assert.NotContains(t, shapes[0].Properties, NameProperty)
}

func TestLoadShapes_DataUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{"type": "FeatureCollection", "features": [`},
		{name: "not a feature collection", content: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "regions.geojson")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadShapes(context.Background(), nil, path)
			assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadShapes(context.Background(), nil, filepath.Join(t.TempDir(), "absent.geojson"))
		assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
	})
}

func TestLoadShapes_SkipsUnnamedFeatures(t *testing.T) {
	content := `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","properties":{"code":"01"},"geometry":{"type":"Point","coordinates":[1,2]}},` +
		`{"type":"Feature","properties":{"nom":null},"geometry":{"type":"Point","coordinates":[3,4]}},` +
		`{"type":"Feature","properties":{"nom":"Alpha","code":"02"},"geometry":{"type":"Point","coordinates":[5,6]}}]}`
	path := filepath.Join(t.TempDir(), "regions.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	shapes, err := LoadShapes(context.Background(), nil, path)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, "Alpha", shapes[0].Name)
	assert.Equal(t, "02", shapes[0].Properties["code"])
}

func TestBoundsAndPolygons(t *testing.T) {
	shapes, err := LoadShapes(context.Background(), nil, filepath.Join("testdata", "regions.geojson"))
	require.NoError(t, err)

	b := Bounds(shapes[0].Geometry, shapes[2].Geometry, nil)
	assert.Equal(t, 0.0, b.Min(0))
	assert.Equal(t, 0.0, b.Min(1))
	assert.Equal(t, 4.0, b.Max(0))
	assert.Equal(t, 4.0, b.Max(1))

	assert.Len(t, Polygons(shapes[0].Geometry), 1)
	assert.Len(t, Polygons(shapes[2].Geometry), 2)
	assert.Empty(t, Polygons(geom.NewPointFlat(geom.XY, []float64{1, 2})))
}
