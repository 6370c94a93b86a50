package render

import (
	"context"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/XwaeK/2024-assignment-pandas/internal/geo"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// MapRenderer joins region tallies with their boundaries and draws the map.
type MapRenderer struct {
	logger     *slog.Logger
	shapesPath string
	imagePath  string
	spec       geo.RatioSpec
	chart      *Choropleth
}

// NewMapRenderer creates a renderer reading boundaries from shapesPath and
// writing the PNG to imagePath. An empty imagePath skips drawing.
func NewMapRenderer(logger *slog.Logger, shapesPath, imagePath string, spec geo.RatioSpec, chart *Choropleth) *MapRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MapRenderer{
		logger:     logger,
		shapesPath: shapesPath,
		imagePath:  imagePath,
		spec:       spec,
		chart:      chart,
	}
}

// Plot loads the boundaries, joins them with tallies, computes the ratio and
// renders the map. It returns the joined rows.
func (r *MapRenderer) Plot(ctx context.Context, tallies []domain.RegionTally) ([]domain.MapRow, error) {
	shapes, err := geo.LoadShapes(ctx, r.logger, r.shapesPath)
	if err != nil {
		return nil, err
	}

	rows := geo.JoinShapes(tallies, shapes, r.spec)

	undefined := 0
	for _, row := range rows {
		if !row.HasRatio() {
			undefined++
		}
	}
	r.logger.DebugContext(ctx, "regions joined with shapes",
		slog.Int("rows", len(rows)),
		slog.Int("undefined_ratio", undefined))

	if r.imagePath == "" || r.chart == nil {
		return rows, nil
	}

	if err := r.chart.RenderFile(r.imagePath, rows); err != nil {
		return nil, err
	}

	attrs := []any{slog.String("path", r.imagePath)}
	if info, err := os.Stat(r.imagePath); err == nil {
		attrs = append(attrs, slog.String("size", humanize.Bytes(uint64(info.Size()))))
	}
	r.logger.InfoContext(ctx, "map rendered", attrs...)

	return rows, nil
}
