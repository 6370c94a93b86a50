package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// Sheet names of the results workbook.
const (
	SheetByRegion = "By region"
	SheetMap      = "Map"
)

// WorkbookWriter writes the results workbook.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer.
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// Write saves tallies on the "By region" sheet and the map rows, with their
// ratio, on the "Map" sheet.
func (w *WorkbookWriter) Write(path string, tallies []domain.RegionTally, rows []domain.MapRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetByRegion); err != nil {
		return errors.NewStorageError("rename sheet", err)
	}
	if _, err := f.NewSheet(SheetMap); err != nil {
		return errors.NewStorageError("create sheet", err)
	}

	choices := choiceNames(tallies)

	header := tallyHeader(choices)
	byRegion := make([][]interface{}, 0, len(tallies)+1)
	byRegion = append(byRegion, header)
	for _, t := range tallies {
		byRegion = append(byRegion, tallyCells(t, choices))
	}
	if err := writeRows(f, SheetByRegion, byRegion); err != nil {
		return err
	}

	mapRows := make([][]interface{}, 0, len(rows)+1)
	mapRows = append(mapRows, append(tallyHeader(choices), domain.ColRatio))
	for _, r := range rows {
		var ratio interface{}
		if r.HasRatio() {
			ratio = r.Ratio
		}
		mapRows = append(mapRows, append(tallyCells(r.RegionTally, choices), ratio))
	}
	if err := writeRows(f, SheetMap, mapRows); err != nil {
		return err
	}

	for _, sheet := range []string{SheetByRegion, SheetMap} {
		if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
			return errors.NewStorageError("set column width", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("create output directory", err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError(fmt.Sprintf("save %s", path), err)
	}

	w.logger.Info("Workbook written",
		slog.String("path", path),
		slog.Int("regions", len(tallies)),
		slog.Int("map_rows", len(rows)))
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.NewStorageError("cell name", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.NewStorageError(fmt.Sprintf("write %s row %d", sheet, i+1), err)
		}
	}
	return nil
}

// choiceNames returns the choice columns in the order of the first tally.
func choiceNames(tallies []domain.RegionTally) []string {
	if len(tallies) == 0 {
		return nil
	}
	names := make([]string, len(tallies[0].Choices))
	for i, c := range tallies[0].Choices {
		names[i] = c.Name
	}
	return names
}

func tallyHeader(choices []string) []interface{} {
	header := []interface{}{domain.ColNameReg, domain.ColRegistered, domain.ColAbstentions, domain.ColNull}
	for _, c := range choices {
		header = append(header, c)
	}
	return header
}

func tallyCells(t domain.RegionTally, choices []string) []interface{} {
	cells := []interface{}{t.Name, t.Registered, t.Abstentions, t.Null}
	for _, c := range choices {
		v, _ := t.Votes(c)
		cells = append(cells, v)
	}
	return cells
}
