// Package exporter writes the pipeline results.
//
// This package contains three components:
//
// CSVWriter: CSV writing with headers, append mode and an optional UTF-8
// BOM for Excel compatibility. WriteFrame exports a data frame as is.
//
// WriteTable: prints a data frame as an aligned text table, the way the
// aggregated results are dumped to stdout.
//
// WorkbookWriter: writes an XLSX workbook with the aggregated table and the
// map rows (including the ratio).
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(logger, paths.OutputDir)
//	err := writer.WriteFrame(paths.ResultsCSV, byRegion, false)
//
//	err = exporter.WriteTable(os.Stdout, byRegion)
//
//	wb := exporter.NewWorkbookWriter(logger)
//	err = wb.Write(paths.Workbook, tallies, rows)
package exporter
