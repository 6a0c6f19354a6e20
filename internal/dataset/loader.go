package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads a tabular dataset from disk, dispatching on the file extension.
// CSV and XLSX are supported; the first row is treated as the header.
func Load(path string, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path, logger)
	case ".xlsx":
		return LoadXLSX(path, logger)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (expected .csv or .xlsx)", filepath.Ext(path))
	}
}

// LoadCSV reads a comma-separated file with a header row into a Table.
// Short rows are padded and long rows truncated so that every record aligns
// with the header, matching the permissive behavior of typical exports.
func LoadCSV(path string, logger *slog.Logger) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, normalized below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	header := records[0]
	rows := normalizeRows(records[1:], len(header))

	logger.Info("loaded dataset",
		slog.String("path", path),
		slog.Int("columns", len(header)),
		slog.Int("rows", len(rows)))

	return NewTable(header, rows)
}

// LoadXLSX reads the first sheet of an Excel workbook into a Table. The
// first row of the sheet is treated as the header.
func LoadXLSX(path string, logger *slog.Logger) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", sheets[0], path)
	}

	header := records[0]
	rows := normalizeRows(records[1:], len(header))

	logger.Info("loaded dataset",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("columns", len(header)),
		slog.Int("rows", len(rows)))

	return NewTable(header, rows)
}

// normalizeRows pads or truncates each record to the header width. Excel in
// particular omits trailing empty cells.
func normalizeRows(records [][]string, width int) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, width)
		copy(row, rec)
		rows = append(rows, row)
	}
	return rows
}
