package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ErrColumnNotFound is returned when the header row has no zone column.
var ErrColumnNotFound = errors.New("zone column not found")

// Reader reads zone labels from a CSV or XLSX file.
// It implements pipeline.RecordSource.
type Reader struct {
	path   string
	column string
	sheet  string
}

// NewReader creates a Reader for the file at path. column names the zone
// label column; sheet selects an XLSX worksheet and defaults to the first.
func NewReader(path, column, sheet string) *Reader {
	return &Reader{path: path, column: column, sheet: sheet}
}

// ReadRecords reads every data row of the file. The format is chosen by
// file extension: .xlsx uses excelize, anything else is read as CSV.
func (r *Reader) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".xlsx", ".xlsm":
		rows, err = r.readXLSX()
	default:
		rows, err = r.readCSV()
	}
	if err != nil {
		return nil, err
	}
	return recordsFromRows(rows, r.column)
}

func (r *Reader) readCSV() ([][]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read records %s: %w", r.path, err)
	}
	return rows, nil
}

func (r *Reader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("read records %s: workbook has no sheets", r.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read records %s sheet %q: %w", r.path, sheet, err)
	}
	return rows, nil
}

// ReadCSV reads all rows from a comma-separated source. Quotes are parsed
// leniently and rows may have differing field counts.
func ReadCSV(src io.Reader) ([][]string, error) {
	cr := csv.NewReader(src)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// recordsFromRows locates the zone column in the header row and turns every
// following row into a Record. Rows too short to reach the column yield an
// empty label, which still counts as a record.
func recordsFromRows(rows [][]string, column string) ([]domain.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q (no header row)", ErrColumnNotFound, column)
	}

	idx := columnIndex(rows[0], column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		var label string
		if idx < len(row) {
			label = row[idx]
		}
		records = append(records, domain.Record{Row: i + 1, ZoneLabel: label})
	}
	return records, nil
}

// columnIndex matches headers after whitespace cleanup, so "UT_x\n" and
// " UT_x" both match "UT_x".
func columnIndex(header []string, column string) int {
	want := domain.CleanHeader(column)
	for i, h := range header {
		if domain.CleanHeader(strings.TrimPrefix(h, "\ufeff")) == want {
			return i
		}
	}
	return -1
}
