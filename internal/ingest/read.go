package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoRows marks an input that parsed but contained no data rows. It is
// one of the run's fatal conditions.
var ErrNoRows = errors.New("input contains no data rows")

// Read loads the raw rows at path, dispatching on the file extension:
// .xlsx/.xlsm open as Excel workbooks, everything else parses as CSV.
// sheet selects the workbook sheet and is ignored for CSV input.
func Read(path, sheet string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadWorkbook(path, sheet)
	default:
		return ReadCSV(path)
	}
}

// ReadCSV parses a CSV file whose first record is the header row. Ragged
// rows are tolerated: short rows read as absent cells, long rows drop the
// unheadered overflow.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, makeRow(header, record))
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// ReadWorkbook parses an Excel workbook. The named sheet is used when
// given, otherwise the first sheet; the sheet's first row is the header.
// Cell values arrive as their formatted text, which is what the
// normalizers expect from a spreadsheet export.
func ReadWorkbook(path, sheet string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoRows
		}
		sheet = sheets[0]
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if blankCells(record) {
			continue
		}
		rows = append(rows, makeRow(header, record))
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// blankCells reports whether every cell in the record is empty. Excel
// keeps rows around after their contents are deleted; those must not
// surface as skip diagnostics.
func blankCells(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
