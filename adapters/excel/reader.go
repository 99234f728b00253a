package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"statcheck/domain/core"
	"statcheck/domain/sample"
)

// ColumnData holds the numeric columns extracted from a spreadsheet or CSV
// file, keyed by header.
type ColumnData struct {
	Headers []string
	Columns map[string]sample.Sample
}

// Column returns the sample for a header name.
func (d *ColumnData) Column(name string) (sample.Sample, error) {
	col, ok := d.Columns[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found (have: %s)", name, strings.Join(d.Headers, ", "))
	}
	return col, nil
}

// DataReader reads sample columns from .xlsx and .csv files. The first row
// is treated as headers; blank cells are skipped; any other non-numeric
// cell is a parse error.
type DataReader struct {
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file name. The extension
// decides the format; anything that is not .csv is read as xlsx.
func NewDataReader(fileName string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(fileName)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{fileType: fileType}
}

// Read extracts numeric columns from the stream.
func (r *DataReader) Read(src io.Reader) (*ColumnData, error) {
	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = readCSVRows(src)
	default:
		rows, err = readExcelRows(src)
	}
	if err != nil {
		return nil, err
	}
	return buildColumns(rows)
}

// readExcelRows reads Sheet1 of an xlsx stream.
func readExcelRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		sheet = "Sheet1"
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func buildColumns(rows [][]string) (*ColumnData, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: file must have a header row and at least one data row", core.ErrParse)
	}

	headers := make([]string, 0, len(rows[0]))
	for i, header := range rows[0] {
		name := strings.TrimSpace(header)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		headers = append(headers, name)
	}

	columns := make(map[string]sample.Sample, len(headers))
	for _, row := range rows[1:] {
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, core.NewParseError(cell)
			}
			columns[headers[i]] = append(columns[headers[i]], v)
		}
	}

	for _, name := range headers {
		if len(columns[name]) == 0 {
			delete(columns, name)
		}
	}
	if len(columns) == 0 {
		return nil, core.ErrNoNumericTokens
	}

	kept := make([]string, 0, len(headers))
	for _, name := range headers {
		if _, ok := columns[name]; ok {
			kept = append(kept, name)
		}
	}

	return &ColumnData{Headers: kept, Columns: columns}, nil
}
