// Package tabular reads delimited-text and spreadsheet files into the raw
// table model consumed by the aggregator.
package tabular

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"varlens/domain/core"
	"varlens/domain/table"

	"github.com/xuri/excelize/v2"
)

var (
	errNoHeader      = errors.New("file has no header row")
	errExcelNoSheets = errors.New("workbook has no sheets")
)

// Reader loads a single input file. The file type is decided by extension:
// .xlsx and .xls go through excelize, everything else is treated as CSV.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given path.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a Table. It fails with core.ErrNotFound if the
// file does not exist and with core.ErrRead if it exists but cannot be
// parsed. The first row is the header row; cells are trimmed and empty
// cells are recorded as missing.
func (r *Reader) Read() (*table.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, core.NewNotFoundError(r.filePath)
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcel()
	default:
		return r.readCSV()
	}
}

func (r *Reader) readCSV() (*table.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, core.NewReadError(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewReadError(r.filePath, err)
	}

	return r.processRows(rows)
}

func (r *Reader) readExcel() (*table.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, core.NewReadError(r.filePath, err)
	}
	defer f.Close()

	// First sheet, whatever its name.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.NewReadError(r.filePath, errExcelNoSheets)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewReadError(r.filePath, err)
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into the Table format. Extra cells
// beyond the header width are discarded; short rows leave the remaining
// columns missing.
func (r *Reader) processRows(rows [][]string) (*table.Table, error) {
	if len(rows) == 0 {
		return nil, core.NewReadError(r.filePath, errNoHeader)
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]table.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(table.Row, len(headers))
		for j, cell := range raw {
			if j >= len(headers) {
				break
			}
			if v := strings.TrimSpace(cell); v != "" {
				row[headers[j]] = v
			}
		}
		dataRows = append(dataRows, row)
	}

	return &table.Table{Headers: headers, Rows: dataRows}, nil
}
