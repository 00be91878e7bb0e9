package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
)

// SpreadsheetSource reads an uploaded spreadsheet from local storage and
// normalizes the first sheet into header-keyed rows. Single pass, not
// restartable.
type SpreadsheetSource struct {
	BaseDir string
}

func NewSpreadsheetSource(baseDir string) *SpreadsheetSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &SpreadsheetSource{BaseDir: baseDir}
}

func (s *SpreadsheetSource) Rows(ctx context.Context, sourcePath string) ([]app.Row, error) {
	_ = ctx

	path := sourcePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, sourcePath)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return s.xlsxRows(path)
	case ".csv":
		return s.csvRows(path)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrSourceUnsupported, ext)
	}
}

func (s *SpreadsheetSource) xlsxRows(path string) ([]app.Row, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
	}

	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceIO, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	// First sheet only.
	records, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceIO, err)
	}
	return rowsFromRecords(records), nil
}

func (s *SpreadsheetSource) csvRows(path string) ([]app.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceIO, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceIO, err)
	}
	return rowsFromRecords(records), nil
}

// rowsFromRecords maps each data row against the header row. Short rows read
// as absent values; extra cells beyond the headers are dropped.
func rowsFromRecords(records [][]string) []app.Row {
	if len(records) == 0 {
		return nil
	}

	headers := records[0]
	if len(headers) > 0 {
		// Spreadsheets saved on Windows often lead with a UTF-8 BOM.
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	rows := make([]app.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(app.Row, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
