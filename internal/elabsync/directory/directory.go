// Package directory loads the user directory spreadsheet and normalizes
// it into plain records. Both xlsx and CSV inputs are supported, from a
// local path or an http(s) URL.
package directory

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/elabtools/elabsync/internal/elabsync/errors"
)

// Record is one normalized row of the input spreadsheet.
type Record struct {
	Firstname string
	Lastname  string
	Email     string
	Team      string
	Teamgroup string
}

// xlsxMagic is the ZIP local file header every xlsx file starts with.
var xlsxMagic = []byte("PK\x03\x04")

// GetData retrieves the raw spreadsheet bytes from a URL or file path
func GetData(source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		resp, err := http.Get(source) //nolint:gosec // G107: source URL is operator-supplied
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, errors.New("failed to fetch data from URL")
		}
		return io.ReadAll(resp.Body)
	case strings.HasPrefix(source, "file://") || !strings.Contains(source, "://"):
		return os.ReadFile(strings.TrimPrefix(source, "file://"))
	default:
		return nil, errors.New("unsupported source prefix")
	}
}

// Load reads the spreadsheet at source and normalizes it into records.
// The first row must be the header; cells are whitespace-trimmed and
// rows that are blank in every mapped column are dropped. A nil columns
// map selects the built-in header mapping.
func Load(source string, columns ColumnMap) ([]Record, error) {
	if columns == nil {
		columns = DefaultColumnMap()
	}

	data, err := GetData(source)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	if isXLSX(source, data) {
		rows, err = xlsxRows(data)
	} else {
		rows, err = csvRows(data)
	}
	if err != nil {
		return nil, err
	}

	return normalize(rows, columns)
}

func isXLSX(source string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(source), ".xlsx") {
		return true
	}
	return bytes.HasPrefix(data, xlsxMagic)
}

func csvRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	return reader.ReadAll()
}

func xlsxRows(data []byte) ([][]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = book.Close() }()

	// Only the first sheet is read; the directory export is single-sheet.
	return book.GetRows(book.GetSheetName(0))
}

func normalize(rows [][]string, columns ColumnMap) ([]Record, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyDirectory
	}

	// Resolve each canonical field to its column index via the header row.
	fieldCol := make(map[string]int)
	for i, header := range rows[0] {
		if field, ok := columns[strings.TrimSpace(header)]; ok {
			fieldCol[field] = i
		}
	}
	if len(fieldCol) == 0 {
		return nil, apperrors.ErrMissingColumns
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(field string) string {
			i, ok := fieldCol[field]
			if !ok || i >= len(row) {
				// xlsx rows omit trailing empty cells
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec := Record{
			Firstname: cell(FieldFirstname),
			Lastname:  cell(FieldLastname),
			Email:     cell(FieldEmail),
			Team:      cell(FieldTeam),
			Teamgroup: cell(FieldTeamgroup),
		}
		if rec == (Record{}) {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
