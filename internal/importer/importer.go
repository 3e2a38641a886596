// Package importer reads a module catalog spreadsheet into create requests.
//
// The first row holds the column names, matching the module JSON field
// names (id, name, shortdescription, description, content, studycredit,
// location, contact_id, level, learningoutcomes). Unknown columns are
// ignored and blank rows are skipped.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoHeader          = errors.New("missing header row")
	ErrMissingColumn     = errors.New("missing required column")
)

var requiredColumns = []string{"id", "name", "studycredit", "location", "level"}

// RowError describes a row that could not be converted. Line is 1-based and
// counts the header.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadFile picks the parser from the file extension (.csv or .xlsx).
func ReadFile(path string) ([]models.ModuleCreateRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV parses a comma separated catalog.
func ReadCSV(r io.Reader) ([]models.ModuleCreateRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return ParseRows(records)
}

// ReadXLSX parses the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) ([]models.ModuleCreateRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return ParseRows(rows)
}

// ParseRows converts a header row plus data rows. Rows that fail to convert
// are left out of the result and reported together as *RowError values
// joined into the returned error.
func ParseRows(rows [][]string) ([]models.ModuleCreateRequest, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var (
		modules []models.ModuleCreateRequest
		errs    []error
	)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		module, err := parseRow(row, index, i+2)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		modules = append(modules, module)
	}

	return modules, errors.Join(errs...)
}

func parseRow(row []string, index map[string]int, line int) (models.ModuleCreateRequest, error) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	m := models.ModuleCreateRequest{
		Name:             get("name"),
		ShortDescription: get("shortdescription"),
		Description:      get("description"),
		Content:          get("content"),
		Location:         get("location"),
		Level:            get("level"),
	}

	id, err := strconv.ParseInt(get("id"), 10, 64)
	if err != nil {
		return m, &RowError{Line: line, Column: "id", Value: get("id"), Err: err}
	}
	m.ID = id

	credits, err := strconv.Atoi(get("studycredit"))
	if err != nil {
		return m, &RowError{Line: line, Column: "studycredit", Value: get("studycredit"), Err: err}
	}
	m.StudyCredit = credits

	if raw := get("contact_id"); raw != "" {
		contact, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return m, &RowError{Line: line, Column: "contact_id", Value: raw, Err: err}
		}
		m.ContactID = &contact
	}

	if raw := get("learningoutcomes"); raw != "" {
		m.LearningOutcomes = &raw
	}

	return m, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
