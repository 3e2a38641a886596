package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const catalogCSV = `id,name,shortdescription,studycredit,location,level,contact_id,learningoutcomes,extra
1,Web Development,Build web apps,15,Breda,NLQF-5,7,HTML and CSS,ignored
2,Data Science,,30,Den Bosch,NLQF-6,,,

3,  Security ,Pentesting,15,Tilburg,NLQF-5,,,
`

func TestReadCSV(t *testing.T) {
	modules, err := ReadCSV(strings.NewReader(catalogCSV))
	require.NoError(t, err)
	require.Len(t, modules, 3)

	first := modules[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Web Development", first.Name)
	assert.Equal(t, "Build web apps", first.ShortDescription)
	assert.Equal(t, 15, first.StudyCredit)
	require.NotNil(t, first.ContactID)
	assert.Equal(t, int64(7), *first.ContactID)
	require.NotNil(t, first.LearningOutcomes)
	assert.Equal(t, "HTML and CSS", *first.LearningOutcomes)

	assert.Nil(t, modules[1].ContactID)
	assert.Nil(t, modules[1].LearningOutcomes)
	assert.Equal(t, "Security", modules[2].Name)
}

func TestParseRows_RowErrors(t *testing.T) {
	rows := [][]string{
		{"id", "name", "studycredit", "location", "level"},
		{"1", "Web", "15", "Breda", "NLQF-5"},
		{"two", "Data", "30", "Breda", "NLQF-6"},
		{"3", "Security", "many", "Breda", "NLQF-5"},
	}

	modules, err := ParseRows(rows)
	require.Error(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, int64(1), modules[0].ID)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Line)
	assert.Equal(t, "id", rowErr.Column)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `line 4: column studycredit: invalid value "many"`)
}

func TestParseRows_Header(t *testing.T) {
	_, err := ParseRows(nil)
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ParseRows([][]string{{"id", "name", "location", "level"}})
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "studycredit")

	modules, err := ParseRows([][]string{{"\ufeffID", " Name", "StudyCredit", "Location", "Level"}, {"5", "X", "10", "Breda", "NLQF-4"}})
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, int64(5), modules[0].ID)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"id", "name", "studycredit", "location", "level"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"10", "Cloud Computing", "15", "Breda", "NLQF-5"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"11", "Embedded", "30", "Eindhoven", "NLQF-6"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	modules, err := ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "Cloud Computing", modules[0].Name)
	assert.Equal(t, 30, modules[1].StudyCredit)
	assert.Equal(t, "Eindhoven", modules[1].Location)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "modules.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(catalogCSV), 0o600))

	modules, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, modules, 3)

	txtPath := filepath.Join(dir, "modules.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o600))

	_, err = ReadFile(txtPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
