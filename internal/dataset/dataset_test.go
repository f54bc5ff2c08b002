package dataset_test

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csv-charts/internal/dataset"
)

var pairSchema = dataset.Schema{
	Name:       "pair",
	MinColumns: 2,
	MaxColumns: 2,
	ShapeHint:  "Expected exactly 2 columns for x and y values.",
	Columns: []dataset.Column{
		{Name: "x value", Kind: dataset.Integer},
		{Name: "y value", Kind: dataset.Integer},
	},
}

var sliceSchema = dataset.Schema{
	Name:       "slice",
	Header:     true,
	MinColumns: 2,
	MaxColumns: 5,
	ShapeHint:  "Expected at least 2 columns for label and value.",
	Columns: []dataset.Column{
		{Name: "label", Kind: dataset.Text},
		{Name: "value", Kind: dataset.Float},
		{Name: "RGB color value", Kind: dataset.Byte, Optional: true},
		{Name: "RGB color value", Kind: dataset.Byte, Optional: true},
		{Name: "RGB color value", Kind: dataset.Byte, Optional: true},
	},
}

func writeFile(t *testing.T, fs afero.Fs, name, content string) string {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	return name
}

func lineError(t *testing.T, err error) *dataset.LineError {
	t.Helper()
	var le *dataset.LineError
	require.True(t, errors.As(err, &le), "expected LineError, got %v", err)
	return le
}

func TestLoadRows(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "people.csv", "name,age\nann,31,extra\nbob\n")

	rows, err := dataset.LoadRows(fs, path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"name", "age"}, rows[0].Headers)
	assert.Equal(t, map[string]string{"name": "ann", "age": "31"}, rows[0].Values)
	assert.Equal(t, map[string]string{"name": "bob"}, rows[1].Values)
	_, ok := rows[1].Get("age")
	assert.False(t, ok)
}

func TestLoadRows_MissingFile(t *testing.T) {
	rows, err := dataset.LoadRows(afero.NewMemMapFs(), "nope.csv")

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Nil(t, rows)
}

func TestLoadRows_Malformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "bad.csv", "name,age\nann,\"31\n")

	rows, err := dataset.LoadRows(fs, path)

	assert.ErrorIs(t, err, dataset.ErrMalformed)
	assert.Nil(t, rows)
}

func TestRecords_SkipsHeaderAndTrims(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "pie.csv", "label,value\nA, 25 \nB,75\n")

	records, err := dataset.Records(fs, path, sliceSchema)

	require.NoError(t, err)
	assert.Equal(t, []dataset.Record{
		{Line: 2, Fields: []string{"A", "25"}},
		{Line: 3, Fields: []string{"B", "75"}},
	}, records)
}

func TestValidate_Valid(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "points.csv", "1,2\n3, 4\n-5,6\n")

	assert.NoError(t, dataset.Validate(fs, path, pairSchema))
}

func TestValidate_WrongColumnCount(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "points.csv", "1,2,3\n")

	err := dataset.Validate(fs, path, pairSchema)

	assert.EqualError(t, err, "Line 1: Expected exactly 2 columns for x and y values.")
}

func TestValidate_InvalidInteger(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "points.csv", "1,2\n3,4\n5,x\n")

	le := lineError(t, dataset.Validate(fs, path, pairSchema))

	assert.Equal(t, 3, le.Line)
	assert.Equal(t, "Invalid y value. Expected an integer.", le.Reason)
}

func TestValidate_HeaderFileReportsPhysicalLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "pie.csv", "label,value\nA,ten\n")

	err := dataset.Validate(fs, path, sliceSchema)

	assert.EqualError(t, err, "Line 2: Invalid value. Expected a number.")
}

func TestValidate_ColorColumns(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "pie.csv", "label,value,r,g,b\nA,10,255,0,0\nB,20,12,300,0\n")

	err := dataset.Validate(fs, path, sliceSchema)

	assert.EqualError(t, err,
		"Line 3: Invalid RGB color value at column 4. Expected a number between 0 and 255.")
}

func TestValidate_PartialColorColumnsIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "pie.csv", "label,value,r\nA,10,oops\n")

	assert.NoError(t, dataset.Validate(fs, path, sliceSchema))
}

func TestValidate_TooManyColumns(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "pie.csv", "label,value\nA,10,1,2,3,4\n")

	err := dataset.Validate(fs, path, sliceSchema)

	assert.EqualError(t, err, "Line 2: Unsupported number of columns.")
}

func TestValidate_TooFewColumns(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "pie.csv", "label,value\nA\n")

	err := dataset.Validate(fs, path, sliceSchema)

	assert.EqualError(t, err, "Line 2: Expected at least 2 columns for label and value.")
}

func TestValidate_ByteOrderMark(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "points.csv", "\xef\xbb\xbf1,10\n2,20\n")

	require.NoError(t, dataset.Validate(fs, path, pairSchema))
	records, err := dataset.Records(fs, path, pairSchema)

	require.NoError(t, err)
	assert.Equal(t, []dataset.Record{
		{Line: 1, Fields: []string{"1", "10"}},
		{Line: 2, Fields: []string{"2", "20"}},
	}, records)
}

func TestLoadRows_ByteOrderMark(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "people.csv", "\xef\xbb\xbfname,age\nann,31\n")

	rows, err := dataset.LoadRows(fs, path)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"name", "age"}, rows[0].Headers)
}

func TestValidate_NarrowHeader(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := writeFile(t, fs, "bar.csv", "label\nA,10\n")

	err := dataset.Validate(fs, path, sliceSchema)

	assert.EqualError(t, err, "Line 1: Expected at least 2 columns for label and value.")
}
