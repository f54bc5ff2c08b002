package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Row is one CSV record keyed by the file's header line.
type Row struct {
	Headers []string
	Values  map[string]string
}

// Get returns the trimmed value of column name.
func (r Row) Get(name string) (string, bool) {
	v, ok := r.Values[name]
	return strings.TrimSpace(v), ok
}

// LoadRows reads a header line and maps every following record onto it.
// Fields past the header count are dropped; short records leave the Row
// without the missing keys.
func LoadRows(fs afero.Fs, path string) ([]Row, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rdr := newReader(f)
	headers, err := rdr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, malformed(err)
	}
	headers = append([]string(nil), headers...)

	var rows []Row
	for {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}
		values := make(map[string]string, len(headers))
		for i, h := range headers {
			if i >= len(record) {
				break
			}
			values[h] = record[i]
		}
		rows = append(rows, Row{Headers: headers, Values: values})
	}
	return rows, nil
}

// Records returns the trimmed data records of path, skipping the header line
// when the schema declares one. Each record carries its physical line number.
func Records(fs afero.Fs, path string, schema Schema) ([]Record, error) {
	var out []Record
	err := scan(fs, path, schema, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Record is one trimmed data record and the file line it started on.
type Record struct {
	Line   int
	Fields []string
}

func scan(fs afero.Fs, path string, schema Schema, fn func(Record) error) error {
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rdr := newReader(f)
	first := true
	for {
		fields, err := rdr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return malformed(err)
		}
		line, _ := rdr.FieldPos(0)
		if first && schema.Header {
			first = false
			if len(fields) < schema.MinColumns {
				return &LineError{Line: line, Reason: schema.ShapeHint}
			}
			continue
		}
		first = false

		trimmed := make([]string, len(fields))
		for i, v := range fields {
			trimmed[i] = strings.TrimSpace(v)
		}
		if err := fn(Record{Line: line, Fields: trimmed}); err != nil {
			return err
		}
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// newReader skips a leading UTF-8 byte order mark so spreadsheet exports
// parse like plain files.
func newReader(r io.Reader) *csv.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	rdr := csv.NewReader(br)
	rdr.FieldsPerRecord = -1
	return rdr
}

func malformed(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", ErrMalformed, pe)
	}
	return fmt.Errorf("failed to read CSV: %w", err)
}
