package dataset

import "github.com/spf13/afero"

// Validate scans every data record of path against schema without keeping
// anything. It stops at the first record that does not fit. A header line
// narrower than MinColumns fails as line 1.
func Validate(fs afero.Fs, path string, schema Schema) error {
	return scan(fs, path, schema, func(rec Record) error {
		return schema.Check(rec)
	})
}

// Check validates a single record.
func (s Schema) Check(rec Record) error {
	if reason := s.checkShape(len(rec.Fields)); reason != "" {
		return &LineError{Line: rec.Line, Reason: reason}
	}
	full := len(rec.Fields) >= len(s.Columns)
	for i, col := range s.Columns {
		if i >= len(rec.Fields) {
			break
		}
		if col.Optional && !full {
			continue
		}
		if reason := col.check(rec.Fields[i], i); reason != "" {
			return &LineError{Line: rec.Line, Reason: reason}
		}
	}
	return nil
}
