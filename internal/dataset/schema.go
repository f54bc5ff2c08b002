package dataset

import (
	"fmt"
	"strconv"
)

// Kind is the value type a column must parse as.
type Kind int

const (
	Text Kind = iota
	Integer
	Float
	Byte
)

// Column describes one position in a record.
type Column struct {
	Name string
	Kind Kind
	// Optional columns are checked only when a record carries every column
	// of the schema.
	Optional bool
}

// Schema is the shape a chart expects its CSV input to have.
type Schema struct {
	Name       string
	Header     bool
	MinColumns int
	// MaxColumns of 0 leaves the column count unbounded.
	MaxColumns int
	// ShapeHint is reported when a record has fewer than MinColumns, or more
	// than MaxColumns when MaxColumns equals MinColumns.
	ShapeHint string
	Columns   []Column
}

func (s Schema) checkShape(n int) string {
	if n < s.MinColumns {
		return s.ShapeHint
	}
	if s.MaxColumns > 0 && n > s.MaxColumns {
		if s.MaxColumns == s.MinColumns {
			return s.ShapeHint
		}
		return "Unsupported number of columns."
	}
	return ""
}

func (c Column) check(value string, index int) string {
	switch c.Kind {
	case Integer:
		if _, err := strconv.ParseInt(value, 10, 32); err != nil {
			return fmt.Sprintf("Invalid %s. Expected an integer.", c.Name)
		}
	case Float:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Sprintf("Invalid %s. Expected a number.", c.Name)
		}
	case Byte:
		if _, err := strconv.ParseUint(value, 10, 8); err != nil {
			return fmt.Sprintf("Invalid %s at column %d. Expected a number between 0 and 255.", c.Name, index+1)
		}
	}
	return ""
}
