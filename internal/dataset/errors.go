package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformed wraps tokenizer failures from encoding/csv.
var ErrMalformed = errors.New("malformed CSV")

// LineError reports the first record that does not fit a Schema.
// Line is the 1-indexed physical line of the file.
type LineError struct {
	Line   int
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Reason)
}
