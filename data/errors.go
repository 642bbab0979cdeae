package data

import (
	"errors"
	"fmt"
)

// Standard record errors. Parsing failures always wrap ErrMalformedRecord
// so callers can match with errors.Is regardless of the detail text.
var (
	ErrMalformedRecord = errors.New("meta: malformed record")
)

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}
