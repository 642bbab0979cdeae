// Package codec converts metadata records to and from the text form
// stored in a single relational column. The stored text is the same
// external JSON representation the records use on the wire, which is
// what makes the encode/decode round trip lossless. Storage engines
// bind these functions behind their own column adapters; the codec
// itself knows nothing about any engine.
package codec

import (
	"errors"
	"fmt"

	"github.com/mwantia/mantameta/data"
)

var (
	// ErrMissingValue marks a decode of an absent storage cell. It is
	// distinct from ErrDecode so callers can tell "no row" from
	// "corrupt row".
	ErrMissingValue = errors.New("codec: no stored value")

	// ErrDecode marks stored text that is not valid structured data or
	// fails record parsing. Parsing failures additionally wrap
	// data.ErrMalformedRecord.
	ErrDecode = errors.New("codec: invalid stored record")
)

// Encode renders an object record as column text. It succeeds for any
// valid record.
func Encode(rec *data.ObjectRecord) ([]byte, error) {
	return rec.MarshalJSON()
}

// Decode reconstructs the object record a previous Encode produced.
// A nil input means the storage cell held no value.
func Decode(b []byte) (*data.ObjectRecord, error) {
	if b == nil {
		return nil, ErrMissingValue
	}
	var rec data.ObjectRecord
	if err := rec.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &rec, nil
}

// EncodeDirectory renders a directory record as column text.
func EncodeDirectory(rec *data.DirectoryRecord) ([]byte, error) {
	return rec.MarshalJSON()
}

// DecodeDirectory reconstructs a directory record from column text.
func DecodeDirectory(b []byte) (*data.DirectoryRecord, error) {
	if b == nil {
		return nil, ErrMissingValue
	}
	var rec data.DirectoryRecord
	if err := rec.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &rec, nil
}

// EncodeEntry renders a tagged union entry, discriminator included.
func EncodeEntry(e *data.Entry) ([]byte, error) {
	return e.MarshalJSON()
}

// DecodeEntry reconstructs a tagged union entry, dispatching on the
// stored discriminator.
func DecodeEntry(b []byte) (*data.Entry, error) {
	if b == nil {
		return nil, ErrMissingValue
	}
	var e data.Entry
	if err := e.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &e, nil
}
