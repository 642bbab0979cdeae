// Package store defines the thin persistence adapters that bind the
// record codec to concrete storage engines. Every adapter keeps whole
// records as codec text in a single column (or value) per key; none of
// them interpret record fields.
package store

import (
	"context"
	"errors"

	"github.com/mwantia/mantameta/data"
)

// Standard store errors shared by all adapter implementations.
var (
	ErrNotExist = errors.New("store: record does not exist")
	ErrExist    = errors.New("store: record already exists")
)

// ObjectStore persists object records keyed by storage key.
type ObjectStore interface {
	// Put stores a new record under key. Fails with ErrExist when the
	// key is already present.
	Put(ctx context.Context, key string, rec *data.ObjectRecord) error

	// Get loads the record stored under key. Fails with ErrNotExist
	// when the key is unknown, or codec.ErrMissingValue when the row
	// exists but holds no value.
	Get(ctx context.Context, key string) (*data.ObjectRecord, error)

	// Delete removes the record stored under key. Fails with
	// ErrNotExist when the key is unknown.
	Delete(ctx context.Context, key string) error

	// Keys lists all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the underlying engine resources.
	Close() error
}
