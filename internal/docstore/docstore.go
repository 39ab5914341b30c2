// Package docstore defines the boundary to the external managed document
// database. A store holds collections of loosely-typed records keyed by an
// opaque id; the supported query surface is equality, array containment,
// descending ordering and result limiting.
package docstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a document id does not exist
	ErrNotFound = errors.New("docstore: document not found")

	// ErrOrderUnsupported is returned when the store cannot satisfy the
	// requested ordering, typically because no index covers the field.
	// Callers are expected to retry without ordering and sort themselves.
	ErrOrderUnsupported = errors.New("docstore: ordering not supported for field")
)

// Document is a raw record: an id plus a mapping of field name to
// loosely-typed value
type Document struct {
	ID   string
	Data map[string]interface{}
}

// FilterOp is a query predicate operator
type FilterOp string

const (
	// OpEqual matches documents whose field equals the value
	OpEqual FilterOp = "=="
	// OpContains matches documents whose array field contains the value
	OpContains FilterOp = "array-contains"
)

// Filter is a single query predicate
type Filter struct {
	Field string
	Op    FilterOp
	Value interface{}
}

// Query describes a collection scan. OrderBy is optional; when set the
// result is ordered by that field descending. Limit <= 0 means no limit.
type Query struct {
	Filters []Filter
	OrderBy string
	Limit   int
}

// Store is the document database boundary. Implementations must return
// ErrNotFound for missing ids and ErrOrderUnsupported when a requested
// ordering cannot be satisfied.
type Store interface {
	// Get returns a single document by id
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Query returns all documents matching the query
	Query(ctx context.Context, collection string, q Query) ([]Document, error)

	// Add inserts a new document and returns its assigned id
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)

	// Update merges the given fields into an existing document
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error

	// Delete removes a document permanently. Deleting a missing id is not
	// an error.
	Delete(ctx context.Context, collection, id string) error
}

// Timestamp is the provider-native timestamp shape. Stores may hand back
// timestamp fields either in this shape or as already-materialized
// time.Time values; the mapper accepts both.
type Timestamp struct {
	Seconds     int64
	Nanoseconds int32
}

// Time materializes the timestamp
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanoseconds)).UTC()
}

// NewTimestamp converts a time.Time into the provider-native shape
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanoseconds: int32(t.Nanosecond())}
}
