package docstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store. It backs tests and the degraded
// local mode where no database is configured. Every collection keeps an
// orderable-field set mirroring the indexes a real deployment would have;
// ordering by anything else returns ErrOrderUnsupported so callers
// exercise the same fallback paths they would against the real store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}

	// Orderable lists the fields ordering is allowed on. Nil means any.
	Orderable map[string]bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
	}
}

// Get returns a single document by id
func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Data: copyFields(data)}, nil
}

// Query returns all documents matching the query
func (s *MemoryStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	if q.OrderBy != "" && s.Orderable != nil && !s.Orderable[q.OrderBy] {
		return nil, ErrOrderUnsupported
	}

	s.mu.RLock()
	var docs []Document
	for id, data := range s.collections[collection] {
		if matchesFilters(data, q.Filters) {
			docs = append(docs, Document{ID: id, Data: copyFields(data)})
		}
	}
	s.mu.RUnlock()

	if q.OrderBy != "" {
		field := q.OrderBy
		sort.SliceStable(docs, func(i, j int) bool {
			return fieldTime(docs[j].Data[field]).Before(fieldTime(docs[i].Data[field]))
		})
	}

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

// Add inserts a new document and returns its assigned id
func (s *MemoryStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	id := uuid.New().String()
	s.collections[collection][id] = copyFields(data)
	return id, nil
}

// Update merges the given fields into an existing document
func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		data[k] = v
	}
	return nil
}

// Delete removes a document. Missing ids are not an error.
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func matchesFilters(data map[string]interface{}, filters []Filter) bool {
	for _, f := range filters {
		switch f.Op {
		case OpEqual:
			if data[f.Field] != f.Value {
				return false
			}
		case OpContains:
			arr, ok := data[f.Field].([]string)
			if !ok {
				return false
			}
			found := false
			for _, v := range arr {
				if v == f.Value {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// fieldTime coerces the value shapes a timestamp field can take. Missing
// or unrecognized values sort last (zero time).
func fieldTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case Timestamp:
		return t.Time()
	case *Timestamp:
		if t != nil {
			return t.Time()
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func copyFields(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
