package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/database"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fieldPattern guards JSONB path expressions built from filter fields
var fieldPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// storedTimeLayout is RFC 3339 with fixed nine-digit fractional seconds.
// encoding/json trims trailing zeros, which breaks the lexicographic
// ordering ORDER BY relies on: within one second "…:05Z" would sort
// after "…:05.5Z". Fixed width keeps text order chronological.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// orderableFields are the fields covered by the expression indexes in the
// documents migration. Ordering by anything else surfaces
// ErrOrderUnsupported, matching a managed store rejecting an unindexed
// order-by.
var orderableFields = map[string]bool{
	"publishedAt": true,
	"createdAt":   true,
}

// PostgresStore implements Store on a single JSONB documents table
type PostgresStore struct {
	db  *database.DB
	log zerolog.Logger
}

// NewPostgresStore creates a Postgres-backed document store
func NewPostgresStore(db *database.DB, log zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		db:  db,
		log: log.With().Str("component", "docstore").Logger(),
	}
}

// Get returns a single document by id
func (s *PostgresStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE collection = $1 AND id = $2",
		collection, id,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("docstore get: %w", err)
	}

	data := make(map[string]interface{})
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("docstore get: decode document: %w", err)
	}
	return &Document{ID: id, Data: data}, nil
}

// Query returns all documents matching the query
func (s *PostgresStore) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	if q.OrderBy != "" {
		if !fieldPattern.MatchString(q.OrderBy) {
			return nil, fmt.Errorf("docstore query: invalid order field %q", q.OrderBy)
		}
		if !orderableFields[q.OrderBy] {
			return nil, ErrOrderUnsupported
		}
	}

	var sb strings.Builder
	sb.WriteString("SELECT id, data FROM documents WHERE collection = $1")
	args := []interface{}{collection}

	for _, f := range q.Filters {
		if !fieldPattern.MatchString(f.Field) {
			return nil, fmt.Errorf("docstore query: invalid filter field %q", f.Field)
		}
		switch f.Op {
		case OpEqual:
			probe, err := json.Marshal(map[string]interface{}{f.Field: f.Value})
			if err != nil {
				return nil, fmt.Errorf("docstore query: encode filter: %w", err)
			}
			args = append(args, string(probe))
			fmt.Fprintf(&sb, " AND data @> $%d::jsonb", len(args))
		case OpContains:
			probe, err := json.Marshal(f.Value)
			if err != nil {
				return nil, fmt.Errorf("docstore query: encode filter: %w", err)
			}
			args = append(args, string(probe))
			fmt.Fprintf(&sb, " AND data -> '%s' @> $%d::jsonb", f.Field, len(args))
		default:
			return nil, fmt.Errorf("docstore query: unsupported operator %q", f.Op)
		}
	}

	if q.OrderBy != "" {
		// Timestamps are stored in storedTimeLayout, a fixed-width UTC
		// form that sorts chronologically as text.
		fmt.Fprintf(&sb, " ORDER BY data ->> '%s' DESC NULLS LAST", q.OrderBy)
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("docstore query: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("docstore query: scan: %w", err)
		}
		data := make(map[string]interface{})
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("docstore query: decode document: %w", err)
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	return docs, rows.Err()
}

// Add inserts a new document and returns its assigned id
func (s *PostgresStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	raw, err := json.Marshal(encodeFields(data))
	if err != nil {
		return "", fmt.Errorf("docstore add: encode document: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)",
		collection, id, raw,
	)
	if err != nil {
		return "", fmt.Errorf("docstore add: %w", err)
	}
	return id, nil
}

// Update merges the given fields into an existing document
func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	raw, err := json.Marshal(encodeFields(fields))
	if err != nil {
		return fmt.Errorf("docstore update: encode fields: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE documents SET data = data || $3::jsonb WHERE collection = $1 AND id = $2",
		collection, id, raw,
	)
	if err != nil {
		return fmt.Errorf("docstore update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("docstore update: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// encodeFields normalizes timestamp values into storedTimeLayout in UTC
// before serialization
func encodeFields(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		switch t := v.(type) {
		case time.Time:
			out[k] = t.UTC().Format(storedTimeLayout)
		case *time.Time:
			if t != nil {
				out[k] = t.UTC().Format(storedTimeLayout)
			} else {
				out[k] = nil
			}
		case Timestamp:
			out[k] = t.Time().Format(storedTimeLayout)
		default:
			out[k] = v
		}
	}
	return out
}

// Delete removes a document. Missing ids are not an error.
func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = $1 AND id = $2",
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("docstore delete: %w", err)
	}
	return nil
}
