package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AddGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Add(ctx, "posts", map[string]interface{}{"title": "First"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := store.Get(ctx, "posts", id)
	require.NoError(t, err)
	assert.Equal(t, "First", doc.Data["title"])

	_, err = store.Get(ctx, "posts", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_QueryFilters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Add(ctx, "posts", map[string]interface{}{"published": true, "tags": []string{"go", "web"}})
	store.Add(ctx, "posts", map[string]interface{}{"published": false, "tags": []string{"go"}})
	store.Add(ctx, "posts", map[string]interface{}{"published": true, "tags": []string{"db"}})

	published, err := store.Query(ctx, "posts", Query{
		Filters: []Filter{{Field: "published", Op: OpEqual, Value: true}},
	})
	require.NoError(t, err)
	assert.Len(t, published, 2)

	tagged, err := store.Query(ctx, "posts", Query{
		Filters: []Filter{
			{Field: "published", Op: OpEqual, Value: true},
			{Field: "tags", Op: OpContains, Value: "go"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, tagged, 1)
}

func TestMemoryStore_QueryOrderAndLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		store.Add(ctx, "posts", map[string]interface{}{
			"published": true,
			"createdAt": base.Add(time.Duration(i) * time.Hour),
		})
	}

	docs, err := store.Query(ctx, "posts", Query{OrderBy: "createdAt"})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	first := docs[0].Data["createdAt"].(time.Time)
	last := docs[2].Data["createdAt"].(time.Time)
	assert.True(t, last.Before(first), "ordering should be descending")

	limited, err := store.Query(ctx, "posts", Query{OrderBy: "createdAt", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStore_OrderUnsupported(t *testing.T) {
	store := NewMemoryStore()
	store.Orderable = map[string]bool{"createdAt": true}
	ctx := context.Background()

	store.Add(ctx, "posts", map[string]interface{}{"published": true})

	_, err := store.Query(ctx, "posts", Query{OrderBy: "publishedAt"})
	assert.ErrorIs(t, err, ErrOrderUnsupported)

	_, err = store.Query(ctx, "posts", Query{OrderBy: "createdAt"})
	assert.NoError(t, err)
}

func TestMemoryStore_UpdateMerges(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, _ := store.Add(ctx, "posts", map[string]interface{}{"title": "Old", "published": false})

	err := store.Update(ctx, "posts", id, map[string]interface{}{"title": "New"})
	require.NoError(t, err)

	doc, _ := store.Get(ctx, "posts", id)
	assert.Equal(t, "New", doc.Data["title"])
	assert.Equal(t, false, doc.Data["published"], "untouched fields survive a merge")

	err = store.Update(ctx, "posts", "missing", map[string]interface{}{"title": "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, _ := store.Add(ctx, "posts", map[string]interface{}{"title": "Gone"})

	require.NoError(t, store.Delete(ctx, "posts", id))
	_, err := store.Get(ctx, "posts", id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing id is not an error
	assert.NoError(t, store.Delete(ctx, "posts", "missing"))
}

func TestTimestamp_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 20, 8, 30, 15, 123456789, time.UTC)
	ts := NewTimestamp(now)
	assert.Equal(t, now, ts.Time())
}
