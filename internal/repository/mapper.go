package repository

import (
	"encoding/json"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/docstore"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/readtime"
)

// MapPost translates a raw document into a Post. Every field-level
// absence degrades to a default: strings to "", tags to an empty set,
// published to false, readTime recomputed from the mapped content. Only a
// missing record itself produces a MappingError.
func MapPost(doc *docstore.Document) (*models.Post, error) {
	if doc == nil || doc.Data == nil {
		id := ""
		if doc != nil {
			id = doc.ID
		}
		return nil, &MappingError{Collection: postsCollection, ID: id}
	}
	data := doc.Data

	post := &models.Post{
		ID:         doc.ID,
		Title:      asString(data["title"]),
		Content:    asString(data["content"]),
		Excerpt:    asString(data["excerpt"]),
		AuthorID:   asString(data["authorId"]),
		Published:  asBool(data["published"]),
		CreatedAt:  asTime(data["createdAt"]),
		UpdatedAt:  asTime(data["updatedAt"]),
		Tags:       asStringSlice(data["tags"]),
		CoverImage: asString(data["coverImage"]),
	}

	post.Slug = asString(data["slug"])
	if post.Slug == "" {
		post.Slug = doc.ID
	}

	if v, ok := data["publishedAt"]; ok && v != nil {
		t := asTime(v)
		post.PublishedAt = &t
	}

	if v, ok := data["readTime"]; ok && v != nil {
		post.ReadTime = asInt(v)
	} else {
		post.ReadTime = readtime.Estimate(post.Content)
	}

	return post, nil
}

// MapComment translates a raw document into a Comment
func MapComment(doc *docstore.Document) (*models.Comment, error) {
	if doc == nil || doc.Data == nil {
		id := ""
		if doc != nil {
			id = doc.ID
		}
		return nil, &MappingError{Collection: commentsCollection, ID: id}
	}
	data := doc.Data

	return &models.Comment{
		ID:         doc.ID,
		PostID:     asString(data["postId"]),
		AuthorID:   asString(data["authorId"]),
		AuthorName: asString(data["authorName"]),
		Content:    asString(data["content"]),
		CreatedAt:  asTime(data["createdAt"]),
	}, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return 0
}

// asTime accepts the shapes a timestamp field can arrive in: the
// provider-native Timestamp, an already-materialized time.Time, or an
// RFC 3339 string from a JSON round-trip. Anything else falls back to
// the current time.
func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case docstore.Timestamp:
		return t.Time()
	case *docstore.Timestamp:
		if t != nil {
			return t.Time()
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Now().UTC()
}

func asStringSlice(v interface{}) []string {
	switch arr := v.(type) {
	case []string:
		out := make([]string, len(arr))
		copy(out, arr)
		return out
	case []interface{}:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}
