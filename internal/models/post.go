package models

import (
	"time"
)

// Post represents a blog post in the system. Content is the HTML string
// produced by the editing surface; ReadTime is derived from it.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Slug        string     `json:"slug"`
	AuthorID    string     `json:"author_id"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Tags        []string   `json:"tags"`
	CoverImage  string     `json:"cover_image,omitempty"`
	ReadTime    int        `json:"read_time"`
}

// PostInput carries the author-supplied fields for creating a post.
// ID, Slug, ReadTime and the timestamps are derived by the repository.
type PostInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	AuthorID   string   `json:"author_id"`
	Published  bool     `json:"published"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
}

// PostUpdate carries a partial update. Nil fields are left untouched.
type PostUpdate struct {
	Title      *string  `json:"title,omitempty"`
	Content    *string  `json:"content,omitempty"`
	Excerpt    *string  `json:"excerpt,omitempty"`
	Published  *bool    `json:"published,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage *string  `json:"cover_image,omitempty"`
}

// HasTag reports whether the post carries the given tag
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
