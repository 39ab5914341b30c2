package models

import (
	"time"
)

// Comment represents a comment on a post. Comments are append-only from
// the API's perspective except for deletion by their author.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// MaxCommentLength is the maximum allowed characters in a comment body
const MaxCommentLength = 5000
