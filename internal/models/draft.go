package models

import (
	"time"
)

// Draft is a locally-cached snapshot of unsaved authoring state. There is
// a single slot; every save overwrites it.
type Draft struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	Tags       []string  `json:"tags"`
	CoverImage string    `json:"cover_image"`
	LastSaved  time.Time `json:"last_saved"`
}

// IsEmpty reports whether there is anything worth autosaving
func (d *Draft) IsEmpty() bool {
	return d.Title == "" && d.Content == ""
}
