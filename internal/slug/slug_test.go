package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello, World!", "hello-world"},
		{"mixed separators", "  multiple   spaces_and-dashes  ", "multiple-spaces-and-dashes"},
		{"already a slug", "hello-world", "hello-world"},
		{"empty title", "", ""},
		{"only special characters", "!!!???", ""},
		{"unicode stripped", "Café & Culture", "caf-culture"},
		{"numbers kept", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"leading and trailing hyphens", "---hello---", "hello"},
		{"underscores collapse", "snake_case_title", "snake-case-title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	titles := []string{
		"Hello, World!",
		"  multiple   spaces_and-dashes  ",
		"Top 10 Posts of 2024",
		"",
	}
	for _, title := range titles {
		once := Make(title)
		assert.Equal(t, once, Make(once), "Make should be idempotent for %q", title)
	}
}
