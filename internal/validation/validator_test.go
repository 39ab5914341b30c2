package validation

import (
	"strings"
	"testing"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
)

func hasFieldError(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidatePostInput(t *testing.T) {
	tests := []struct {
		name      string
		input     models.PostInput
		wantField string
	}{
		{
			name:  "valid draft",
			input: models.PostInput{Title: "A Title"},
		},
		{
			name:  "valid published post",
			input: models.PostInput{Title: "A Title", Content: "Body", Published: true},
		},
		{
			name:      "missing title",
			input:     models.PostInput{Title: "   "},
			wantField: "title",
		},
		{
			name:      "title too long",
			input:     models.PostInput{Title: strings.Repeat("x", MaxTitleLength+1)},
			wantField: "title",
		},
		{
			name:      "publish without content",
			input:     models.PostInput{Title: "A Title", Published: true},
			wantField: "content",
		},
		{
			name:      "excerpt too long",
			input:     models.PostInput{Title: "A Title", Excerpt: strings.Repeat("x", MaxExcerptLength+1)},
			wantField: "excerpt",
		},
		{
			name:      "too many tags",
			input:     models.PostInput{Title: "A Title", Tags: make([]string, MaxTags+1)},
			wantField: "tags",
		},
		{
			name:      "blank tag",
			input:     models.PostInput{Title: "A Title", Tags: []string{"go", "  "}},
			wantField: "tags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePostInput(&tt.input)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("ValidatePostInput() = %v, want no errors", errs)
				}
				return
			}
			if !hasFieldError(errs, tt.wantField) {
				t.Errorf("ValidatePostInput() = %v, want error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidatePostUpdate(t *testing.T) {
	blank := "  "
	long := strings.Repeat("x", MaxTitleLength+1)
	good := "New Title"

	if errs := ValidatePostUpdate(&models.PostUpdate{}); len(errs) != 0 {
		t.Errorf("empty update = %v, want no errors", errs)
	}
	if errs := ValidatePostUpdate(&models.PostUpdate{Title: &good}); len(errs) != 0 {
		t.Errorf("good title = %v, want no errors", errs)
	}
	if errs := ValidatePostUpdate(&models.PostUpdate{Title: &blank}); !hasFieldError(errs, "title") {
		t.Errorf("blank title = %v, want title error", errs)
	}
	if errs := ValidatePostUpdate(&models.PostUpdate{Title: &long}); !hasFieldError(errs, "title") {
		t.Errorf("long title = %v, want title error", errs)
	}
	if errs := ValidatePostUpdate(&models.PostUpdate{Tags: []string{""}}); !hasFieldError(errs, "tags") {
		t.Errorf("blank tag = %v, want tags error", errs)
	}
}

func TestValidateComment(t *testing.T) {
	if errs := ValidateComment("Nice post"); len(errs) != 0 {
		t.Errorf("valid comment = %v", errs)
	}
	if errs := ValidateComment("   "); !hasFieldError(errs, "content") {
		t.Errorf("blank comment = %v, want content error", errs)
	}
	if errs := ValidateComment(strings.Repeat("x", models.MaxCommentLength+1)); !hasFieldError(errs, "content") {
		t.Errorf("oversized comment = %v, want content error", errs)
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"hello", "hello-world", "post-123", "a"}
	invalid := []string{"", "Hello", "hello_world", "-hello", "hello-", "hello--world", "héllo"}

	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain content untouched",
			content: "<p>Hello <b>world</b></p>",
			want:    "<p>Hello <b>world</b></p>",
		},
		{
			name:    "script block removed",
			content: `before<script>alert("x")</script>after`,
			want:    "beforeafter",
		},
		{
			name:    "script with attributes removed",
			content: `<script src="https://evil.example/x.js" async></script>kept`,
			want:    "kept",
		},
		{
			name:    "case and newlines handled",
			content: "a<SCRIPT>\nvar x = 1;\n</SCRIPT>b",
			want:    "ab",
		},
		{
			name:    "multiple blocks removed",
			content: "<script>1</script>mid<script>2</script>",
			want:    "mid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeContent(tt.content); got != tt.want {
				t.Errorf("SanitizeContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
