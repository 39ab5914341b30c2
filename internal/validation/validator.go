package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// scriptRegex strips script blocks from editor HTML before storage
	scriptRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
)

// MaxTitleLength bounds post titles
const MaxTitleLength = 200

// MaxExcerptLength bounds post excerpts
const MaxExcerptLength = 500

// MaxTags bounds the tag set on a single post
const MaxTags = 10

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidatePostInput validates an author-supplied post
func ValidatePostInput(input *models.PostInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	} else if len(input.Title) > MaxTitleLength {
		errors = append(errors, ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength),
		})
	}

	if input.Published && strings.TrimSpace(input.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required to publish"})
	}

	if len(input.Excerpt) > MaxExcerptLength {
		errors = append(errors, ValidationError{
			Field:   "excerpt",
			Message: fmt.Sprintf("excerpt must be at most %d characters", MaxExcerptLength),
		})
	}

	errors = append(errors, validateTags(input.Tags)...)
	return errors
}

// ValidatePostUpdate validates a partial post update
func ValidatePostUpdate(upd *models.PostUpdate) []ValidationError {
	var errors []ValidationError

	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			errors = append(errors, ValidationError{Field: "title", Message: "title cannot be blank"})
		} else if len(*upd.Title) > MaxTitleLength {
			errors = append(errors, ValidationError{
				Field:   "title",
				Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength),
			})
		}
	}

	if upd.Excerpt != nil && len(*upd.Excerpt) > MaxExcerptLength {
		errors = append(errors, ValidationError{
			Field:   "excerpt",
			Message: fmt.Sprintf("excerpt must be at most %d characters", MaxExcerptLength),
		})
	}

	if upd.Tags != nil {
		errors = append(errors, validateTags(upd.Tags)...)
	}
	return errors
}

// ValidateComment validates a comment body
func ValidateComment(content string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	} else if len(content) > models.MaxCommentLength {
		errors = append(errors, ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at most %d characters", models.MaxCommentLength),
		})
	}
	return errors
}

// IsValidSlug reports whether s has the canonical slug shape
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// SanitizeContent removes script blocks from editor HTML
func SanitizeContent(content string) string {
	return scriptRegex.ReplaceAllString(content, "")
}

func validateTags(tags []string) []ValidationError {
	var errors []ValidationError

	if len(tags) > MaxTags {
		errors = append(errors, ValidationError{
			Field:   "tags",
			Message: fmt.Sprintf("at most %d tags allowed", MaxTags),
		})
	}
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			errors = append(errors, ValidationError{Field: "tags", Message: "tags cannot be blank"})
			break
		}
	}
	return errors
}
