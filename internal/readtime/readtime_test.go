package readtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content", "", 0},
		{"only tags", "<b></b>", 0},
		{"single word", "hello", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"two minutes", strings.Repeat("word ", 400), 2},
		{"rounds up", strings.Repeat("word ", 201), 2},
		{"tags stripped", "<p>" + strings.Repeat("word ", 400) + "</p>", 2},
		{"whitespace only", "   \n\t  ", 0},
		{"markup between words", "<h1>Title</h1><p>body text here</p>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.content))
		})
	}
}
