package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/mocks"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/readtime"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/slug"
	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/validation"
)

// BenchmarkSlugMake benchmarks slug generation on a typical title
func BenchmarkSlugMake(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		slug.Make("10 Things I Wish I Knew About Go, Concurrency & Channels!")
	}
}

// BenchmarkReadTimeEstimate benchmarks the read-time estimate over a
// realistic article body
func BenchmarkReadTimeEstimate(b *testing.B) {
	content := "<p>" + strings.Repeat("some reasonably sized article body text here ", 250) + "</p>"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		readtime.Estimate(content)
	}
}

// BenchmarkSanitizeContent benchmarks script stripping on editor HTML
func BenchmarkSanitizeContent(b *testing.B) {
	content := strings.Repeat("<p>safe paragraph</p><script>var x = 1;</script>", 50)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		validation.SanitizeContent(content)
	}
}

// BenchmarkSearch benchmarks the linear published-set scan with 1000
// posts stored
func BenchmarkSearch(b *testing.B) {
	mockPostRepo := mocks.NewMockPostRepository()
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		mockPostRepo.Create(ctx, &models.PostInput{
			Title:     fmt.Sprintf("Post Number %d", i),
			Content:   fmt.Sprintf("Body text of post %d about various topics", i),
			AuthorID:  "bench-author",
			Published: true,
			Tags:      []string{"bench", fmt.Sprintf("topic-%d", i%10)},
		})
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := mockPostRepo.Search(ctx, "topics", 0); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "posts/sec")
}
