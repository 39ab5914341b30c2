package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFields_TimeShapes(t *testing.T) {
	whole := time.Date(2024, 6, 1, 12, 0, 5, 0, time.UTC)
	fractional := time.Date(2024, 6, 1, 12, 0, 5, 500000000, time.UTC)

	out := encodeFields(map[string]interface{}{
		"createdAt":   whole,
		"publishedAt": &fractional,
		"updatedAt":   NewTimestamp(fractional),
		"deletedAt":   (*time.Time)(nil),
		"title":       "untouched",
		"readTime":    3,
	})

	assert.Equal(t, "2024-06-01T12:00:05.000000000Z", out["createdAt"])
	assert.Equal(t, "2024-06-01T12:00:05.500000000Z", out["publishedAt"])
	assert.Equal(t, "2024-06-01T12:00:05.500000000Z", out["updatedAt"])
	assert.Nil(t, out["deletedAt"])
	assert.Equal(t, "untouched", out["title"])
	assert.Equal(t, 3, out["readTime"])
}

func TestEncodeFields_TextOrderIsChronological(t *testing.T) {
	// A whole-second stamp must sort before a fractional one in the same
	// second, which bare RFC 3339 encoding gets wrong ('Z' > '.').
	earlier := time.Date(2024, 6, 1, 12, 0, 5, 0, time.UTC)
	later := time.Date(2024, 6, 1, 12, 0, 5, 500000000, time.UTC)

	a := encodeFields(map[string]interface{}{"t": earlier})["t"].(string)
	b := encodeFields(map[string]interface{}{"t": later})["t"].(string)

	assert.True(t, a < b, "%q should sort before %q", a, b)
	assert.Len(t, a, len(b), "stored forms must be fixed width")
}

func TestEncodeFields_NormalizesZone(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	local := time.Date(2024, 6, 1, 14, 0, 5, 0, zone)

	out := encodeFields(map[string]interface{}{"t": local})
	assert.Equal(t, "2024-06-01T12:00:05.000000000Z", out["t"])
}

func TestEncodeFields_RoundTripsThroughMapperLayout(t *testing.T) {
	stamp := time.Date(2024, 6, 1, 12, 0, 5, 123456789, time.UTC)

	encoded := encodeFields(map[string]interface{}{"t": stamp})["t"].(string)
	parsed, err := time.Parse(time.RFC3339Nano, encoded)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(stamp))
}
