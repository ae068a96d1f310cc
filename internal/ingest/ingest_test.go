package ingest

import (
	"testing"
	"time"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	rating := 4.5

	raw := models.RawMention{
		ID:        "ext-1",
		Platform:  "App_Store",
		Content:   "Great ride",
		Title:     "Review",
		Rating:    &rating,
		Author:    "rider",
		SourceURL: "https://example.com/r/1",
		Date:      "2026-08-20T10:30:00Z",
	}

	mention := Normalize(raw, now)

	assert.Equal(t, "ext-1", mention.ExternalID)
	assert.Equal(t, "app_store", mention.Platform)
	assert.Equal(t, "Great ride", mention.Content)
	assert.Equal(t, "Review", mention.Title)
	assert.Equal(t, &rating, mention.Rating)
	assert.Equal(t, "rider", mention.AuthorName)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC), mention.OriginalDate)
	assert.Nil(t, mention.Classification)
}

func TestNormalizeDefaults(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	mention := Normalize(models.RawMention{Content: "something"}, now)

	assert.NotEmpty(t, mention.ExternalID)
	assert.Equal(t, "unknown", mention.Platform)
	assert.Equal(t, now, mention.OriginalDate)
}

func TestNormalizeGeneratedIDsAreUnique(t *testing.T) {
	now := time.Now()

	first := Normalize(models.RawMention{Content: "a"}, now)
	second := Normalize(models.RawMention{Content: "b"}, now)

	assert.NotEqual(t, first.ExternalID, second.ExternalID)
}

func TestNormalizeDateFormats(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		expected time.Time
	}{
		{
			name:     "RFC3339",
			date:     "2026-08-01T09:00:00Z",
			expected: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "plain date",
			date:     "2026-08-01",
			expected: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "unparseable falls back to ingest time",
			date:     "last tuesday",
			expected: now,
		},
		{
			name:     "empty falls back to ingest time",
			date:     "",
			expected: now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mention := Normalize(models.RawMention{Content: "x", Date: tt.date}, now)
			assert.Equal(t, tt.expected, mention.OriginalDate)
		})
	}
}

func TestNormalizeBatchPreservesOrder(t *testing.T) {
	now := time.Now()
	raws := []models.RawMention{
		{ID: "a", Content: "first"},
		{ID: "b", Content: "second"},
		{ID: "c", Content: ""},
	}

	mentions := NormalizeBatch(raws, now)

	if assert.Len(t, mentions, 3) {
		assert.Equal(t, "a", mentions[0].ExternalID)
		assert.Equal(t, "b", mentions[1].ExternalID)
		assert.Equal(t, "c", mentions[2].ExternalID)
		// Empty content passes through; the classifier decides to skip.
		assert.Equal(t, "", mentions[2].Content)
	}
}
