// Package ingest normalizes raw mention payloads delivered by external
// scraper and search collaborators into the canonical mention form the
// classification pipeline consumes.
package ingest

import (
	"strings"
	"time"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultPlatform = "unknown"

// Normalize converts one raw mention. Missing optional fields get
// stable defaults: a generated external ID, the current time for an
// absent or unparseable date, and an "unknown" platform. Content is
// passed through untouched; empty content is the classifier's call to
// skip, not ours.
func Normalize(raw models.RawMention, now time.Time) models.Mention {
	externalID := strings.TrimSpace(raw.ID)
	if externalID == "" {
		externalID = uuid.NewString()
	}

	platform := strings.TrimSpace(strings.ToLower(raw.Platform))
	if platform == "" {
		platform = defaultPlatform
	}

	return models.Mention{
		ExternalID:   externalID,
		Platform:     platform,
		Content:      raw.Content,
		Title:        raw.Title,
		Rating:       raw.Rating,
		AuthorName:   raw.Author,
		SourceURL:    raw.SourceURL,
		OriginalDate: parseDate(raw.Date, now),
	}
}

// NormalizeBatch converts a raw batch, preserving order.
func NormalizeBatch(raws []models.RawMention, now time.Time) []models.Mention {
	mentions := make([]models.Mention, 0, len(raws))
	for _, raw := range raws {
		mentions = append(mentions, Normalize(raw, now))
	}
	return mentions
}

// parseDate accepts RFC 3339 timestamps and plain dates; anything else
// falls back to the ingest time so downstream sorting never breaks.
func parseDate(value string, now time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return now
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	logrus.Debugf("Unparseable mention date %q, defaulting to ingest time", value)
	return now
}
