package analysis

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func mentionWithContent(id, content string) models.Mention {
	return models.Mention{ExternalID: id, Platform: "app_store", Content: content}
}

func TestDetectCrisisEmptyInput(t *testing.T) {
	result := DetectCrisis(nil)

	assert.Equal(t, models.CrisisNone, result.CrisisLevel)
	assert.Equal(t, 0, result.TotalSignals)
	assert.Empty(t, result.Alerts)
	assert.Empty(t, result.AffectedReviews)
	assert.Contains(t, result.Recommendation, "NORMAL")
}

func TestDetectCrisisLevels(t *testing.T) {
	makeBatch := func(count int) []models.Mention {
		var mentions []models.Mention
		for i := 0; i < count; i++ {
			mentions = append(mentions, mentionWithContent(fmt.Sprintf("m-%d", i), "the app is not working"))
		}
		return mentions
	}

	tests := []struct {
		name           string
		signals        int
		expectedLevel  string
		recommendation string
	}{
		{name: "single signal is low", signals: 1, expectedLevel: models.CrisisLow, recommendation: "NORMAL"},
		{name: "two signals is medium", signals: 2, expectedLevel: models.CrisisMedium, recommendation: "MONITOR CLOSELY"},
		{name: "five signals is high", signals: 5, expectedLevel: models.CrisisHigh, recommendation: "URGENT"},
		{name: "ten signals is critical", signals: 10, expectedLevel: models.CrisisCritical, recommendation: "IMMEDIATE ACTION REQUIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectCrisis(makeBatch(tt.signals))

			assert.Equal(t, tt.expectedLevel, result.CrisisLevel)
			assert.Equal(t, tt.signals, result.TotalSignals)
			assert.Contains(t, result.Recommendation, tt.recommendation)
		})
	}
}

func TestDetectCrisisNonEmptyBatchNeverReportsNone(t *testing.T) {
	result := DetectCrisis([]models.Mention{mentionWithContent("m-1", "lovely ride, thanks")})

	assert.Equal(t, models.CrisisLow, result.CrisisLevel)
	assert.Equal(t, 0, result.TotalSignals)
}

func TestDetectCrisisOneSignalPerCategoryPerMention(t *testing.T) {
	// Two technical keywords in one mention count once for the
	// technical category; the payment keyword still counts separately.
	result := DetectCrisis([]models.Mention{
		mentionWithContent("m-1", "app crash, everything broken, and they charged me twice"),
	})

	assert.Equal(t, 2, result.TotalSignals)
	assert.Equal(t, 1, result.CategoryBreakdown["technical"])
	assert.Equal(t, 1, result.CategoryBreakdown["payment"])
}

func TestDetectCrisisAlerts(t *testing.T) {
	var mentions []models.Mention
	for i := 0; i < 5; i++ {
		mentions = append(mentions, mentionWithContent(fmt.Sprintf("t-%d", i), "keeps crashing with an error"))
	}
	for i := 0; i < 2; i++ {
		mentions = append(mentions, mentionWithContent(fmt.Sprintf("p-%d", i), "billing is wrong"))
	}
	mentions = append(mentions, mentionWithContent("s-1", "my account was hacked"))

	result := DetectCrisis(mentions)

	assert.Equal(t, 8, result.TotalSignals)
	assert.Equal(t, models.CrisisHigh, result.CrisisLevel)

	// Alerts only for categories with at least 2 signals; security has 1.
	assert.Len(t, result.Alerts, 2)

	technical := result.Alerts[0]
	assert.Equal(t, "technical", technical.Category)
	assert.Equal(t, "high", technical.Severity)
	assert.Equal(t, 5, technical.Count)
	assert.Equal(t, "Spike detected in technical issues: 5 mentions in recent reviews", technical.Message)

	payment := result.Alerts[1]
	assert.Equal(t, "payment", payment.Category)
	assert.Equal(t, "medium", payment.Severity)
	assert.Equal(t, 2, payment.Count)
}

func TestDetectCrisisScansTitle(t *testing.T) {
	// Review titles often carry the complaint while the body rambles.
	result := DetectCrisis([]models.Mention{
		{
			ExternalID: "m-1",
			Platform:   "app_store",
			Title:      "App is not working at all",
			Content:    "see title, gave up after three tries",
		},
	})

	assert.Equal(t, 1, result.TotalSignals)
	assert.Equal(t, 1, result.CategoryBreakdown["technical"])
	if assert.Len(t, result.AffectedReviews, 1) {
		assert.Equal(t, "not working", result.AffectedReviews[0].Keyword)
	}
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	// A two-byte rune straddling the limit must not be split.
	text := strings.Repeat("a", affectedSnippetLen-1) + "é and more"

	snippet := truncate(text, affectedSnippetLen)

	assert.True(t, utf8.ValidString(snippet))
	assert.True(t, strings.HasSuffix(snippet, "..."))
	assert.LessOrEqual(t, len(snippet), affectedSnippetLen+3)
}

func TestDetectCrisisAffectedReviewsCapped(t *testing.T) {
	var mentions []models.Mention
	for i := 0; i < 12; i++ {
		mentions = append(mentions, mentionWithContent(fmt.Sprintf("m-%d", i), "the app is not working"))
	}

	result := DetectCrisis(mentions)

	assert.Equal(t, models.CrisisCritical, result.CrisisLevel)
	assert.Len(t, result.AffectedReviews, 5)
	assert.Equal(t, "technical", result.AffectedReviews[0].Category)
	assert.Equal(t, "not working", result.AffectedReviews[0].Keyword)
}
