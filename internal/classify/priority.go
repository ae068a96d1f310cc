package classify

import (
	"strings"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
	"github.com/brandpulse/reputation-bot/internal/models"
)

// RankPriority assigns the 4-tier operational priority. The cascade
// is evaluated top to bottom and the first match wins, so a critical
// keyword hit beats any sentiment-only rule.
func RankPriority(sentiment models.SentimentResult, intent models.IntentResult, text string) string {
	lower := strings.ToLower(text)

	if (sentiment.Label == models.SentimentNegative && sentiment.Confidence > 0.8) ||
		(intent.Intent == models.IntentComplaint && intent.Confidence > 0.8) ||
		containsAny(lower, lexicon.CriticalPriorityKeywords) {
		return models.PriorityCritical
	}

	if (sentiment.Label == models.SentimentNegative && sentiment.Confidence > 0.6) ||
		intent.Intent == models.IntentComplaint ||
		containsAny(lower, lexicon.HighPriorityKeywords) {
		return models.PriorityHigh
	}

	if intent.Intent == models.IntentQuestion || sentiment.Label == models.SentimentNeutral {
		return models.PriorityMedium
	}

	return models.PriorityLow
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
