package classify

import (
	"strings"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
	"github.com/brandpulse/reputation-bot/internal/models"
)

// ClassifyIntent maps text to an intent category by keyword-overlap
// scoring. Categories are scored in declaration order, so equal hit
// counts resolve to the earlier (more operationally urgent) category:
// complaint > question > recommendation > neutral_mention.
func ClassifyIntent(text string) models.IntentResult {
	lower := strings.ToLower(text)

	bestScore := 0
	var bestCategory lexicon.IntentCategory

	for _, category := range lexicon.IntentCategories {
		score := 0
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestCategory = category
		}
	}

	if bestScore == 0 {
		return models.IntentResult{
			Intent:          models.IntentNeutralMention,
			Confidence:      0.5,
			KeywordsMatched: []string{},
		}
	}

	matched := make([]string, 0, bestScore)
	for _, keyword := range bestCategory.Keywords {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}

	confidence := float64(bestScore) / 3
	if confidence > 1 {
		confidence = 1
	}

	return models.IntentResult{
		Intent:          bestCategory.Name,
		Confidence:      confidence,
		KeywordsMatched: matched,
	}
}
