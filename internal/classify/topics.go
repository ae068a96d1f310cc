package classify

import (
	"strings"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
)

const maxKeywords = 10

// ExtractKeywords returns product-vocabulary terms found in the text,
// in vocabulary order, capped at 10.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0, maxKeywords)
	for _, keyword := range lexicon.ProductVocabulary {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
			if len(found) == maxKeywords {
				break
			}
		}
	}
	return found
}

// ExtractTopics tags the text with zero or more topics from the
// per-mention taxonomy. A mention may carry multiple topics.
func ExtractTopics(text string) []string {
	lower := strings.ToLower(text)

	var topics []string
	for _, group := range lexicon.MentionTopics {
		for _, keyword := range group.Keywords {
			if strings.Contains(lower, keyword) {
				topics = append(topics, group.Name)
				break
			}
		}
	}
	return topics
}
