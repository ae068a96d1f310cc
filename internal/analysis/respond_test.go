package analysis

import (
	"testing"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildResponseSuggestion(t *testing.T) {
	tests := []struct {
		name             string
		intent           string
		sentiment        string
		priority         string
		expectedRespond  bool
		expectedStyle    string
		expectedType     string
		expectedKeyCount int
	}{
		{
			name:             "critical complaint",
			intent:           models.IntentComplaint,
			sentiment:        models.SentimentNegative,
			priority:         models.PriorityCritical,
			expectedRespond:  true,
			expectedStyle:    "official",
			expectedType:     "apology_and_resolution",
			expectedKeyCount: 4,
		},
		{
			name:             "high priority complaint",
			intent:           models.IntentComplaint,
			sentiment:        models.SentimentNegative,
			priority:         models.PriorityHigh,
			expectedRespond:  true,
			expectedStyle:    "friendly",
			expectedType:     "apology_and_resolution",
			expectedKeyCount: 3,
		},
		{
			name:             "medium priority question",
			intent:           models.IntentQuestion,
			sentiment:        models.SentimentNeutral,
			priority:         models.PriorityMedium,
			expectedRespond:  false,
			expectedStyle:    "friendly",
			expectedType:     "informational_assistance",
			expectedKeyCount: 3,
		},
		{
			name:             "positive recommendation",
			intent:           models.IntentRecommendation,
			sentiment:        models.SentimentPositive,
			priority:         models.PriorityLow,
			expectedRespond:  false,
			expectedStyle:    "friendly",
			expectedType:     "gratitude_and_engagement",
			expectedKeyCount: 3,
		},
		{
			name:             "negative recommendation is acknowledged",
			intent:           models.IntentRecommendation,
			sentiment:        models.SentimentNegative,
			priority:         models.PriorityLow,
			expectedRespond:  false,
			expectedStyle:    "friendly",
			expectedType:     "acknowledgment",
			expectedKeyCount: 3,
		},
		{
			name:             "neutral mention",
			intent:           models.IntentNeutralMention,
			sentiment:        models.SentimentNeutral,
			priority:         models.PriorityMedium,
			expectedRespond:  false,
			expectedStyle:    "friendly",
			expectedType:     "acknowledgment",
			expectedKeyCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mention := models.Mention{
				Title: "Checkout broken",
				Classification: &models.Classification{
					Intent:          tt.intent,
					SentimentLabel:  tt.sentiment,
					Priority:        tt.priority,
					KeywordsMatched: []string{"billing"},
				},
			}

			suggestion := BuildResponseSuggestion(mention)

			assert.Equal(t, "Checkout broken", suggestion.Issue)
			assert.Equal(t, tt.intent, suggestion.Intent)
			assert.Equal(t, tt.priority, suggestion.Priority)
			assert.Equal(t, []string{"billing"}, suggestion.KeywordsMatched)
			assert.Equal(t, tt.expectedRespond, suggestion.ShouldRespond)
			assert.Equal(t, tt.expectedStyle, suggestion.RecommendedStyle)
			assert.Equal(t, tt.expectedType, suggestion.ResponseType)
			assert.Len(t, suggestion.KeyPoints, tt.expectedKeyCount)
		})
	}
}

func TestBuildResponseSuggestionCriticalAddsEscalation(t *testing.T) {
	mention := models.Mention{
		Classification: &models.Classification{
			Intent:         models.IntentComplaint,
			SentimentLabel: models.SentimentNegative,
			Priority:       models.PriorityCritical,
		},
	}

	suggestion := BuildResponseSuggestion(mention)

	assert.Contains(t, suggestion.KeyPoints, "Escalate to senior support team")
}
