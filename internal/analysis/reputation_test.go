package analysis

import (
	"testing"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func classified(sentiment, intent, priority string, confidence float64) models.Mention {
	return models.Mention{
		Classification: &models.Classification{
			SentimentLabel:  sentiment,
			Intent:          intent,
			Priority:        priority,
			ConfidenceScore: confidence,
		},
	}
}

func TestScoreReputationEmptyBatch(t *testing.T) {
	assert.Equal(t, 50.0, ScoreReputation(nil))
	assert.Equal(t, 50.0, ScoreReputation([]models.Mention{{Content: "unclassified"}}))
}

func TestScoreReputationSingleMention(t *testing.T) {
	tests := []struct {
		name     string
		mention  models.Mention
		expected float64
	}{
		{
			name:     "positive mention scores 80",
			mention:  classified(models.SentimentPositive, models.IntentNeutralMention, models.PriorityLow, 0.5),
			expected: 80,
		},
		{
			name:     "negative mention scores 20",
			mention:  classified(models.SentimentNegative, models.IntentNeutralMention, models.PriorityLow, 0.5),
			expected: 20,
		},
		{
			name:     "neutral mention scores 50",
			mention:  classified(models.SentimentNeutral, models.IntentNeutralMention, models.PriorityMedium, 0.5),
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreReputation([]models.Mention{tt.mention}))
		})
	}
}

func TestScoreReputationWeighting(t *testing.T) {
	// Positive low-priority neutral mention: value 80, weight 1*1*0.5.
	// Negative critical complaint: value 20, weight 3*2*1.
	mentions := []models.Mention{
		classified(models.SentimentPositive, models.IntentNeutralMention, models.PriorityLow, 0.5),
		classified(models.SentimentNegative, models.IntentComplaint, models.PriorityCritical, 1.0),
	}

	score := ScoreReputation(mentions)

	assert.InDelta(t, 24.615, score, 0.01)
	assert.Less(t, score, 50.0)
}

func TestScoreReputationZeroConfidenceDefaults(t *testing.T) {
	withZero := ScoreReputation([]models.Mention{
		classified(models.SentimentPositive, models.IntentNeutralMention, models.PriorityLow, 0),
	})
	withDefault := ScoreReputation([]models.Mention{
		classified(models.SentimentPositive, models.IntentNeutralMention, models.PriorityLow, 0.5),
	})

	assert.Equal(t, withDefault, withZero)
}

func TestScoreComposite(t *testing.T) {
	neutral := []models.Mention{
		{Classification: &models.Classification{SentimentPolarity: 0}},
	}

	tests := []struct {
		name       string
		mentions   []models.Mention
		serp       []models.SERPResult
		issueCount int
		expected   float64
	}{
		{
			name:     "neutral batch with no serp and no issues",
			mentions: neutral,
			expected: 25 + 30 + 20,
		},
		{
			name:     "half the serp queries are negative",
			mentions: neutral,
			serp: []models.SERPResult{
				{Query: "ExampleRide complaints"},
				{Query: "ExampleRide reviews"},
			},
			expected: 25 + 15 + 20,
		},
		{
			name:       "issue penalty capped at 20",
			mentions:   neutral,
			issueCount: 15,
			expected:   25 + 30 + 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScoreComposite(tt.mentions, tt.serp, tt.issueCount), 0.001)
		})
	}
}

func TestMeanPolarity(t *testing.T) {
	mentions := []models.Mention{
		{Classification: &models.Classification{SentimentPolarity: 0.8}},
		{Classification: &models.Classification{SentimentPolarity: -0.4}},
		{Content: "unclassified is excluded"},
	}

	assert.InDelta(t, 0.2, MeanPolarity(mentions), 0.001)
	assert.Equal(t, 0.0, MeanPolarity(nil))
}

func TestCompareScores(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		expectedChange    float64
		expectedDirection string
	}{
		{name: "increase", current: 60, previous: 50, expectedChange: 20, expectedDirection: "increase"},
		{name: "decrease", current: 40, previous: 50, expectedChange: -20, expectedDirection: "decrease"},
		{name: "flat", current: 50, previous: 50, expectedChange: 0, expectedDirection: "no_change"},
		{name: "no baseline", current: 75, previous: 0, expectedChange: 0, expectedDirection: "no_change"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := CompareScores(tt.current, tt.previous)

			assert.Equal(t, tt.current, trend.CurrentScore)
			assert.Equal(t, tt.previous, trend.PreviousScore)
			assert.InDelta(t, tt.expectedChange, trend.PercentageChange, 0.001)
			assert.Equal(t, tt.expectedDirection, trend.Direction)
		})
	}
}
