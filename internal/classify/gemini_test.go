package classify

import (
	"context"
	"testing"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseSentimentJSON(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		expectError bool
		expected    geminiSentiment
	}{
		{
			name:  "plain JSON object",
			reply: `{"sentiment": "negative", "confidence": 0.85, "polarity": -0.6, "reasoning": "complaint about billing"}`,
			expected: geminiSentiment{
				Sentiment:  models.SentimentNegative,
				Confidence: 0.85,
				Polarity:   -0.6,
				Reasoning:  "complaint about billing",
			},
		},
		{
			name:  "fenced code block",
			reply: "```json\n{\"sentiment\": \"positive\", \"confidence\": 0.9, \"polarity\": 0.8, \"reasoning\": \"praise\"}\n```",
			expected: geminiSentiment{
				Sentiment:  models.SentimentPositive,
				Confidence: 0.9,
				Polarity:   0.8,
				Reasoning:  "praise",
			},
		},
		{
			name:        "no JSON object",
			reply:       "I could not analyze that text.",
			expectError: true,
		},
		{
			name:        "unknown sentiment value",
			reply:       `{"sentiment": "mixed", "confidence": 0.5, "polarity": 0.0}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			reply:       `{"sentiment": "positive", "confidence":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseSentimentJSON(tt.reply)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestGeminiStrategyRequiresAPIKey(t *testing.T) {
	strategy := NewGeminiStrategy("", "", 10)

	_, err := strategy.AnalyzeSentiment(context.Background(), "some text")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewGeminiStrategyDefaults(t *testing.T) {
	strategy := NewGeminiStrategy("key", "", 0)

	assert.Equal(t, "gemini-2.5-flash", strategy.model)
	assert.Equal(t, defaultGeminiBaseURL, strategy.baseURL)
	assert.Equal(t, "gemini", strategy.Name())
}
