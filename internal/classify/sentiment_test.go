package classify

import (
	"testing"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestScoreSentiment(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedLabel string
	}{
		{
			name:          "clearly positive review",
			text:          "The app is amazing and so fast!",
			expectedLabel: models.SentimentPositive,
		},
		{
			name:          "clearly negative review",
			text:          "App crashed during checkout, this is a scam, I want a refund!",
			expectedLabel: models.SentimentNegative,
		},
		{
			name:          "no sentiment words",
			text:          "I ordered a ride yesterday afternoon",
			expectedLabel: models.SentimentNeutral,
		},
		{
			name:          "negated positive word",
			text:          "The support was not good",
			expectedLabel: models.SentimentNegative,
		},
		{
			name:          "alternative seeking flips mild praise",
			text:          "Service is fine but I am looking for alternatives to ExampleRide",
			expectedLabel: models.SentimentNegative,
		},
		{
			name:          "empty text",
			text:          "",
			expectedLabel: models.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreSentiment(tt.text)

			assert.Equal(t, tt.expectedLabel, result.Label)
			assert.Equal(t, MethodLexiconRules, result.Method)
			assert.GreaterOrEqual(t, result.Polarity, -1.0)
			assert.LessOrEqual(t, result.Polarity, 1.0)
			assert.GreaterOrEqual(t, result.Subjectivity, 0.0)
			assert.LessOrEqual(t, result.Subjectivity, 1.0)
			assert.Equal(t, 0.5, result.Confidence)
		})
	}
}

func TestScoreSentimentPositiveReinforcement(t *testing.T) {
	// base: (amazing 0.8 + fast 0.4)/2 = 0.6, then +0.3 for "amazing"
	result := ScoreSentiment("The app is amazing and so fast!")

	assert.InDelta(t, 0.9, result.Polarity, 0.001)
	assert.Equal(t, models.SentimentPositive, result.Label)
}

func TestScoreSentimentConditionalDissatisfaction(t *testing.T) {
	// base 0.3 ("fine"), -0.4 for "alternatives to", -0.2 for "fine but"
	result := ScoreSentiment("Service is fine but I am looking for alternatives to ExampleRide")

	assert.InDelta(t, -0.3, result.Polarity, 0.001)
	assert.Equal(t, models.SentimentNegative, result.Label)
}

func TestScoreSentimentReinforcementSkippedWhenBaseNegative(t *testing.T) {
	// "amazing" appears, but the base estimate is negative, so the
	// positive reinforcement bucket must not fire.
	withPraise := ScoreSentiment("amazing how terrible and broken this app is")

	assert.Equal(t, models.SentimentNegative, withPraise.Label)
}

func TestScoreSentimentClampsToRange(t *testing.T) {
	result := ScoreSentiment("terrible awful horrible worst")

	assert.Equal(t, -1.0, result.Polarity)
	assert.Equal(t, models.SentimentNegative, result.Label)
}

func TestScoreSentimentDeterministic(t *testing.T) {
	text := "App crashed again, terrible support and billing problems"

	first := ScoreSentiment(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreSentiment(text))
	}
}
