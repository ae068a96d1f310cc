package analysis

import (
	"strings"

	"github.com/brandpulse/reputation-bot/internal/models"
)

const (
	neutralScore      = 50.0
	defaultConfidence = 0.5
)

var negativeSerpTerms = []string{"complaint", "problem", "lawsuit", "scandal"}

// ScoreReputation computes the 0-100 weighted reputation score from
// classified mentions. Higher-priority and complaint mentions weigh
// more, scaled by classification confidence, so ten confident critical
// complaints drag the score further than ten low-confidence neutral
// mentions lift it. An empty or wholly unclassified batch scores a
// neutral 50.
func ScoreReputation(mentions []models.Mention) float64 {
	var weightedSum, totalWeight float64

	for _, mention := range mentions {
		c := mention.Classification
		if c == nil {
			continue
		}

		value := neutralScore
		switch c.SentimentLabel {
		case models.SentimentPositive:
			value = 80
		case models.SentimentNegative:
			value = 20
		}

		confidence := c.ConfidenceScore
		if confidence <= 0 {
			confidence = defaultConfidence
		}

		weight := priorityWeight(c.Priority) * intentModifier(c.Intent) * confidence
		weightedSum += value * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return neutralScore
	}
	return clampScore(weightedSum / totalWeight)
}

// ScoreComposite blends mention sentiment, search-result tone and the
// issue count into an alternative 0-100 score. Used by the snapshot
// builder when SERP data is available.
func ScoreComposite(mentions []models.Mention, serp []models.SERPResult, issueCount int) float64 {
	sentimentPart := (MeanPolarity(mentions) + 1) * 25

	serpPart := 30.0
	if len(serp) > 0 {
		negative := 0
		for _, item := range serp {
			query := strings.ToLower(item.Query)
			for _, term := range negativeSerpTerms {
				if strings.Contains(query, term) {
					negative++
					break
				}
			}
		}
		serpPart = 30 * (1 - float64(negative)/float64(len(serp)))
	}

	penalty := float64(2 * issueCount)
	if penalty > 20 {
		penalty = 20
	}

	return clampScore(sentimentPart + serpPart + (20 - penalty))
}

// MeanPolarity returns the average sentiment polarity of the
// classified mentions, 0 when none are classified.
func MeanPolarity(mentions []models.Mention) float64 {
	var sum float64
	count := 0
	for _, mention := range mentions {
		if mention.Classification != nil {
			sum += mention.Classification.SentimentPolarity
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// CompareScores builds the period-over-period trend. A non-positive
// previous score has no meaningful baseline, so the change reports as
// zero rather than a division artifact.
func CompareScores(current, previous float64) models.TrendComparison {
	trend := models.TrendComparison{
		CurrentScore:  current,
		PreviousScore: previous,
		Direction:     "no_change",
	}

	if previous > 0 {
		trend.PercentageChange = (current - previous) / previous * 100
		if trend.PercentageChange > 0 {
			trend.Direction = "increase"
		} else if trend.PercentageChange < 0 {
			trend.Direction = "decrease"
		}
	}
	return trend
}

func priorityWeight(priority string) float64 {
	switch priority {
	case models.PriorityCritical:
		return 3.0
	case models.PriorityHigh:
		return 2.0
	case models.PriorityMedium:
		return 1.5
	default:
		return 1.0
	}
}

func intentModifier(intent string) float64 {
	switch intent {
	case models.IntentComplaint:
		return 2.0
	case models.IntentRecommendation:
		return 1.5
	default:
		return 1.0
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
