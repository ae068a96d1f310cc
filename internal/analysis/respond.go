package analysis

import "github.com/brandpulse/reputation-bot/internal/models"

// BuildResponseSuggestion assembles the response input for one
// classified mention. The styled response text itself is written by an
// external consumer; this record tells it whether and how to respond.
func BuildResponseSuggestion(mention models.Mention) models.ResponseSuggestion {
	c := mention.Classification

	return models.ResponseSuggestion{
		Issue:            mention.Title,
		Intent:           c.Intent,
		Priority:         c.Priority,
		KeywordsMatched:  c.KeywordsMatched,
		ShouldRespond:    c.Priority == models.PriorityCritical || c.Priority == models.PriorityHigh,
		RecommendedStyle: recommendedStyle(c.Priority),
		ResponseType:     responseType(c.Intent, c.SentimentLabel),
		KeyPoints:        keyResponsePoints(c.Intent, c.Priority),
	}
}

func recommendedStyle(priority string) string {
	if priority == models.PriorityCritical {
		return "official"
	}
	return "friendly"
}

func responseType(intent, sentiment string) string {
	switch {
	case intent == models.IntentComplaint:
		return "apology_and_resolution"
	case intent == models.IntentQuestion:
		return "informational_assistance"
	case intent == models.IntentRecommendation && sentiment == models.SentimentPositive:
		return "gratitude_and_engagement"
	default:
		return "acknowledgment"
	}
}

func keyResponsePoints(intent, priority string) []string {
	var points []string

	switch intent {
	case models.IntentComplaint:
		points = append(points,
			"Acknowledge the issue",
			"Apologize for the inconvenience",
			"Offer a solution or next steps",
		)
	case models.IntentQuestion:
		points = append(points,
			"Provide helpful information",
			"Offer additional resources",
			"Invite further questions",
		)
	case models.IntentRecommendation:
		points = append(points,
			"Thank the user for feedback",
			"Consider implementing suggestion",
			"Keep user updated on progress",
		)
	}

	if priority == models.PriorityCritical {
		points = append(points, "Escalate to senior support team")
	}
	return points
}
