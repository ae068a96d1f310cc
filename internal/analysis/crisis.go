package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
	"github.com/brandpulse/reputation-bot/internal/models"
)

const (
	maxAffectedReviews  = 5
	alertCategoryFloor  = 2
	alertHighSeverity   = 5
	crisisMediumSignals = 2
	crisisHighSignals   = 5
	crisisCriticalCount = 10
	affectedSnippetLen  = 100
)

// DetectCrisis scans a mention batch for early-warning signals. Both
// content and title are searched. Each mention contributes at most one
// signal per category: the first matching keyword counts, further
// keywords in the same category do not. The crisis level follows total
// signals across all categories.
func DetectCrisis(mentions []models.Mention) models.CrisisSnapshot {
	if len(mentions) == 0 {
		return models.CrisisSnapshot{
			CrisisLevel:       models.CrisisNone,
			CategoryBreakdown: map[string]int{},
			Alerts:            []models.CrisisAlert{},
			AffectedReviews:   []models.AffectedReview{},
			Recommendation:    crisisRecommendation(models.CrisisNone),
		}
	}

	breakdown := make(map[string]int, len(lexicon.CrisisCategories))
	var affected []models.AffectedReview
	totalSignals := 0

	for _, mention := range mentions {
		lower := strings.ToLower(mention.Content + " " + mention.Title)

		for _, category := range lexicon.CrisisCategories {
			for _, keyword := range category.Keywords {
				if !strings.Contains(lower, keyword) {
					continue
				}
				breakdown[category.Name]++
				totalSignals++

				if len(affected) < maxAffectedReviews {
					affected = append(affected, models.AffectedReview{
						MentionID: mention.ExternalID,
						Platform:  mention.Platform,
						Category:  category.Name,
						Keyword:   keyword,
						Snippet:   truncate(mention.Content, affectedSnippetLen),
					})
				}
				break
			}
		}
	}

	level := crisisLevel(totalSignals)

	alerts := []models.CrisisAlert{}
	for _, category := range lexicon.CrisisCategories {
		count := breakdown[category.Name]
		if count < alertCategoryFloor {
			continue
		}
		severity := "medium"
		if count >= alertHighSeverity {
			severity = "high"
		}
		alerts = append(alerts, models.CrisisAlert{
			Category: category.Name,
			Severity: severity,
			Count:    count,
			Message:  fmt.Sprintf("Spike detected in %s issues: %d mentions in recent reviews", category.Name, count),
		})
	}

	if affected == nil {
		affected = []models.AffectedReview{}
	}

	return models.CrisisSnapshot{
		CrisisLevel:       level,
		TotalSignals:      totalSignals,
		CategoryBreakdown: breakdown,
		Alerts:            alerts,
		AffectedReviews:   affected,
		Recommendation:    crisisRecommendation(level),
	}
}

// crisisLevel maps the signal total onto the 4-tier scale. A non-empty
// batch never reports "none"; zero signals still warrant the low tier.
func crisisLevel(totalSignals int) string {
	switch {
	case totalSignals >= crisisCriticalCount:
		return models.CrisisCritical
	case totalSignals >= crisisHighSignals:
		return models.CrisisHigh
	case totalSignals >= crisisMediumSignals:
		return models.CrisisMedium
	default:
		return models.CrisisLow
	}
}

func crisisRecommendation(level string) string {
	switch level {
	case models.CrisisCritical:
		return "IMMEDIATE ACTION REQUIRED: Contact crisis management team and prepare public statement"
	case models.CrisisHigh:
		return "URGENT: Escalate to management and prepare response strategy"
	case models.CrisisMedium:
		return "MONITOR CLOSELY: Increase response frequency and track trends"
	default:
		return "NORMAL: Continue standard monitoring and response procedures"
	}
}

// truncate cuts text to at most limit bytes without splitting a rune.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
