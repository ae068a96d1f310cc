package analysis

import (
	"sort"
	"strings"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
	"github.com/brandpulse/reputation-bot/internal/models"
)

// AnalyzeTopicTrends compares topic activity between the current and
// previous mention batches across the dashboard taxonomy. Topics with
// no current mentions are dropped; the rest come back ordered most
// concerning first.
func AnalyzeTopicTrends(current, previous []models.Mention) []models.TopicTrend {
	trends := []models.TopicTrend{}

	for _, topic := range lexicon.DashboardTopics {
		matched := matchTopic(current, topic)
		if len(matched) == 0 {
			continue
		}
		previousCount := len(matchTopic(previous, topic))

		var positive, negative, neutral int
		for _, mention := range matched {
			switch mention.Classification.SentimentLabel {
			case models.SentimentPositive:
				positive++
			case models.SentimentNegative:
				negative++
			default:
				neutral++
			}
		}

		total := float64(len(matched))
		sentimentScore := (float64(positive) - float64(negative)) / total * 100
		trendPercent := trendPercent(len(matched), previousCount)

		trends = append(trends, models.TopicTrend{
			Topic:            topic.Name,
			Mentions:         len(matched),
			PreviousMentions: previousCount,
			SentimentScore:   sentimentScore,
			TrendPercent:     trendPercent,
			Priority:         topicPriority(sentimentScore, trendPercent, len(matched)),
			Positive:         positive,
			Negative:         negative,
			Neutral:          neutral,
		})
	}

	sort.SliceStable(trends, func(i, j int) bool {
		if trends[i].Priority != trends[j].Priority {
			return trends[i].Priority > trends[j].Priority
		}
		return trends[i].Mentions > trends[j].Mentions
	})
	return trends
}

// matchTopic returns classified mentions touching the topic, matching
// keywords against the raw content and against the stored topic and
// keyword tags from classification.
func matchTopic(mentions []models.Mention, topic lexicon.TopicGroup) []models.Mention {
	var matched []models.Mention
	for _, mention := range mentions {
		if mention.Classification == nil {
			continue
		}
		if mentionMatchesTopic(mention, topic) {
			matched = append(matched, mention)
		}
	}
	return matched
}

func mentionMatchesTopic(mention models.Mention, topic lexicon.TopicGroup) bool {
	lower := strings.ToLower(mention.Content)
	for _, keyword := range topic.Keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
		for _, tag := range mention.Classification.Topics {
			if strings.Contains(strings.ToLower(tag), keyword) {
				return true
			}
		}
		for _, matched := range mention.Classification.KeywordsMatched {
			if strings.Contains(strings.ToLower(matched), keyword) {
				return true
			}
		}
	}
	return false
}

// trendPercent computes the period-over-period change with damping
// for tiny baselines: a topic growing from 1 to 10 mentions is capped
// at +300% instead of the raw +900%, and a cold start reports a flat
// +100% instead of infinity.
func trendPercent(current, previous int) float64 {
	switch {
	case previous == 0 && current == 0:
		return 0
	case previous == 0:
		return 100
	case current == 0:
		return -100
	}

	raw := (float64(current) - float64(previous)) / float64(previous) * 100

	if previous <= 3 {
		if float64(current) > 3*float64(previous) {
			if raw > 300 {
				return 300
			}
			return raw
		}
		if float64(current) < float64(previous)/3 {
			if raw < -75 {
				return -75
			}
			return raw
		}
		return raw
	}

	if raw > 500 {
		return 500
	}
	if raw < -100 {
		return -100
	}
	return raw
}

// topicPriority scores how much attention a topic row deserves:
// negative sentiment, sharp decline and high volume all add points.
func topicPriority(sentimentScore, trendPercent float64, mentions int) int {
	priority := 0

	if sentimentScore < -20 {
		priority += 3
	} else if sentimentScore < 0 {
		priority++
	}

	if trendPercent < -20 {
		priority += 2
	} else if trendPercent > 50 {
		priority++
	}

	if mentions > 20 {
		priority += 2
	} else if mentions > 10 {
		priority++
	}

	return priority
}
