package classify

import (
	"regexp"
	"strings"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
	"github.com/brandpulse/reputation-bot/internal/models"
)

const (
	// MethodLexiconRules identifies the local deterministic path.
	MethodLexiconRules = "lexicon_rules"

	// localConfidence is the confidence carried by the local path; the
	// rule cascade has no per-text confidence estimate of its own.
	localConfidence = 0.5
)

var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

// ScoreSentiment runs the local rule-based sentiment path: a graded
// lexicon estimate adjusted by the contextual pattern cascade. It is
// deterministic and never fails.
func ScoreSentiment(text string) models.SentimentResult {
	lower := strings.ToLower(text)

	base, subjectivity := baseEstimate(lower)
	adjusted := applyAdjustments(lower, base)

	return models.SentimentResult{
		Polarity:     clamp(adjusted, -1, 1),
		Label:        sentimentLabel(adjusted),
		Subjectivity: clamp(subjectivity, 0, 1),
		Confidence:   localConfidence,
		Method:       MethodLexiconRules,
	}
}

// baseEstimate averages graded lexicon weights over the matched
// words, flipping (and damping) the weight of a negated word. This is
// deliberately plain; the adjustment cascade carries the domain
// knowledge.
func baseEstimate(lower string) (polarity, subjectivity float64) {
	words := wordPattern.FindAllString(lower, -1)

	var sum, sumAbs float64
	matched := 0

	for i, word := range words {
		weight, ok := lexicon.Polarity[word]
		if !ok {
			continue
		}
		if i > 0 && lexicon.Negations[words[i-1]] {
			weight = -weight * 0.5
		}
		sum += weight
		sumAbs += abs(weight)
		matched++
	}

	if matched == 0 {
		return 0, 0
	}
	return sum / float64(matched), sumAbs / float64(matched) * 1.25
}

// applyAdjustments applies the three contextual rule buckets in
// order. Dissatisfaction and negative reinforcement always apply;
// positive reinforcement only amplifies an already-positive base.
func applyAdjustments(lower string, base float64) float64 {
	adjusted := base

	for _, rule := range lexicon.DissatisfactionRules {
		if rule.Pattern.MatchString(lower) {
			adjusted += rule.Delta
		}
	}

	if base > 0 {
		for _, rule := range lexicon.PositiveReinforcementRules {
			if rule.Pattern.MatchString(lower) {
				adjusted += rule.Delta
			}
		}
	}

	for _, rule := range lexicon.NegativeReinforcementRules {
		if rule.Pattern.MatchString(lower) {
			adjusted += rule.Delta
		}
	}

	return adjusted
}

func sentimentLabel(polarity float64) string {
	switch {
	case polarity > 0.05:
		return models.SentimentPositive
	case polarity < -0.05:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
