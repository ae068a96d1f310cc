package classify

import (
	"context"
	"time"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/sirupsen/logrus"
)

// SentimentStrategy is an optional higher-accuracy sentiment backend.
// Implementations may block on network I/O; callers bound them with a
// timeout and fall back to the local path on any failure.
type SentimentStrategy interface {
	Name() string
	AnalyzeSentiment(ctx context.Context, text string) (models.SentimentResult, error)
}

// Scorer scores sentiment, preferring the configured external
// strategy and degrading silently to the local rule-based path. A nil
// strategy means local-only.
type Scorer struct {
	strategy SentimentStrategy
	timeout  time.Duration
}

// NewScorer creates a sentiment scorer. timeout bounds each external
// call; it is ignored when strategy is nil.
func NewScorer(strategy SentimentStrategy, timeout time.Duration) *Scorer {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Scorer{strategy: strategy, timeout: timeout}
}

// Score returns a sentiment result for the text. This never fails: a
// strategy error is logged and the local path answers instead.
func (s *Scorer) Score(ctx context.Context, text string) models.SentimentResult {
	if s.strategy != nil {
		strategyCtx, cancel := context.WithTimeout(ctx, s.timeout)
		result, err := s.strategy.AnalyzeSentiment(strategyCtx, text)
		cancel()

		if err == nil {
			result.Polarity = clamp(result.Polarity, -1, 1)
			result.Confidence = clamp(result.Confidence, 0, 1)
			result.Subjectivity = clamp(result.Subjectivity, 0, 1)
			if result.Label == "" {
				result.Label = sentimentLabel(result.Polarity)
			}
			return result
		}
		logrus.Debugf("Sentiment strategy %s failed, using local path: %v", s.strategy.Name(), err)
	}

	return ScoreSentiment(text)
}
