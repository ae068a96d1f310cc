package classify

import (
	"context"
	"strings"
	"sync"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	maxStoredKeywords = 7
	maxStoredTopics   = 4
)

// Classifier runs the full per-mention pipeline: sentiment, intent,
// priority, keywords and topics. It holds only read-only lexicon
// state, so one instance is safe for concurrent use.
type Classifier struct {
	scorer  *Scorer
	workers int
}

// BatchResult reports how a batch run went. A batch never fails
// atomically: classified mentions are kept even when others were
// skipped.
type BatchResult struct {
	Classified int `json:"classified"`
	Skipped    int `json:"skipped"`
}

// NewClassifier creates a classifier. workers bounds batch
// parallelism; values below 1 fall back to 4.
func NewClassifier(scorer *Scorer, workers int) *Classifier {
	if workers < 1 {
		workers = 4
	}
	return &Classifier{scorer: scorer, workers: workers}
}

// ClassifyMention populates the mention's classification fields.
// Returns false when the mention has no usable content; the mention
// is then left unprocessed. Re-running on unchanged text overwrites
// the previous classification with identical results.
func (c *Classifier) ClassifyMention(ctx context.Context, mention *models.Mention) bool {
	content := strings.TrimSpace(mention.Content)
	if content == "" {
		return false
	}

	sentiment := c.scorer.Score(ctx, content)
	intent := ClassifyIntent(content)
	priority := RankPriority(sentiment, intent, content)

	confidence := sentiment.Confidence
	if intent.Confidence < confidence {
		confidence = intent.Confidence
	}

	keywords := ExtractKeywords(content)
	if len(keywords) > maxStoredKeywords {
		keywords = keywords[:maxStoredKeywords]
	}
	topics := ExtractTopics(content)
	if len(topics) > maxStoredTopics {
		topics = topics[:maxStoredTopics]
	}

	mention.Classification = &models.Classification{
		SentimentLabel:    sentiment.Label,
		SentimentPolarity: clamp(sentiment.Polarity, -1, 1),
		Intent:            intent.Intent,
		Priority:          priority,
		ConfidenceScore:   clamp(confidence, 0, 1),
		KeywordsMatched:   keywords,
		Topics:            topics,
	}
	return true
}

// ClassifyBatch classifies every mention in place using a bounded
// worker pool. Mentions are independent, so ordering within the batch
// does not matter; the call returns only after the whole batch is
// done, which keeps aggregation downstream on a consistent snapshot.
func (c *Classifier) ClassifyBatch(ctx context.Context, mentions []models.Mention) BatchResult {
	if len(mentions) == 0 {
		return BatchResult{}
	}

	jobs := make(chan int, len(mentions))
	results := make(chan bool, len(mentions))

	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- c.ClassifyMention(ctx, &mentions[i])
			}
		}()
	}

	for i := range mentions {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var result BatchResult
	for ok := range results {
		if ok {
			result.Classified++
		} else {
			result.Skipped++
		}
	}

	if result.Skipped > 0 {
		logrus.Infof("Classified %d mentions, skipped %d with empty content", result.Classified, result.Skipped)
	}
	return result
}
