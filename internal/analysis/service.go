package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const (
	maxSnapshotInsights  = 10
	maxResponseInputs    = 10
	maxCitationSamples   = 2
	citationSnippetLen   = 100
	complaintRatioAlert  = 0.4
	topIssueInsightCount = 3
)

// Analyzer assembles reputation snapshots. It keeps the most recent
// snapshot and mention batch per product in memory so the next run can
// compute trends without a storage round-trip; the persisted snapshot
// remains the durable baseline.
type Analyzer struct {
	logger    *logrus.Logger
	snapshots *cache.Cache
	batches   *cache.Cache
}

// NewAnalyzer creates an analyzer. Cached baselines expire after 30
// days; a product not analyzed for that long starts cold again.
func NewAnalyzer(logger *logrus.Logger) *Analyzer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Analyzer{
		logger:    logger,
		snapshots: cache.New(30*24*time.Hour, time.Hour),
		batches:   cache.New(30*24*time.Hour, time.Hour),
	}
}

// SeedBaseline primes the trend baseline for a product, typically from
// a snapshot loaded out of storage at startup.
func (a *Analyzer) SeedBaseline(product string, snapshot *models.ReputationSnapshot, mentions []models.Mention) {
	if snapshot != nil {
		a.snapshots.Set(product, snapshot, cache.DefaultExpiration)
	}
	if mentions != nil {
		a.batches.Set(product, mentions, cache.DefaultExpiration)
	}
}

// BuildSnapshot runs the full analysis over one classified batch and
// returns the scored snapshot. The input mentions must already be
// classified; unclassified entries are counted but excluded from every
// aggregate. The new snapshot replaces the cached baseline, so calling
// twice with the same batch yields a flat trend the second time.
func (a *Analyzer) BuildSnapshot(product string, mentions []models.Mention, serp []models.SERPResult, skipped int) *models.ReputationSnapshot {
	issues := IdentifyIssues(mentions, serp)
	crisis := DetectCrisis(mentions)

	overall := ScoreReputation(mentions)
	if len(serp) > 0 {
		overall = ScoreComposite(mentions, serp, len(issues))
	}

	snapshot := &models.ReputationSnapshot{
		Product:         product,
		GeneratedAt:     time.Now().UTC(),
		OverallScore:    overall,
		SentimentScore:  MeanPolarity(mentions),
		IntentBreakdown: intentBreakdown(mentions),
		Issues:          issues,
		Crisis:          crisis,
		TotalMentions:   len(mentions),
		SkippedMentions: skipped,
	}

	if previous, ok := a.snapshots.Get(product); ok {
		trend := CompareScores(overall, previous.(*models.ReputationSnapshot).OverallScore)
		snapshot.Trend = &trend
	}
	previousBatch := []models.Mention{}
	if cached, ok := a.batches.Get(product); ok {
		previousBatch = cached.([]models.Mention)
	}
	snapshot.Topics = AnalyzeTopicTrends(mentions, previousBatch)

	snapshot.DataCitations = buildDataCitations(mentions, serp)
	snapshot.ActionableInsights = buildActionableInsights(snapshot)
	snapshot.ResponseInputs = buildResponseInputs(mentions)
	snapshot.Interpretation = interpretScore(overall)

	a.snapshots.Set(product, snapshot, cache.DefaultExpiration)
	a.batches.Set(product, mentions, cache.DefaultExpiration)

	a.logger.WithFields(logrus.Fields{
		"product":       product,
		"overall_score": overall,
		"mentions":      len(mentions),
		"issues":        len(issues),
		"crisis_level":  crisis.CrisisLevel,
	}).Info("Reputation snapshot generated")

	return snapshot
}

func intentBreakdown(mentions []models.Mention) map[string]int {
	breakdown := map[string]int{}
	for _, mention := range mentions {
		if mention.Classification != nil {
			breakdown[mention.Classification.Intent]++
		}
	}
	return breakdown
}

// buildDataCitations records where the analysis input came from: one
// citation per platform with a couple of sample snippets, plus one for
// the search results with the distinct queries used.
func buildDataCitations(mentions []models.Mention, serp []models.SERPResult) []models.DataCitation {
	citations := []models.DataCitation{}

	byPlatform := map[string][]models.Mention{}
	var platforms []string
	for _, mention := range mentions {
		if _, seen := byPlatform[mention.Platform]; !seen {
			platforms = append(platforms, mention.Platform)
		}
		byPlatform[mention.Platform] = append(byPlatform[mention.Platform], mention)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		group := byPlatform[platform]
		samples := []string{}
		for _, mention := range group {
			samples = append(samples, truncate(mention.Content, citationSnippetLen))
			if len(samples) == maxCitationSamples {
				break
			}
		}
		citations = append(citations, models.DataCitation{
			SourceType:  "app_reviews",
			Platform:    platform,
			SampleCount: len(group),
			Samples:     samples,
		})
	}

	if len(serp) > 0 {
		seen := map[string]bool{}
		var queries []string
		for _, item := range serp {
			if item.Query != "" && !seen[item.Query] {
				seen[item.Query] = true
				queries = append(queries, item.Query)
			}
		}
		citations = append(citations, models.DataCitation{
			SourceType:  "search_results",
			SampleCount: len(serp),
			Queries:     queries,
		})
	}

	return citations
}

func buildActionableInsights(snapshot *models.ReputationSnapshot) []models.ActionableInsight {
	insights := []models.ActionableInsight{}

	if snapshot.Crisis.CrisisLevel == models.CrisisHigh || snapshot.Crisis.CrisisLevel == models.CrisisCritical {
		insights = append(insights, models.ActionableInsight{
			Category: "immediate_action",
			Priority: models.PriorityCritical,
			Insight:  fmt.Sprintf("Crisis level detected: %s", snapshot.Crisis.CrisisLevel),
			Action:   snapshot.Crisis.Recommendation,
			Timeline: "Immediate",
			Team:     "Crisis Management",
		})
	}

	total := 0
	for _, count := range snapshot.IntentBreakdown {
		total += count
	}
	if total > 0 {
		ratio := float64(snapshot.IntentBreakdown[models.IntentComplaint]) / float64(total)
		if ratio > complaintRatioAlert {
			insights = append(insights, models.ActionableInsight{
				Category: "customer_satisfaction",
				Priority: models.PriorityHigh,
				Insight:  fmt.Sprintf("%.1f%% of feedback consists of complaints", ratio*100),
				Action:   "Implement proactive customer outreach and issue resolution process",
				Timeline: "1-2 weeks",
				Team:     "Customer Success",
			})
		}
	}

	for i, issue := range snapshot.Issues {
		if i == topIssueInsightCount {
			break
		}
		timeline := "1-2 months"
		if issue.Priority == models.PriorityHigh {
			timeline = "2-4 weeks"
		}
		team := "Support Team"
		if issue.Type == IssueProduct {
			team = "Product Team"
		}
		insights = append(insights, models.ActionableInsight{
			Category: "product_improvement",
			Priority: issue.Priority,
			Insight:  issue.ActionableInsight,
			Action:   fmt.Sprintf("Address '%s' mentioned %d times", issue.Title, issue.Frequency),
			Timeline: timeline,
			Team:     team,
		})
	}

	if len(insights) > maxSnapshotInsights {
		insights = insights[:maxSnapshotInsights]
	}
	return insights
}

// buildResponseInputs collects response suggestions for the mentions
// that warrant a reply, most urgent first.
func buildResponseInputs(mentions []models.Mention) []models.ResponseSuggestion {
	var urgent []models.ResponseSuggestion
	for _, mention := range mentions {
		c := mention.Classification
		if c == nil {
			continue
		}
		if c.Priority == models.PriorityCritical || c.Priority == models.PriorityHigh {
			urgent = append(urgent, BuildResponseSuggestion(mention))
		}
	}

	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].Priority == models.PriorityCritical && urgent[j].Priority != models.PriorityCritical
	})

	if len(urgent) > maxResponseInputs {
		urgent = urgent[:maxResponseInputs]
	}
	return urgent
}

func interpretScore(score float64) models.ScoreInterpretation {
	switch {
	case score >= 80:
		return models.ScoreInterpretation{
			Status:      "excellent",
			Description: "Strong positive reputation",
			Action:      "maintain current practices",
		}
	case score >= 60:
		return models.ScoreInterpretation{
			Status:      "good",
			Description: "Generally positive with improvement opportunities",
			Action:      "address moderate issues",
		}
	case score >= 40:
		return models.ScoreInterpretation{
			Status:      "concerning",
			Description: "Mixed reputation with notable issues",
			Action:      "immediate improvement plan needed",
		}
	default:
		return models.ScoreInterpretation{
			Status:      "critical",
			Description: "Significant reputation damage",
			Action:      "urgent intervention required",
		}
	}
}
