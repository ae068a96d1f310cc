package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
	"github.com/brandpulse/reputation-bot/internal/models"
)

const (
	maxIssues          = 10
	maxReviewEvidence  = 3
	maxSerpEvidence    = 2
	evidenceSnippetLen = 150

	// IssueProduct issues come from recurring complaints in reviews,
	// IssueReputation from negative narratives in search results.
	IssueProduct    = "product_issue"
	IssueReputation = "reputation_issue"
)

var negativeQueryTerms = []string{"complaint", "problem", "issue"}

// IdentifyIssues derives the prioritized issue list from negative
// mentions and complaint-oriented search results. Issues are derived
// fresh on every run; nothing is carried over from earlier analyses.
func IdentifyIssues(mentions []models.Mention, serp []models.SERPResult) []models.Issue {
	issues := identifyProductIssues(mentions, serp)
	issues = append(issues, identifyReputationIssues(mentions, serp)...)

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Priority != issues[j].Priority {
			return issues[i].Priority == models.PriorityHigh
		}
		return issues[i].Frequency > issues[j].Frequency
	})

	if len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	return issues
}

// identifyProductIssues finds recurring negative-stem words across
// negative reviews.
func identifyProductIssues(mentions []models.Mention, serp []models.SERPResult) []models.Issue {
	var negative []models.Mention
	var texts []string
	for _, mention := range mentions {
		if mention.Classification != nil && mention.Classification.SentimentLabel == models.SentimentNegative {
			negative = append(negative, mention)
			texts = append(texts, mention.Content)
		}
	}
	if len(negative) == 0 {
		return nil
	}

	words, _ := ExtractThemes(texts, 2)

	var issues []models.Issue
	for _, theme := range words {
		if !containsNegativeStem(theme.Text) {
			continue
		}

		priority := models.PriorityMedium
		if theme.Count > 5 {
			priority = models.PriorityHigh
		}

		issues = append(issues, models.Issue{
			Title:             theme.Text,
			Type:              IssueProduct,
			Source:            "app_reviews",
			Frequency:         theme.Count,
			Priority:          priority,
			Evidence:          attachEvidence(theme.Text, negative, serp),
			ActionableInsight: fmt.Sprintf("Product team should prioritize fixing '%s' - affects %d customers across multiple platforms", theme.Text, theme.Count),
		})
	}
	return issues
}

// identifyReputationIssues finds recurring phrases across search
// results returned for complaint-style queries.
func identifyReputationIssues(mentions []models.Mention, serp []models.SERPResult) []models.Issue {
	var negative []models.SERPResult
	var texts []string
	for _, item := range serp {
		query := strings.ToLower(item.Query)
		for _, term := range negativeQueryTerms {
			if strings.Contains(query, term) {
				negative = append(negative, item)
				texts = append(texts, item.Title+" "+item.Snippet)
				break
			}
		}
	}
	if len(negative) == 0 {
		return nil
	}

	_, phrases := ExtractThemes(texts, 1)

	var issues []models.Issue
	for _, theme := range phrases {
		priority := models.PriorityMedium
		if theme.Count > 2 {
			priority = models.PriorityHigh
		}

		issues = append(issues, models.Issue{
			Title:             theme.Text,
			Type:              IssueReputation,
			Source:            "search_results",
			Frequency:         theme.Count,
			Priority:          priority,
			Evidence:          attachEvidence(theme.Text, mentions, negative),
			ActionableInsight: fmt.Sprintf("PR team should address '%s' narrative appearing in search results and online discussions", theme.Text),
		})
	}
	return issues
}

// attachEvidence backs an issue with up to 3 review snippets and 2
// search-result snippets mentioning the term.
func attachEvidence(term string, mentions []models.Mention, serp []models.SERPResult) []models.Evidence {
	return append(reviewEvidence(mentions, term), serpEvidence(serp, term)...)
}

func reviewEvidence(mentions []models.Mention, term string) []models.Evidence {
	evidence := []models.Evidence{}
	for _, mention := range mentions {
		if !strings.Contains(strings.ToLower(mention.Content+" "+mention.Title), term) {
			continue
		}
		evidence = append(evidence, models.Evidence{
			Type:     "review",
			Platform: mention.Platform,
			Snippet:  truncate(mention.Content, evidenceSnippetLen),
			Rating:   mention.Rating,
		})
		if len(evidence) == maxReviewEvidence {
			break
		}
	}
	return evidence
}

func serpEvidence(serp []models.SERPResult, phrase string) []models.Evidence {
	evidence := []models.Evidence{}
	for _, item := range serp {
		text := strings.ToLower(item.Title + " " + item.Snippet)
		if !strings.Contains(text, phrase) {
			continue
		}
		evidence = append(evidence, models.Evidence{
			Type:    "serp",
			Title:   item.Title,
			Snippet: truncate(item.Snippet, evidenceSnippetLen),
			Link:    item.Link,
		})
		if len(evidence) == maxSerpEvidence {
			break
		}
	}
	return evidence
}

func containsNegativeStem(word string) bool {
	for _, stem := range lexicon.NegativeStems {
		if strings.Contains(word, stem) {
			return true
		}
	}
	return false
}
