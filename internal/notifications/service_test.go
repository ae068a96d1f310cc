package notifications

import (
	"testing"
	"time"

	"github.com/brandpulse/reputation-bot/internal/config"
	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() *models.ReputationSnapshot {
	return &models.ReputationSnapshot{
		Product:        "ExampleRide",
		GeneratedAt:    time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC),
		OverallScore:   42.5,
		SentimentScore: -0.2,
		IntentBreakdown: map[string]int{
			models.IntentComplaint: 4,
			models.IntentQuestion:  2,
		},
		Issues: []models.Issue{
			{
				Title:             "crashes",
				Type:              "product_issue",
				Frequency:         6,
				Priority:          models.PriorityHigh,
				ActionableInsight: "Product team should prioritize fixing 'crashes' - affects 6 customers across multiple platforms",
			},
		},
		Crisis: models.CrisisSnapshot{
			CrisisLevel:  models.CrisisMedium,
			TotalSignals: 3,
		},
		Trend: &models.TrendComparison{
			CurrentScore:     42.5,
			PreviousScore:    50,
			PercentageChange: -15,
			Direction:        "decrease",
		},
		ActionableInsights: []models.ActionableInsight{
			{
				Priority: models.PriorityHigh,
				Insight:  "40.0% of feedback consists of complaints",
				Action:   "Implement proactive customer outreach and issue resolution process",
				Timeline: "1-2 weeks",
				Team:     "Customer Success",
			},
		},
		Interpretation: models.ScoreInterpretation{
			Status:      "concerning",
			Description: "Mixed reputation with notable issues",
			Action:      "immediate improvement plan needed",
		},
		TotalMentions: 10,
	}
}

func TestBuildTeamsMessage(t *testing.T) {
	service := NewService(&config.Config{})

	message := service.buildTeamsMessage(sampleSnapshot())

	assert.Equal(t, "MessageCard", message.Type)
	assert.Equal(t, "Reputation Report - ExampleRide", message.Title)
	assert.Contains(t, message.Text, "42.5")
	assert.Contains(t, message.Text, "concerning")

	// Summary, top issues and actionable insights sections.
	if assert.Len(t, message.Sections, 3) {
		summary := message.Sections[0]
		assert.Equal(t, "Summary", summary.ActivityTitle)

		factNames := make([]string, 0, len(summary.Facts))
		for _, fact := range summary.Facts {
			factNames = append(factNames, fact.Name)
		}
		assert.Contains(t, factNames, "Overall Score")
		assert.Contains(t, factNames, "Crisis Level")
		assert.Contains(t, factNames, "Trend")

		assert.Equal(t, "Top Issues", message.Sections[1].ActivityTitle)
		assert.Contains(t, message.Sections[1].ActivityText, "crashes")

		assert.Equal(t, "Actionable Insights", message.Sections[2].ActivityTitle)
		assert.Contains(t, message.Sections[2].ActivityText, "Customer Success")
	}
}

func TestBuildTeamsMessageWithoutOptionalSections(t *testing.T) {
	service := NewService(&config.Config{})

	snapshot := sampleSnapshot()
	snapshot.Issues = nil
	snapshot.ActionableInsights = nil
	snapshot.Trend = nil

	message := service.buildTeamsMessage(snapshot)

	assert.Len(t, message.Sections, 1)
}

func TestBuildEmailText(t *testing.T) {
	service := NewService(&config.Config{})

	text := service.buildEmailText(sampleSnapshot())

	assert.Contains(t, text, "Reputation Report - ExampleRide")
	assert.Contains(t, text, "Overall Score: 42.5 / 100 (concerning)")
	assert.Contains(t, text, "Crisis Level: medium")
	assert.Contains(t, text, "Trend: decrease (-15.0%)")
	assert.Contains(t, text, "TOP ISSUES")
	assert.Contains(t, text, "crashes (6 mentions, high priority)")
	assert.Contains(t, text, "ACTIONABLE INSIGHTS")
}

func TestBuildEmailHTML(t *testing.T) {
	service := NewService(&config.Config{})

	html, err := service.buildEmailHTML(sampleSnapshot())

	assert.NoError(t, err)
	assert.Contains(t, html, "Reputation Report - ExampleRide")
	assert.Contains(t, html, "42.5")
	assert.Contains(t, html, "crashes")
	assert.Contains(t, html, "Customer Success")
}

func TestSendReportNoChannelsConfigured(t *testing.T) {
	service := NewService(&config.Config{})

	// Neither Teams nor email configured: nothing to send, no error.
	assert.NoError(t, service.SendReport(sampleSnapshot()))
}

func TestSendCrisisAlertWithoutWebhook(t *testing.T) {
	service := NewService(&config.Config{})

	crisis := &models.CrisisSnapshot{
		CrisisLevel:    models.CrisisHigh,
		TotalSignals:   7,
		Recommendation: "URGENT: Escalate to management and prepare response strategy",
	}

	// Missing webhook is logged, not fatal.
	assert.NoError(t, service.SendCrisisAlert("ExampleRide", crisis))
}
