package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/brandpulse/reputation-bot/internal/config"
	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Service handles sending notifications via various channels
type Service struct {
	config *config.Config
	client *resty.Client
}

// Ensure Service implements NotificationInterface
var _ NotificationInterface = (*Service)(nil)

// TeamsMessage represents a Microsoft Teams message
type TeamsMessage struct {
	Type     string         `json:"@type"`
	Context  string         `json:"@context"`
	Title    string         `json:"title"`
	Text     string         `json:"text"`
	Sections []TeamsSection `json:"sections,omitempty"`
}

type TeamsSection struct {
	ActivityTitle    string      `json:"activityTitle,omitempty"`
	ActivitySubtitle string      `json:"activitySubtitle,omitempty"`
	ActivityText     string      `json:"activityText,omitempty"`
	Facts            []TeamsFact `json:"facts,omitempty"`
	Markdown         bool        `json:"markdown,omitempty"`
}

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// SendReport sends a reputation snapshot via configured channels
func (s *Service) SendReport(snapshot *models.ReputationSnapshot) error {
	var errors []string

	if s.config.TeamsWebhookURL != "" {
		if err := s.sendToTeams(snapshot); err != nil {
			logrus.Errorf("Failed to send Teams notification: %v", err)
			errors = append(errors, fmt.Sprintf("Teams: %v", err))
		} else {
			logrus.Info("Successfully sent report to Teams")
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(snapshot); err != nil {
			logrus.Errorf("Failed to send email notification: %v", err)
			errors = append(errors, fmt.Sprintf("Email: %v", err))
		} else {
			logrus.Info("Successfully sent report via email")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// SendCrisisAlert sends an urgent notification when the crisis
// detector escalates past the reporting cadence.
func (s *Service) SendCrisisAlert(product string, crisis *models.CrisisSnapshot) error {
	if s.config.TeamsWebhookURL == "" {
		logrus.Warnf("Crisis alert for %s (%s) has no Teams webhook configured, skipping", product, crisis.CrisisLevel)
		return nil
	}

	facts := []TeamsFact{
		{Name: "Crisis Level", Value: crisis.CrisisLevel},
		{Name: "Total Signals", Value: fmt.Sprintf("%d", crisis.TotalSignals)},
	}
	for category, count := range crisis.CategoryBreakdown {
		facts = append(facts, TeamsFact{
			Name:  fmt.Sprintf("%s signals", strings.Title(category)),
			Value: fmt.Sprintf("%d", count),
		})
	}

	message := &TeamsMessage{
		Type:    "MessageCard",
		Context: "https://schema.org/extensions",
		Title:   fmt.Sprintf("CRISIS ALERT: %s - %s", product, strings.ToUpper(crisis.CrisisLevel)),
		Text:    crisis.Recommendation,
		Sections: []TeamsSection{
			{ActivityTitle: "Signal Breakdown", Facts: facts, Markdown: true},
		},
	}

	return s.postTeamsMessage(message)
}

func (s *Service) sendToTeams(snapshot *models.ReputationSnapshot) error {
	return s.postTeamsMessage(s.buildTeamsMessage(snapshot))
}

func (s *Service) postTeamsMessage(message *TeamsMessage) error {
	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(s.config.TeamsWebhookURL)

	if err != nil {
		return fmt.Errorf("failed to send Teams message: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("Teams webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) buildTeamsMessage(snapshot *models.ReputationSnapshot) *TeamsMessage {
	message := &TeamsMessage{
		Type:    "MessageCard",
		Context: "https://schema.org/extensions",
		Title:   fmt.Sprintf("Reputation Report - %s", snapshot.Product),
		Text:    fmt.Sprintf("Overall score %.1f (%s) from %d mentions", snapshot.OverallScore, snapshot.Interpretation.Status, snapshot.TotalMentions),
	}

	facts := []TeamsFact{
		{Name: "Overall Score", Value: fmt.Sprintf("%.1f / 100", snapshot.OverallScore)},
		{Name: "Status", Value: snapshot.Interpretation.Status},
		{Name: "Crisis Level", Value: snapshot.Crisis.CrisisLevel},
		{Name: "Total Mentions", Value: fmt.Sprintf("%d", snapshot.TotalMentions)},
		{Name: "Generated", Value: snapshot.GeneratedAt.Format("2006-01-02 15:04:05 UTC")},
	}
	if snapshot.Trend != nil {
		facts = append(facts, TeamsFact{
			Name:  "Trend",
			Value: fmt.Sprintf("%s (%.1f%%)", snapshot.Trend.Direction, snapshot.Trend.PercentageChange),
		})
	}
	for intent, count := range snapshot.IntentBreakdown {
		facts = append(facts, TeamsFact{
			Name:  fmt.Sprintf("%s mentions", strings.Title(strings.ReplaceAll(intent, "_", " "))),
			Value: fmt.Sprintf("%d", count),
		})
	}

	message.Sections = append(message.Sections, TeamsSection{
		ActivityTitle: "Summary",
		Facts:         facts,
		Markdown:      true,
	})

	if len(snapshot.Issues) > 0 {
		var topIssues []string
		limit := 5
		if len(snapshot.Issues) < limit {
			limit = len(snapshot.Issues)
		}

		for i := 0; i < limit; i++ {
			issue := snapshot.Issues[i]
			topIssues = append(topIssues, fmt.Sprintf("**%s** (%s, %d mentions) - %s",
				issue.Title, issue.Priority, issue.Frequency, issue.ActionableInsight))
		}

		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle: "Top Issues",
			ActivityText:  strings.Join(topIssues, "\n\n"),
			Markdown:      true,
		})
	}

	if len(snapshot.ActionableInsights) > 0 {
		var insights []string
		for _, insight := range snapshot.ActionableInsights {
			insights = append(insights, fmt.Sprintf("**[%s]** %s - %s (%s)",
				insight.Priority, insight.Insight, insight.Action, insight.Team))
		}

		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle: "Actionable Insights",
			ActivityText:  strings.Join(insights, "\n\n"),
			Markdown:      true,
		})
	}

	return message
}

func (s *Service) sendEmail(snapshot *models.ReputationSnapshot) error {
	subject := fmt.Sprintf("Reputation Report - %s (score %.1f, %s)",
		snapshot.Product, snapshot.OverallScore, snapshot.Interpretation.Status)

	htmlBody, err := s.buildEmailHTML(snapshot)
	if err != nil {
		return fmt.Errorf("failed to build email HTML: %w", err)
	}

	textBody := s.buildEmailText(snapshot)

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) buildEmailHTML(snapshot *models.ReputationSnapshot) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Reputation Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #0078d4; color: white; padding: 20px; border-radius: 5px; }
        .summary { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .issue { border-left: 4px solid #0078d4; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .issue-title { font-weight: bold; margin-bottom: 5px; }
        .issue-meta { color: #666; font-size: 0.9em; }
        .high { border-left-color: #d13438; }
        .medium { border-left-color: #ffb900; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Reputation Report - {{.Product}}</h1>
        <p>Generated on {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM UTC"}}</p>
    </div>

    <div class="summary">
        <h2>Summary</h2>
        <p><strong>Overall Score:</strong> {{printf "%.1f" .OverallScore}} / 100 ({{.Interpretation.Status}})</p>
        <p><strong>Recommended Action:</strong> {{.Interpretation.Action}}</p>
        <p><strong>Crisis Level:</strong> {{.Crisis.CrisisLevel}}</p>
        <p><strong>Total Mentions:</strong> {{.TotalMentions}}</p>
        {{if .Trend}}
        <p><strong>Trend:</strong> {{.Trend.Direction}} ({{printf "%.1f" .Trend.PercentageChange}}%)</p>
        {{end}}
        {{range $intent, $count := .IntentBreakdown}}
        <p><strong>{{$intent | title}}:</strong> {{$count}}</p>
        {{end}}
    </div>

    {{if .Issues}}
    <h2>Top Issues</h2>
    {{range $index, $issue := .Issues}}
        {{if lt $index 10}}
        <div class="issue {{$issue.Priority}}">
            <div class="issue-title">{{$issue.Title}} ({{$issue.Frequency}} mentions)</div>
            <div class="issue-meta">{{$issue.Type}} | priority: {{$issue.Priority}}</div>
            <p>{{$issue.ActionableInsight}}</p>
        </div>
        {{end}}
    {{end}}
    {{end}}

    {{if .ActionableInsights}}
    <h2>Actionable Insights</h2>
    {{range .ActionableInsights}}
    <div class="issue {{.Priority}}">
        <div class="issue-title">{{.Insight}}</div>
        <div class="issue-meta">{{.Team}} | {{.Timeline}}</div>
        <p>{{.Action}}</p>
    </div>
    {{end}}
    {{end}}

    <hr>
    <p><small>This report was generated automatically by the reputation bot.</small></p>
</body>
</html>
`

	t := template.New("email").Funcs(template.FuncMap{
		"title": func(s string) string {
			return strings.Title(strings.ReplaceAll(s, "_", " "))
		},
	})

	t, err := t.Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, snapshot); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Service) buildEmailText(snapshot *models.ReputationSnapshot) string {
	var text strings.Builder

	text.WriteString(fmt.Sprintf("Reputation Report - %s\n", snapshot.Product))
	text.WriteString(fmt.Sprintf("Generated: %s\n\n", snapshot.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	text.WriteString("SUMMARY\n")
	text.WriteString("=======\n")
	text.WriteString(fmt.Sprintf("Overall Score: %.1f / 100 (%s)\n", snapshot.OverallScore, snapshot.Interpretation.Status))
	text.WriteString(fmt.Sprintf("Recommended Action: %s\n", snapshot.Interpretation.Action))
	text.WriteString(fmt.Sprintf("Crisis Level: %s\n", snapshot.Crisis.CrisisLevel))
	text.WriteString(fmt.Sprintf("Total Mentions: %d\n", snapshot.TotalMentions))
	if snapshot.Trend != nil {
		text.WriteString(fmt.Sprintf("Trend: %s (%.1f%%)\n", snapshot.Trend.Direction, snapshot.Trend.PercentageChange))
	}
	for intent, count := range snapshot.IntentBreakdown {
		text.WriteString(fmt.Sprintf("%s: %d\n", strings.Title(strings.ReplaceAll(intent, "_", " ")), count))
	}

	if len(snapshot.Issues) > 0 {
		text.WriteString("\nTOP ISSUES\n")
		text.WriteString("==========\n")

		limit := 10
		if len(snapshot.Issues) < limit {
			limit = len(snapshot.Issues)
		}

		for i := 0; i < limit; i++ {
			issue := snapshot.Issues[i]
			text.WriteString(fmt.Sprintf("\n%d. %s (%d mentions, %s priority)\n", i+1, issue.Title, issue.Frequency, issue.Priority))
			text.WriteString(fmt.Sprintf("   %s\n", issue.ActionableInsight))
		}
	}

	if len(snapshot.ActionableInsights) > 0 {
		text.WriteString("\nACTIONABLE INSIGHTS\n")
		text.WriteString("===================\n")
		for _, insight := range snapshot.ActionableInsights {
			text.WriteString(fmt.Sprintf("\n[%s] %s\n", strings.ToUpper(insight.Priority), insight.Insight))
			text.WriteString(fmt.Sprintf("   Action: %s (%s, %s)\n", insight.Action, insight.Team, insight.Timeline))
		}
	}

	text.WriteString("\n---\nThis report was generated automatically by the reputation bot.\n")

	return text.String()
}
