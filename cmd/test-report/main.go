package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brandpulse/reputation-bot/internal/analysis"
	"github.com/brandpulse/reputation-bot/internal/classify"
	"github.com/brandpulse/reputation-bot/internal/config"
	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/brandpulse/reputation-bot/internal/monitoring"
)

// TestStorage implements simple file-based storage for testing
type TestStorage struct{}

func (t *TestStorage) Store(filename string, data []byte) error {
	dir := "test_output"
	if err := os.MkdirAll(filepath.Join(dir, filepath.Dir(filename)), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), data, 0644)
}

func (t *TestStorage) Retrieve(filename string) ([]byte, error) {
	return os.ReadFile(filepath.Join("test_output", filename))
}

func (t *TestStorage) List(prefix string) ([]string, error) {
	return []string{}, nil
}

func (t *TestStorage) Delete(filename string) error {
	return os.Remove(filepath.Join("test_output", filename))
}

// TestNotificationService outputs snapshots to terminal and files
type TestNotificationService struct{}

func (t *TestNotificationService) SendReport(snapshot *models.ReputationSnapshot) error {
	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("📊 REPUTATION SNAPSHOT")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("🏷  Product: %s\n", snapshot.Product)
	fmt.Printf("🕒 Generated: %s\n", snapshot.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Printf("📈 Overall Score: %.1f / 100 (%s)\n", snapshot.OverallScore, snapshot.Interpretation.Status)
	fmt.Printf("💡 Action: %s\n", snapshot.Interpretation.Action)
	fmt.Printf("🔥 Crisis Level: %s (%d signals)\n", snapshot.Crisis.CrisisLevel, snapshot.Crisis.TotalSignals)
	fmt.Printf("🗒  Mentions: %d analyzed, %d skipped\n", snapshot.TotalMentions, snapshot.SkippedMentions)

	if len(snapshot.IntentBreakdown) > 0 {
		fmt.Println("\n💬 Intent Breakdown:")
		for intent, count := range snapshot.IntentBreakdown {
			fmt.Printf("   • %-18s %d mentions\n", intent+":", count)
		}
	}

	if len(snapshot.Issues) > 0 {
		fmt.Println("\n⚠️  Top Issues:")
		for i, issue := range snapshot.Issues {
			if i >= 5 {
				fmt.Printf("   ... and %d more issues\n", len(snapshot.Issues)-5)
				break
			}
			fmt.Printf("\n   %d. %s (%s, %d mentions)\n", i+1, issue.Title, issue.Priority, issue.Frequency)
			fmt.Printf("      %s\n", issue.ActionableInsight)
		}
	}

	if len(snapshot.Topics) > 0 {
		fmt.Println("\n📊 Topic Trends:")
		for _, topic := range snapshot.Topics {
			fmt.Printf("   • %-18s %d mentions, sentiment %.0f, trend %+.0f%%\n",
				topic.Topic+":", topic.Mentions, topic.SentimentScore, topic.TrendPercent)
		}
	}

	if len(snapshot.ActionableInsights) > 0 {
		fmt.Println("\n🎯 Actionable Insights:")
		for _, insight := range snapshot.ActionableInsights {
			fmt.Printf("   • [%s] %s → %s (%s, %s)\n",
				insight.Priority, insight.Insight, insight.Action, insight.Team, insight.Timeline)
		}
	}

	if err := t.saveSnapshotToFile(snapshot); err != nil {
		fmt.Printf("\n⚠️  Warning: Could not save to file: %v\n", err)
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	return nil
}

func (t *TestNotificationService) SendCrisisAlert(product string, crisis *models.CrisisSnapshot) error {
	fmt.Println("\n🚨 CRISIS ALERT")
	fmt.Printf("Product: %s\n", product)
	fmt.Printf("Level: %s (%d signals)\n", crisis.CrisisLevel, crisis.TotalSignals)
	fmt.Printf("Recommendation: %s\n", crisis.Recommendation)
	return nil
}

func (t *TestNotificationService) saveSnapshotToFile(snapshot *models.ReputationSnapshot) error {
	dir := "test_output"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	timestamp := snapshot.GeneratedAt.Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("reputation_snapshot_%s.json", timestamp))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return err
	}

	fmt.Printf("\n💾 Snapshot saved to: %s\n", filename)
	return nil
}

func main() {
	fmt.Println("🤖 Reputation Bot - Sample Snapshot Generator")
	fmt.Println("=============================================")

	cfg := &config.Config{
		ProductName:     "ExampleRide",
		ReportSchedule:  "daily",
		ClassifyWorkers: 4,
	}

	storage := &TestStorage{}
	notifier := &TestNotificationService{}

	scorer := classify.NewScorer(nil, 0)
	classifier := classify.NewClassifier(scorer, cfg.ClassifyWorkers)
	analyzer := analysis.NewAnalyzer(nil)
	service := monitoring.NewService(cfg, storage, notifier, classifier, analyzer)

	rating := func(v float64) *float64 { return &v }

	sampleMentions := []models.RawMention{
		{
			ID:        "test_appstore_1",
			Platform:  "app_store",
			Content:   "The app is amazing and so fast! Booking a ride takes seconds.",
			Title:     "Love it",
			Rating:    rating(5),
			Author:    "happy_rider",
			SourceURL: "https://apps.example.com/review/1",
			Date:      time.Now().Add(-3 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:        "test_appstore_2",
			Platform:  "app_store",
			Content:   "App crashed three times during checkout, this is a scam, I want a refund!",
			Title:     "Terrible experience",
			Rating:    rating(1),
			Author:    "angry_customer",
			SourceURL: "https://apps.example.com/review/2",
			Date:      time.Now().Add(-5 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:        "test_googleplay_1",
			Platform:  "google_play",
			Content:   "Payment not working since the last update, support is not responding.",
			Title:     "Billing broken",
			Rating:    rating(2),
			Author:    "frustrated_user",
			SourceURL: "https://play.example.com/review/1",
			Date:      time.Now().Add(-8 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:        "test_reddit_1",
			Platform:  "reddit",
			Content:   "How do I change my payment method in the app? Can't find the option anywhere.",
			Title:     "Payment method question",
			Author:    "curious_rider",
			SourceURL: "https://reddit.example.com/post/1",
			Date:      time.Now().Add(-12 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:        "test_trustpilot_1",
			Platform:  "trustpilot",
			Content:   "Service is fine but I am looking for alternatives to ExampleRide with better pricing.",
			Title:     "Considering a switch",
			Rating:    rating(3),
			Author:    "pragmatic_commuter",
			SourceURL: "https://trustpilot.example.com/review/1",
			Date:      time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
		},
	}

	sampleSerp := []models.SERPResult{
		{
			Query:    "ExampleRide complaints",
			Title:    "ExampleRide billing complaints pile up",
			Snippet:  "Users report billing complaints and payment problems after the latest update.",
			Source:   "news.example.com",
			Link:     "https://news.example.com/articles/1",
			Position: 1,
		},
		{
			Query:    "ExampleRide reviews",
			Title:    "ExampleRide review roundup",
			Snippet:  "A balanced look at what riders think of the service this year.",
			Source:   "blog.example.com",
			Link:     "https://blog.example.com/posts/1",
			Position: 2,
		},
	}

	fmt.Printf("\n📊 Analyzing %d sample mentions and %d search results...\n", len(sampleMentions), len(sampleSerp))

	snapshot := service.AnalyzeBatch(context.Background(), sampleMentions, sampleSerp)

	if err := notifier.SendReport(snapshot); err != nil {
		fmt.Printf("❌ Error printing snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Sample snapshot generation completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Check the 'test_output' directory for the saved JSON snapshot")
	fmt.Println("   • Run 'go test ./...' for the full test suite")
	fmt.Println("   • Configure storage and notifications and run 'go run cmd/bot/main.go'")
}
