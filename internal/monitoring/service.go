package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brandpulse/reputation-bot/internal/analysis"
	"github.com/brandpulse/reputation-bot/internal/classify"
	"github.com/brandpulse/reputation-bot/internal/config"
	"github.com/brandpulse/reputation-bot/internal/ingest"
	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/brandpulse/reputation-bot/internal/notifications"
	"github.com/brandpulse/reputation-bot/internal/storage"
	"github.com/sirupsen/logrus"
)

// Service orchestrates the analysis pipeline: pick up raw mention
// batches from the storage inbox, classify them, build the scored
// snapshot, persist it and notify.
type Service struct {
	config              *config.Config
	storage             storage.StorageInterface
	notificationService notifications.NotificationInterface
	classifier          *classify.Classifier
	analyzer            *analysis.Analyzer
	metrics             *Metrics
	mu                  sync.RWMutex
}

// Metrics holds pipeline metrics
type Metrics struct {
	TotalMentions      int            `json:"total_mentions"`
	ClassifiedMentions int            `json:"classified_mentions"`
	SkippedMentions    int            `json:"skipped_mentions"`
	LastRun            time.Time      `json:"last_run"`
	LastRunDuration    string         `json:"last_run_duration"`
	LastScore          float64        `json:"last_score"`
	CrisisLevel        string         `json:"crisis_level"`
	PlatformMetrics    map[string]int `json:"platform_metrics"`
	SentimentBreakdown map[string]int `json:"sentiment_breakdown"`
	ErrorCount         int            `json:"error_count"`
}

// NewService creates a new pipeline service
func NewService(cfg *config.Config, store storage.StorageInterface, notificationService notifications.NotificationInterface, classifier *classify.Classifier, analyzer *analysis.Analyzer) *Service {
	return &Service{
		config:              cfg,
		storage:             store,
		notificationService: notificationService,
		classifier:          classifier,
		analyzer:            analyzer,
		metrics: &Metrics{
			PlatformMetrics:    make(map[string]int),
			SentimentBreakdown: make(map[string]int),
		},
	}
}

// RunAnalysis performs the main pipeline run: drain the inbox, analyze
// the collected batch and send the report. Inbox blobs are archived
// only after the snapshot is safely stored, so a failed run leaves the
// inbox intact for the next attempt.
func (s *Service) RunAnalysis() error {
	start := time.Now()
	logrus.Info("Starting analysis run")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	raws, serp, inboxBlobs, err := s.loadInbox()
	if err != nil {
		s.recordError()
		return fmt.Errorf("failed to load inbox: %w", err)
	}

	if len(raws) == 0 && len(serp) == 0 {
		logrus.Info("Inbox is empty, nothing to analyze")
		return nil
	}
	logrus.Infof("Loaded %d raw mentions and %d search results from %d inbox blobs", len(raws), len(serp), len(inboxBlobs))

	mentions := ingest.NormalizeBatch(raws, time.Now().UTC())
	batchResult := s.classifier.ClassifyBatch(ctx, mentions)

	snapshot := s.analyzer.BuildSnapshot(s.config.ProductName, mentions, serp, batchResult.Skipped)

	if err := s.storeSnapshot(snapshot); err != nil {
		s.recordError()
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.archiveInbox(inboxBlobs)
	s.updateMetrics(mentions, snapshot, batchResult, time.Since(start))

	if err := s.notificationService.SendReport(snapshot); err != nil {
		s.recordError()
		return fmt.Errorf("failed to send report: %w", err)
	}

	if snapshot.Crisis.CrisisLevel == models.CrisisHigh || snapshot.Crisis.CrisisLevel == models.CrisisCritical {
		if err := s.notificationService.SendCrisisAlert(s.config.ProductName, &snapshot.Crisis); err != nil {
			logrus.Errorf("Failed to send crisis alert: %v", err)
		}
	}

	logrus.Infof("Analysis run completed in %v (score %.1f, crisis %s)", time.Since(start), snapshot.OverallScore, snapshot.Crisis.CrisisLevel)
	return nil
}

// RunCrisisCheck peeks at the pending inbox between full runs and
// raises an alert when crisis signals escalate. It classifies the
// batch but does not store a snapshot or archive anything; the next
// full run still processes the same data.
func (s *Service) RunCrisisCheck() error {
	start := time.Now()
	logrus.Info("Starting crisis check")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	raws, _, _, err := s.loadInbox()
	if err != nil {
		s.recordError()
		return fmt.Errorf("failed to load inbox: %w", err)
	}
	if len(raws) == 0 {
		logrus.Info("Inbox is empty, no crisis signals to check")
		return nil
	}

	mentions := ingest.NormalizeBatch(raws, time.Now().UTC())
	s.classifier.ClassifyBatch(ctx, mentions)

	crisis := analysis.DetectCrisis(mentions)
	if crisis.CrisisLevel != models.CrisisHigh && crisis.CrisisLevel != models.CrisisCritical {
		logrus.Infof("Crisis check completed in %v, level %s", time.Since(start), crisis.CrisisLevel)
		return nil
	}

	logrus.Warnf("Crisis level %s detected with %d signals", crisis.CrisisLevel, crisis.TotalSignals)
	if err := s.notificationService.SendCrisisAlert(s.config.ProductName, &crisis); err != nil {
		s.recordError()
		return fmt.Errorf("failed to send crisis alert: %w", err)
	}

	logrus.Infof("Crisis check completed in %v, alert sent", time.Since(start))
	return nil
}

// AnalyzeBatch runs the pipeline over a caller-supplied batch without
// touching storage. Used by the on-demand HTTP endpoint and the
// sample-report command.
func (s *Service) AnalyzeBatch(ctx context.Context, raws []models.RawMention, serp []models.SERPResult) *models.ReputationSnapshot {
	mentions := ingest.NormalizeBatch(raws, time.Now().UTC())
	batchResult := s.classifier.ClassifyBatch(ctx, mentions)
	return s.analyzer.BuildSnapshot(s.config.ProductName, mentions, serp, batchResult.Skipped)
}

// loadInbox reads every pending inbox blob. Blob names starting with
// "serp-" under the inbox prefix carry search results; everything else
// is a raw mention batch.
func (s *Service) loadInbox() ([]models.RawMention, []models.SERPResult, []string, error) {
	blobs, err := s.storage.List(storage.InboxPrefix)
	if err != nil {
		return nil, nil, nil, err
	}

	var raws []models.RawMention
	var serp []models.SERPResult

	for _, blob := range blobs {
		data, err := s.storage.Retrieve(blob)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to retrieve %s: %w", blob, err)
		}

		if strings.HasPrefix(blob, storage.InboxPrefix+"serp-") {
			var batch []models.SERPResult
			if err := json.Unmarshal(data, &batch); err != nil {
				logrus.Errorf("Skipping malformed SERP blob %s: %v", blob, err)
				s.recordError()
				continue
			}
			serp = append(serp, batch...)
			continue
		}

		var batch []models.RawMention
		if err := json.Unmarshal(data, &batch); err != nil {
			logrus.Errorf("Skipping malformed mention blob %s: %v", blob, err)
			s.recordError()
			continue
		}
		raws = append(raws, batch...)
	}

	return raws, serp, blobs, nil
}

func (s *Service) storeSnapshot(snapshot *models.ReputationSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return s.storage.Store(storage.SnapshotKey(snapshot.Product, snapshot.GeneratedAt), data)
}

// archiveInbox moves processed blobs out of the inbox. Archive
// failures are logged, not fatal: a re-analyzed batch produces the
// same classification, so duplicates are only a trend-baseline nuisance.
func (s *Service) archiveInbox(blobs []string) {
	for _, blob := range blobs {
		data, err := s.storage.Retrieve(blob)
		if err != nil {
			logrus.Errorf("Failed to re-read %s for archiving: %v", blob, err)
			s.recordError()
			continue
		}
		if err := s.storage.Store(storage.ProcessedKey(blob), data); err != nil {
			logrus.Errorf("Failed to archive %s: %v", blob, err)
			s.recordError()
			continue
		}
		if err := s.storage.Delete(blob); err != nil {
			logrus.Errorf("Failed to delete %s after archiving: %v", blob, err)
			s.recordError()
		}
	}
}

func (s *Service) updateMetrics(mentions []models.Mention, snapshot *models.ReputationSnapshot, batch classify.BatchResult, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.TotalMentions = len(mentions)
	s.metrics.ClassifiedMentions = batch.Classified
	s.metrics.SkippedMentions = batch.Skipped
	s.metrics.LastRun = time.Now()
	s.metrics.LastRunDuration = duration.String()
	s.metrics.LastScore = snapshot.OverallScore
	s.metrics.CrisisLevel = snapshot.Crisis.CrisisLevel

	s.metrics.PlatformMetrics = make(map[string]int)
	s.metrics.SentimentBreakdown = make(map[string]int)

	for _, mention := range mentions {
		s.metrics.PlatformMetrics[mention.Platform]++
		if mention.Classification != nil {
			s.metrics.SentimentBreakdown[mention.Classification.SentimentLabel]++
		}
	}
}

func (s *Service) recordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.ErrorCount++
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}
