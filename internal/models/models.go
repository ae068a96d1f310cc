package models

import "time"

// Sentiment labels assigned by the classification pipeline
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Intent categories for user feedback
const (
	IntentComplaint      = "complaint"
	IntentQuestion       = "question"
	IntentRecommendation = "recommendation"
	IntentNeutralMention = "neutral_mention"
)

// Priority tiers, most urgent first
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Crisis levels produced by the crisis detector
const (
	CrisisNone     = "none"
	CrisisLow      = "low"
	CrisisMedium   = "medium"
	CrisisHigh     = "high"
	CrisisCritical = "critical"
)

// RawMention is one unprocessed item as delivered by an external
// scraper or search collaborator. Optional fields may be empty/nil;
// ingest normalizes them before classification.
type RawMention struct {
	ID        string   `json:"id,omitempty"`
	Platform  string   `json:"platform"`
	Content   string   `json:"content"`
	Title     string   `json:"title,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Author    string   `json:"author,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
	Date      string   `json:"date,omitempty"`
}

// Mention is one piece of user content about the brand, normalized
// from a RawMention. Classification is nil until the pipeline has
// processed the mention; a processed mention has every classification
// field set.
type Mention struct {
	ExternalID   string    `json:"external_id"`
	Platform     string    `json:"platform"`
	Content      string    `json:"content"`
	Title        string    `json:"title,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
	AuthorName   string    `json:"author_name,omitempty"`
	SourceURL    string    `json:"source_url,omitempty"`
	OriginalDate time.Time `json:"original_date"`

	Classification *Classification `json:"classification,omitempty"`

	// IsMarked is set only by an external reviewer action, never by
	// the classification core.
	IsMarked bool `json:"is_marked"`
}

// Classification holds the full output of one classification pass.
type Classification struct {
	SentimentLabel    string   `json:"sentiment_label"`    // positive, negative, neutral
	SentimentPolarity float64  `json:"sentiment_polarity"` // -1 to 1
	Intent            string   `json:"intent"`
	Priority          string   `json:"priority"`
	ConfidenceScore   float64  `json:"confidence_score"` // 0 to 1
	KeywordsMatched   []string `json:"keywords_matched"` // ordered, max 7
	Topics            []string `json:"topics"`           // ordered, max 4
}

// SentimentResult is the output of the sentiment scorer for one text.
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`     // -1 to 1
	Label        string  `json:"label"`        // positive, negative, neutral
	Subjectivity float64 `json:"subjectivity"` // 0 to 1
	Confidence   float64 `json:"confidence"`   // 0 to 1
	Method       string  `json:"method"`
	Reasoning    string  `json:"reasoning,omitempty"`
}

// IntentResult is the output of the intent classifier for one text.
type IntentResult struct {
	Intent          string   `json:"intent"`
	Confidence      float64  `json:"confidence"` // 0 to 1
	KeywordsMatched []string `json:"keywords_matched"`
}

// SERPResult is one search-engine result supplied by the search
// collaborator alongside reviews.
type SERPResult struct {
	Query    string `json:"query"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Source   string `json:"source"`
	Link     string `json:"link"`
	Position int    `json:"position"`
}

// Evidence is one supporting snippet attached to an issue.
type Evidence struct {
	Type     string   `json:"type"` // "review" or "serp"
	Platform string   `json:"platform,omitempty"`
	Snippet  string   `json:"snippet"`
	Rating   *float64 `json:"rating,omitempty"`
	Title    string   `json:"title,omitempty"`
	Link     string   `json:"link,omitempty"`
}

// Issue is a recurring theme derived from negative mentions or SERP
// data. Issues are derived fresh on every analysis run.
type Issue struct {
	Title             string     `json:"title"`
	Type              string     `json:"type"` // "product_issue" or "reputation_issue"
	Source            string     `json:"source"`
	Frequency         int        `json:"frequency"`
	Priority          string     `json:"priority"`
	Evidence          []Evidence `json:"evidence"` // max 5
	ActionableInsight string     `json:"actionable_insight"`
}

// CrisisAlert is one category-level alert from the crisis detector.
type CrisisAlert struct {
	Category string `json:"category"`
	Severity string `json:"severity"` // "high" or "medium"
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

// AffectedReview is a sample mention that triggered a crisis signal.
type AffectedReview struct {
	MentionID string `json:"mention_id"`
	Platform  string `json:"platform"`
	Category  string `json:"category"`
	Keyword   string `json:"keyword"`
	Snippet   string `json:"snippet"`
}

// CrisisSnapshot is the result of one crisis-detection pass over a
// mention batch.
type CrisisSnapshot struct {
	CrisisLevel       string           `json:"crisis_level"`
	TotalSignals      int              `json:"total_signals"`
	CategoryBreakdown map[string]int   `json:"category_breakdown"`
	Alerts            []CrisisAlert    `json:"alerts"`
	AffectedReviews   []AffectedReview `json:"affected_reviews"` // max 5
	Recommendation    string           `json:"recommendation"`
}

// TrendComparison compares the reputation score of two periods.
type TrendComparison struct {
	CurrentScore     float64 `json:"current_score"`
	PreviousScore    float64 `json:"previous_score"`
	PercentageChange float64 `json:"percentage_change"`
	Direction        string  `json:"direction"` // "increase", "decrease", "no_change"
}

// TopicTrend is one row of the dashboard topic trend analysis.
type TopicTrend struct {
	Topic            string  `json:"topic"`
	Mentions         int     `json:"mentions"`
	PreviousMentions int     `json:"previous_mentions"`
	SentimentScore   float64 `json:"sentiment_score"` // -100 to 100
	TrendPercent     float64 `json:"trend_percent"`
	Priority         int     `json:"priority"` // higher = more concerning
	Positive         int     `json:"positive"`
	Negative         int     `json:"negative"`
	Neutral          int     `json:"neutral"`
}

// ScoreInterpretation maps an overall score to operator guidance.
type ScoreInterpretation struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// DataCitation records where analysis input came from.
type DataCitation struct {
	SourceType  string   `json:"source_type"` // "app_reviews" or "search_results"
	Platform    string   `json:"platform,omitempty"`
	SampleCount int      `json:"sample_count"`
	Samples     []string `json:"samples,omitempty"` // max 2 snippets
	Queries     []string `json:"queries,omitempty"`
}

// ActionableInsight is a recommendation derived from one analysis run.
type ActionableInsight struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Insight  string `json:"insight"`
	Action   string `json:"action"`
	Timeline string `json:"timeline"`
	Team     string `json:"team"`
}

// ResponseSuggestion is the input record handed to the external
// response-template consumer; the styled response text itself is
// generated outside the core.
type ResponseSuggestion struct {
	Issue            string   `json:"issue"`
	Intent           string   `json:"intent"`
	Priority         string   `json:"priority"`
	KeywordsMatched  []string `json:"keywords_matched"`
	ShouldRespond    bool     `json:"should_respond"`
	RecommendedStyle string   `json:"recommended_style"` // "official" or "friendly"
	ResponseType     string   `json:"response_type"`
	KeyPoints        []string `json:"key_points"`
}

// ReputationSnapshot is one scored analysis of a product at a point
// in time. Snapshots are immutable after creation; the most recent
// one per product is the baseline for trend comparison.
type ReputationSnapshot struct {
	Product         string         `json:"product"`
	GeneratedAt     time.Time      `json:"generated_at"`
	OverallScore    float64        `json:"overall_score"`   // 0 to 100
	SentimentScore  float64        `json:"sentiment_score"` // mean polarity, -1 to 1
	IntentBreakdown map[string]int `json:"intent_breakdown"`

	Issues []Issue          `json:"issues"`
	Crisis CrisisSnapshot   `json:"crisis_analysis"`
	Trend  *TrendComparison `json:"trend,omitempty"`
	Topics []TopicTrend     `json:"topic_trends,omitempty"`

	DataCitations      []DataCitation       `json:"data_citations"`
	ActionableInsights []ActionableInsight  `json:"actionable_insights"`
	ResponseInputs     []ResponseSuggestion `json:"response_inputs,omitempty"`
	Interpretation     ScoreInterpretation  `json:"score_interpretation"`

	TotalMentions   int `json:"total_mentions"`
	SkippedMentions int `json:"skipped_mentions"`
}
