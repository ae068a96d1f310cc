package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/brandpulse/reputation-bot/internal/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiStrategy analyzes sentiment with the Gemini generateContent
// REST API. It satisfies SentimentStrategy; failures are returned to
// the caller, which falls back to the local path.
type GeminiStrategy struct {
	client  *resty.Client
	limiter *rate.Limiter
	apiKey  string
	model   string
	baseURL string
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiSentiment struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Polarity   float64 `json:"polarity"`
	Reasoning  string  `json:"reasoning"`
}

// NewGeminiStrategy creates a Gemini-backed sentiment strategy.
// maxRequestsPerMinute gates the request rate so a large batch cannot
// exhaust the API quota.
func NewGeminiStrategy(apiKey, model string, maxRequestsPerMinute int) *GeminiStrategy {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if maxRequestsPerMinute <= 0 {
		maxRequestsPerMinute = 10
	}

	return &GeminiStrategy{
		client:  resty.New().SetTimeout(30 * time.Second),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxRequestsPerMinute)), 1),
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
	}
}

func (g *GeminiStrategy) Name() string {
	return "gemini"
}

// AnalyzeSentiment asks Gemini for a sentiment judgment and parses
// the JSON object out of the model reply.
func (g *GeminiStrategy) AnalyzeSentiment(ctx context.Context, text string) (models.SentimentResult, error) {
	if g.apiKey == "" {
		return models.SentimentResult{}, fmt.Errorf("gemini API key not configured")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return models.SentimentResult{}, fmt.Errorf("rate limiter wait: %w", err)
	}

	request := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildSentimentPrompt(text)}}},
		},
	}

	var response geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post(fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey))

	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return models.SentimentResult{}, fmt.Errorf("gemini returned status %d", resp.StatusCode())
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return models.SentimentResult{}, fmt.Errorf("gemini response contained no candidates")
	}

	parsed, err := parseSentimentJSON(response.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return models.SentimentResult{}, err
	}

	return models.SentimentResult{
		Polarity:     parsed.Polarity,
		Label:        parsed.Sentiment,
		Subjectivity: 0.8,
		Confidence:   parsed.Confidence,
		Method:       "gemini",
		Reasoning:    parsed.Reasoning,
	}, nil
}

func buildSentimentPrompt(text string) string {
	return fmt.Sprintf(`Analyze the sentiment of this text with high accuracy.

Text: %q

Pay special attention to sarcasm, irony, negative experiences described
with positive words, and subtle dissatisfaction.

Respond with ONLY a JSON object in this exact format:
{"sentiment": "positive|negative|neutral", "confidence": 0.85, "polarity": -0.6, "reasoning": "brief explanation"}

polarity is a float from -1.0 (very negative) to 1.0 (very positive)
and confidence a float from 0.0 to 1.0.`, text)
}

// parseSentimentJSON extracts the first JSON object from the model
// reply; Gemini sometimes wraps it in a fenced code block.
func parseSentimentJSON(reply string) (geminiSentiment, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return geminiSentiment{}, fmt.Errorf("no JSON object in gemini reply")
	}

	var parsed geminiSentiment
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return geminiSentiment{}, fmt.Errorf("failed to parse gemini reply: %w", err)
	}

	switch parsed.Sentiment {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
	default:
		return geminiSentiment{}, fmt.Errorf("gemini returned unknown sentiment %q", parsed.Sentiment)
	}

	return parsed, nil
}
