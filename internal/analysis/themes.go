package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/brandpulse/reputation-bot/internal/lexicon"
)

const (
	maxWordThemes   = 20
	maxPhraseThemes = 15
	minWordLength   = 4
	minPhraseLength = 7
)

var themeWordPattern = regexp.MustCompile(`\b\w+\b`)

// ThemeCount is one recurring word or phrase with its frequency across
// the analyzed texts.
type ThemeCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// ExtractThemes finds recurring single words and adjacent two-word
// phrases across the texts. Words shorter than 4 characters and stop
// words are dropped; only entries occurring at least minFreq times
// survive. Results are ordered by frequency, ties alphabetically, so
// the output is deterministic for a given input.
func ExtractThemes(texts []string, minFreq int) (words, phrases []ThemeCount) {
	if minFreq < 1 {
		minFreq = 1
	}

	wordCounts := make(map[string]int)
	phraseCounts := make(map[string]int)

	for _, text := range texts {
		tokens := themeWordPattern.FindAllString(strings.ToLower(text), -1)

		for _, token := range tokens {
			if len(token) >= minWordLength && !lexicon.StopWords[token] {
				wordCounts[token]++
			}
		}
		for i := 0; i+1 < len(tokens); i++ {
			phrase := tokens[i] + " " + tokens[i+1]
			if len(phrase) >= minPhraseLength {
				phraseCounts[phrase]++
			}
		}
	}

	words = topThemes(wordCounts, minFreq, maxWordThemes)
	phrases = topThemes(phraseCounts, minFreq, maxPhraseThemes)
	return words, phrases
}

func topThemes(counts map[string]int, minFreq, limit int) []ThemeCount {
	themes := make([]ThemeCount, 0, len(counts))
	for text, count := range counts {
		if count >= minFreq {
			themes = append(themes, ThemeCount{Text: text, Count: count})
		}
	}

	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Count != themes[j].Count {
			return themes[i].Count > themes[j].Count
		}
		return themes[i].Text < themes[j].Text
	})

	if len(themes) > limit {
		themes = themes[:limit]
	}
	return themes
}
