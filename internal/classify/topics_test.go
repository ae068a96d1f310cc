package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "matches vocabulary terms in vocabulary order",
			text:     "The billing in this app is broken, support was useless",
			expected: []string{"app", "billing", "support"},
		},
		{
			name:     "case insensitive",
			text:     "PAYMENT failed in the APP",
			expected: []string{"app", "payment"},
		},
		{
			name:     "no matches",
			text:     "sunny weather today",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeywords(tt.text))
		})
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	text := "app service price cost payment billing subscription feature update interface design bug"

	keywords := ExtractKeywords(text)

	assert.Len(t, keywords, 10)
}

func TestExtractTopics(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single topic",
			text:     "the checkout was really slow",
			expected: []string{"performance"},
		},
		{
			name:     "multiple topics",
			text:     "slow app, confusing interface and expensive subscription",
			expected: []string{"performance", "usability", "pricing"},
		},
		{
			name:     "no topics",
			text:     "just a ride across town",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTopics(tt.text))
		})
	}
}
