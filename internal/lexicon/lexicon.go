// Package lexicon holds the static keyword and pattern tables used by
// every classifier stage. Tables are plain data so each rule can be
// unit-tested independently and swapped for another locale or domain
// without touching classifier logic.
package lexicon

import "regexp"

// Polarity is the graded word lexicon behind the base sentiment
// estimate. Weights are in [-1, 1]; inflected forms are listed
// explicitly so lookup stays a plain map access.
var Polarity = map[string]float64{
	// positive
	"excellent":   0.8,
	"amazing":     0.8,
	"great":       0.7,
	"awesome":     0.8,
	"fantastic":   0.8,
	"perfect":     0.9,
	"love":        0.6,
	"loved":       0.6,
	"loves":       0.6,
	"wonderful":   0.7,
	"outstanding": 0.8,
	"brilliant":   0.8,
	"impressive":  0.6,
	"helpful":     0.5,
	"good":        0.5,
	"nice":        0.4,
	"best":        0.7,
	"easy":        0.4,
	"fast":        0.4,
	"quick":       0.3,
	"reliable":    0.5,
	"smooth":      0.4,
	"convenient":  0.4,
	"fine":        0.3,
	"decent":      0.3,
	"okay":        0.2,
	"recommend":   0.4,
	"recommended": 0.4,
	"happy":       0.5,
	"satisfied":   0.5,

	// negative
	"terrible":      -0.8,
	"awful":         -0.8,
	"horrible":      -0.8,
	"bad":           -0.6,
	"worst":         -0.9,
	"hate":          -0.7,
	"hated":         -0.7,
	"disgusting":    -0.8,
	"useless":       -0.7,
	"broken":        -0.6,
	"broke":         -0.5,
	"fail":          -0.6,
	"failed":        -0.6,
	"fails":         -0.6,
	"disappointed":  -0.6,
	"disappointing": -0.6,
	"frustrated":    -0.6,
	"frustrating":   -0.6,
	"annoying":      -0.5,
	"slow":          -0.4,
	"laggy":         -0.5,
	"lag":           -0.4,
	"crash":         -0.6,
	"crashed":       -0.6,
	"crashes":       -0.6,
	"crashing":      -0.6,
	"bug":           -0.5,
	"bugs":          -0.5,
	"buggy":         -0.6,
	"glitch":        -0.5,
	"issue":         -0.3,
	"issues":        -0.3,
	"problem":       -0.4,
	"problems":      -0.4,
	"complaint":     -0.4,
	"refund":        -0.4,
	"scam":          -0.9,
	"fraud":         -0.9,
	"expensive":     -0.4,
	"overpriced":    -0.5,
	"rude":          -0.6,
	"error":         -0.4,
	"errors":        -0.4,
	"waste":         -0.6,
	"poor":          -0.5,
	"unreliable":    -0.6,
	"stolen":        -0.7,
	"hacked":        -0.7,
}

// Negations flip the sign of the word that follows them.
var Negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"dont":    true,
	"don't":   true,
	"doesnt":  true,
	"doesn't": true,
	"didnt":   true,
	"didn't":  true,
	"cant":    true,
	"can't":   true,
	"wont":    true,
	"won't":   true,
	"isnt":    true,
	"isn't":   true,
	"wasnt":   true,
	"wasn't":  true,
	"hardly":  true,
	"barely":  true,
}

// AdjustmentRule is one contextual sentiment adjustment: a compiled
// pattern and the polarity delta applied when it matches.
type AdjustmentRule struct {
	Pattern *regexp.Regexp
	Delta   float64
}

// DissatisfactionRules catch implicit dissatisfaction that a plain
// lexicon estimate misses (seeking alternatives, conditional
// approval). Always applied; multiple matches stack.
var DissatisfactionRules = []AdjustmentRule{
	// seeking alternatives
	{regexp.MustCompile(`\b(alternative|alternatives)\s+to\b`), -0.4},
	{regexp.MustCompile(`\bother\s+(apps?|options?|services?)\s+(than|instead of|better than)\b`), -0.4},
	{regexp.MustCompile(`\breplace(ment)?\s+(for|to)\b`), -0.3},
	{regexp.MustCompile(`\bswitch\s+(from|away from)\b`), -0.3},

	// comparison seeking
	{regexp.MustCompile(`\bbetter\s+(than|alternatives?|options?)\b`), -0.2},
	{regexp.MustCompile(`\bcheaper\s+(than|alternatives?|options?)\b`), -0.2},
	{regexp.MustCompile(`\bwhat.*better\b`), -0.2},
	{regexp.MustCompile(`\banything\s+(better|cheaper)\b`), -0.2},

	// implicit complaints
	{regexp.MustCompile(`\bstop\s+using\b`), -0.4},
	{regexp.MustCompile(`\buninstall\b`), -0.4},
	{regexp.MustCompile(`\bdelete\b.*\bapp\b`), -0.4},
	{regexp.MustCompile(`\bworse\s+than\b`), -0.3},
	{regexp.MustCompile(`\bnot\s+worth\b`), -0.3},
	{regexp.MustCompile(`\bwaste\s+of\b`), -0.4},

	// conditional dissatisfaction
	{regexp.MustCompile(`\bokay\s+but\b`), -0.2},
	{regexp.MustCompile(`\bfine\s+but\b`), -0.2},
	{regexp.MustCompile(`\bdecent\s+but\b`), -0.2},
	{regexp.MustCompile(`\bused\s+to\s+be\s+(good|great|better)\b`), -0.3},
	{regexp.MustCompile(`\bwant\s+(better|cheaper|different)\b`), -0.2},
	{regexp.MustCompile(`\bneed\s+(something|anything)\s+(better|cheaper|else)\b`), -0.3},
}

// PositiveReinforcementRules amplify an already-positive base
// estimate; they are skipped when the base polarity is not positive.
var PositiveReinforcementRules = []AdjustmentRule{
	{regexp.MustCompile(`\blove\s+(this|it)\b`), 0.2},
	{regexp.MustCompile(`\bamazing\b`), 0.3},
	{regexp.MustCompile(`\bawesome\b`), 0.3},
	{regexp.MustCompile(`\bperfect\b`), 0.3},
	{regexp.MustCompile(`\bexcellent\b`), 0.3},
	{regexp.MustCompile(`\bhighly\s+recommend\b`), 0.4},
	{regexp.MustCompile(`\bbest\s+(app|service)\b`), 0.3},
}

// NegativeReinforcementRules amplify strong negative phrasing.
// Always applied.
var NegativeReinforcementRules = []AdjustmentRule{
	{regexp.MustCompile(`\bterrible\b`), -0.4},
	{regexp.MustCompile(`\bawful\b`), -0.4},
	{regexp.MustCompile(`\bhorrible\b`), -0.4},
	{regexp.MustCompile(`\bnever\s+(again|use|using)\b`), -0.4},
	{regexp.MustCompile(`\bworst\b`), -0.4},
	{regexp.MustCompile(`\bhate\b`), -0.4},
	{regexp.MustCompile(`\bdisgusting\b`), -0.4},
}

// IntentCategory pairs an intent name with its keyword list. Slice
// order is the tie-break priority when two categories score equal
// hits: complaint > question > recommendation > neutral_mention.
type IntentCategory struct {
	Name     string
	Keywords []string
}

var IntentCategories = []IntentCategory{
	{
		Name: "complaint",
		Keywords: []string{
			"not working", "doesnt work", "doesn't work", "broken", "terrible",
			"awful", "worst", "hate", "disappointed", "frustrated", "annoying",
			"useless", "horrible", "crash", "bug", "issue", "problem", "error",
			"fail", "refund",
		},
	},
	{
		Name: "question",
		Keywords: []string{
			"how to", "how do", "can i", "is it possible", "help", "support",
			"what is", "where is", "when will", "why does", "tutorial", "guide",
		},
	},
	{
		Name: "recommendation",
		Keywords: []string{
			"recommend", "suggest", "try", "should use", "better", "alternative",
			"prefer", "switch to", "instead of", "upgrade",
		},
	},
	{
		Name: "neutral_mention",
		Keywords: []string{
			"using", "experience with", "tried", "found", "noticed", "seems",
			"appears", "looks like", "basically", "generally",
		},
	},
}

// CriticalPriorityKeywords short-circuit the priority cascade to
// critical regardless of sentiment.
var CriticalPriorityKeywords = []string{
	"scam", "fraud", "stealing", "illegal", "lawsuit", "refund",
	"money back", "cancel subscription", "hate", "disgusting",
	"crash", "bug", "error", "broken", "terrible", "worst", "awful",
}

// HighPriorityKeywords promote a mention to at least high priority.
var HighPriorityKeywords = []string{
	"problem", "issue", "complaint", "disappointed", "frustrated",
	"not working", "doesn't work", "failed", "slow", "lag",
}

// CrisisCategory pairs a crisis category with its trigger keywords.
type CrisisCategory struct {
	Name     string
	Keywords []string
}

// CrisisCategories drive the early-warning detector. The first
// keyword hit per category per mention counts as one signal.
var CrisisCategories = []CrisisCategory{
	{Name: "technical", Keywords: []string{"crash", "not working", "broken", "down", "offline", "error"}},
	{Name: "payment", Keywords: []string{"charged", "billing", "payment", "money", "refund", "overcharge"}},
	{Name: "security", Keywords: []string{"hacked", "security", "privacy", "data breach", "stolen"}},
	{Name: "service", Keywords: []string{"rude", "unprofessional", "terrible service", "bad support"}},
}

// ProductVocabulary is the fixed term list for per-mention keyword
// extraction.
var ProductVocabulary = []string{
	"app", "service", "price", "cost", "payment", "billing", "subscription",
	"feature", "update", "interface", "design", "bug", "crash", "slow",
	"fast", "easy", "difficult", "customer service", "support", "help",
}

// TopicGroup maps a topic tag to its keyword group.
type TopicGroup struct {
	Name     string
	Keywords []string
}

// MentionTopics is the per-mention topic taxonomy; a mention may carry
// several of these tags.
var MentionTopics = []TopicGroup{
	{Name: "performance", Keywords: []string{"slow", "fast", "lag", "speed", "performance", "quick"}},
	{Name: "usability", Keywords: []string{"easy", "difficult", "confusing", "simple", "user-friendly", "interface"}},
	{Name: "pricing", Keywords: []string{"expensive", "cheap", "cost", "price", "money", "billing", "subscription"}},
	{Name: "features", Keywords: []string{"feature", "function", "capability", "option", "tool"}},
	{Name: "bugs", Keywords: []string{"bug", "error", "crash", "broken", "glitch", "issue"}},
	{Name: "customer_service", Keywords: []string{"support", "help", "service", "staff", "team", "representative"}},
	{Name: "design", Keywords: []string{"design", "look", "appearance", "ui", "layout", "visual"}},
}

// DashboardTopics is the wider 10-category taxonomy used by the topic
// trend analysis.
var DashboardTopics = []TopicGroup{
	{Name: "Performance", Keywords: []string{"performance", "speed", "slow", "fast", "loading", "lag", "optimization"}},
	{Name: "Features", Keywords: []string{"features", "functionality", "feature", "capability", "missing", "request"}},
	{Name: "Customer Support", Keywords: []string{"support", "customer service", "help", "assistance", "response"}},
	{Name: "Pricing", Keywords: []string{"price", "cost", "expensive", "cheap", "pricing", "fee", "billing"}},
	{Name: "User Interface", Keywords: []string{"ui", "ux", "interface", "design", "usability", "navigation"}},
	{Name: "Bugs & Issues", Keywords: []string{"bug", "error", "crash", "broken", "issue", "problem", "glitch"}},
	{Name: "Security", Keywords: []string{"security", "privacy", "safe", "secure", "protection", "data"}},
	{Name: "Payment System", Keywords: []string{"payment", "billing", "charge", "card", "transaction", "refund"}},
	{Name: "Driver Quality", Keywords: []string{"driver", "service quality", "ride", "professional", "behavior"}},
	{Name: "App Reliability", Keywords: []string{"reliable", "stability", "consistent", "available", "uptime"}},
}

// NegativeStems flag theme words as product issues when any stem is a
// substring of the word.
var NegativeStems = []string{
	"terrible", "awful", "horrible", "bad", "worst", "hate", "disgusting",
	"useless", "broken", "failed", "disappointed", "frustrated", "annoying",
	"slow", "crash", "bug", "issue", "problem", "complaint", "refund",
}

// StopWords are dropped during theme extraction.
var StopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "can": true, "a": true, "an": true,
	"this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "my": true, "your": true, "his": true,
	"her": true, "its": true, "our": true, "their": true,
}
