package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioGolang/internal/entity"
)

// newBareClassifier builds a classifier with no FAQ entries, no corpus and no
// similarity index, leaving only the matcher under test in play.
func newBareClassifier() *Classifier {
	return NewClassifier(
		NewFAQTable(nil),
		nil,
		DefaultFollowUpPhrases(),
		NewEntityExtractor(DefaultBusinessEntities()),
		nil,
	)
}

func TestClassifyEmptyInput(t *testing.T) {
	c := NewDefaultClassifier()

	for _, input := range []string{"", "   ", "\t\n"} {
		result := c.Classify(input, &entity.ChatSession{})
		assert.Equal(t, CategoryDefault, result.Category)
	}
}

func TestClassifyIntroduction(t *testing.T) {
	c := newBareClassifier()

	tests := []struct {
		input string
		name  string
	}{
		{"my name is bob", "Bob"},
		{"My Name Is ALICE", "Alice"},
		{"call me dave", "Dave"},
		{"charlie here", "Charlie"},
		{"frank speaking", "Frank"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := c.Classify(tt.input, &entity.ChatSession{})
			require.Equal(t, CategoryIntroduce, result.Category)
			assert.Equal(t, tt.name, result.Name)
		})
	}
}

func TestClassifyKeywordMatch(t *testing.T) {
	c := NewClassifier(
		NewFAQTable(nil),
		DefaultCorpus(),
		DefaultFollowUpPhrases(),
		NewEntityExtractor(DefaultBusinessEntities()),
		nil,
	)

	tests := []struct {
		input    string
		category string
	}{
		{"hello", CategoryGreeting},
		{"how much does it cost", CategoryPricing},
		{"how long does it take", CategoryTimeline},
		{"thank you", CategoryThankYou},
		{"what products do you offer", CategoryProducts},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := c.Classify(tt.input, &entity.ChatSession{})
			assert.Equal(t, tt.category, result.Category)
		})
	}
}

func TestClassifyKeywordOrderBreaksTies(t *testing.T) {
	corpus := []CategoryExamples{
		{Category: CategoryProducts, Examples: []string{"deluxe widgets"}},
		{Category: CategoryServices, Examples: []string{"deluxe widgets"}},
	}
	c := NewClassifier(NewFAQTable(nil), corpus, nil, NewEntityExtractor(nil), nil)

	result := c.Classify("show me deluxe widgets", &entity.ChatSession{})
	assert.Equal(t, CategoryProducts, result.Category)
}

func TestClassifyFAQWinsOverKeywords(t *testing.T) {
	c := NewDefaultClassifier()

	result := c.Classify("do you offer maintenance", &entity.ChatSession{})
	require.True(t, result.FAQ)
	assert.Equal(t, CategoryServices, result.Category)
	assert.NotEmpty(t, result.Response)
}

func TestClassifyFollowUp(t *testing.T) {
	c := newBareClassifier()

	tests := []struct {
		name     string
		input    string
		last     string
		category string
	}{
		{"same topic continues", "ok but what about the cost", CategoryPricing, CategoryPricing},
		{"fresh lead after default", "ok but what about the cost", CategoryDefault, CategoryPricing},
		{"fresh lead after redirect", "ok and the deadline", CategoryRedirect, CategoryTimeline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &entity.ChatSession{
				ConversationHistory: []entity.ChatTurn{{Category: tt.last}},
			}
			result := c.Classify(tt.input, session)
			assert.Equal(t, tt.category, result.Category)
		})
	}
}

func TestClassifyFollowUpRequiresMatchingContext(t *testing.T) {
	c := newBareClassifier()

	session := &entity.ChatSession{
		ConversationHistory: []entity.ChatTurn{{Category: CategoryGreeting}},
	}
	result := c.Classify("ok but what about the cost", session)
	assert.Equal(t, CategoryDefault, result.Category)

	// A fresh session has no context either.
	result = c.Classify("ok but what about the cost", &entity.ChatSession{})
	assert.Equal(t, CategoryDefault, result.Category)
}

func TestClassifyEntityFallback(t *testing.T) {
	c := newBareClassifier()

	tests := []struct {
		input    string
		category string
	}{
		{"that chatbot demo was cool", CategoryProducts},
		{"some consulting would be good", CategoryServices},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := c.Classify(tt.input, &entity.ChatSession{})
			assert.Equal(t, tt.category, result.Category)
		})
	}
}

func TestClassifyRecordsInterests(t *testing.T) {
	c := newBareClassifier()
	session := &entity.ChatSession{}

	c.Classify("we are searching for data analytics tools.", session)
	assert.Contains(t, session.Interests, "data analytics tools")

	// Repeats must not duplicate.
	c.Classify("still searching for data analytics tools.", session)
	assert.Equal(t, 1, countOf(session.Interests, "data analytics tools"))
}

func countOf(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}
