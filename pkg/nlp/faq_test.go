package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQTableExactMatch(t *testing.T) {
	table := DefaultFAQTable()

	entry, ok := table.Match("What technologies do you use")
	require.True(t, ok)
	assert.Equal(t, CategoryCapabilities, entry.Category)
	assert.Contains(t, entry.Response, "{company_name}")
}

func TestFAQTableFuzzyMatch(t *testing.T) {
	table := DefaultFAQTable()

	tests := []struct {
		name     string
		input    string
		category string
	}{
		{
			name:     "trailing punctuation",
			input:    "what technologies do you use?",
			category: CategoryCapabilities,
		},
		{
			name:     "minor typo",
			input:    "how do i get startd",
			category: CategoryDefault,
		},
		{
			name:     "extra politeness",
			input:    "so, what is your refund policy",
			category: CategoryRefundPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := table.Match(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.category, entry.Category)
		})
	}
}

func TestFAQTableNoMatch(t *testing.T) {
	table := DefaultFAQTable()

	_, ok := table.Match("banana smoothie recipe please")
	assert.False(t, ok)
}

func TestFAQTableThresholdIsStrict(t *testing.T) {
	table := NewFAQTable([]FAQEntry{
		{Question: "abcde", Response: "r", Category: CategoryDefault},
	})

	// "abcdX" vs "abcde": ratio 2*4/10 = 80, not strictly above the
	// threshold, so it must not match.
	_, ok := table.Match("abcdX")
	assert.False(t, ok)

	// The exact question still matches via the direct lookup.
	_, ok = table.Match("ABCDE")
	assert.True(t, ok)
}

func TestFAQTableFirstMaxWins(t *testing.T) {
	table := NewFAQTable([]FAQEntry{
		{Question: "where is your office located", Response: "first", Category: CategoryContact},
		{Question: "where is your office situated", Response: "second", Category: CategoryAbout},
	})

	entry, ok := table.Match("where is your office locatd")
	require.True(t, ok)
	assert.Equal(t, "first", entry.Response)
}
