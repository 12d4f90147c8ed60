package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentAnalyzer(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	positive := analyzer.Analyze("This is wonderful, amazing and fantastic, I love it!")
	assert.Greater(t, positive.Polarity, 0.5)

	negative := analyzer.Analyze("This is horrible, terrible and awful, I hate it.")
	assert.Less(t, negative.Polarity, -0.5)

	neutral := analyzer.Analyze("The report covers the third quarter.")
	assert.InDelta(t, 0.0, neutral.Polarity, 0.3)

	assert.GreaterOrEqual(t, positive.Subjectivity, 0.0)
	assert.LessOrEqual(t, positive.Subjectivity, 1.0)
}
