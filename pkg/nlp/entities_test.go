package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEntities(t *testing.T) {
	extractor := NewEntityExtractor(DefaultBusinessEntities())

	entities := extractor.DetectEntities("We need a Chatbot and some consulting")
	require.Len(t, entities, 2)
	assert.Equal(t, Entity{Text: "chatbot", Label: LabelProduct}, entities[0])
	assert.Equal(t, Entity{Text: "consulting", Label: LabelService}, entities[1])
}

func TestDetectEntitiesOverlapping(t *testing.T) {
	extractor := NewEntityExtractor(DefaultBusinessEntities())

	// "mobile application" contains both "application" and the longer term;
	// every hit is reported.
	entities := extractor.DetectEntities("we want a mobile application")
	labels := make(map[string]string)
	for _, e := range entities {
		labels[e.Text] = e.Label
	}
	assert.Contains(t, labels, "application")
	assert.Contains(t, labels, "mobile application")
}

func TestExtractInterests(t *testing.T) {
	extractor := NewEntityExtractor(DefaultBusinessEntities())

	text := "We are looking for data dashboards, and we need a chatbot."
	entities := extractor.DetectEntities(text)
	interests := extractor.ExtractInterests(text, entities)

	assert.Contains(t, interests, "chatbot")
	assert.Contains(t, interests, "data dashboards")
	assert.Contains(t, interests, "a chatbot")
}

func TestExtractInterestsDeduplicates(t *testing.T) {
	extractor := NewEntityExtractor(DefaultBusinessEntities())

	text := "chatbot chatbot chatbot"
	interests := extractor.ExtractInterests(text, extractor.DetectEntities(text))
	assert.Equal(t, []string{"chatbot"}, interests)
}
