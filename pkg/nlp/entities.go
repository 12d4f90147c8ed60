package nlp

import (
	"sort"
	"strings"
)

// interestTriggers are the lead-in phrases whose trailing text counts as a
// user interest, up to the next sentence-ending punctuation.
var interestTriggers = []string{
	"interested in", "looking for", "need", "want", "searching for", "seeking",
}

// EntityExtractor scans text for business-domain terms and "I want/need X"
// interest phrases.
type EntityExtractor struct {
	terms  []string
	labels map[string]string
}

func NewEntityExtractor(table map[string]string) *EntityExtractor {
	terms := make([]string, 0, len(table))
	for term := range table {
		terms = append(terms, term)
	}
	// Fixed scan order so results are stable across runs.
	sort.Strings(terms)

	return &EntityExtractor{terms: terms, labels: table}
}

// DetectEntities finds every business table term present in text as a
// case-insensitive substring. Overlapping hits are all reported; no
// de-duplication happens here.
func (e *EntityExtractor) DetectEntities(text string) []Entity {
	lowered := strings.ToLower(text)

	var entities []Entity
	for _, term := range e.terms {
		if strings.Contains(lowered, strings.ToLower(term)) {
			entities = append(entities, Entity{Text: term, Label: e.labels[term]})
		}
	}
	return entities
}

// ExtractInterests collects the text of product/service/technology entities
// plus the tail of every trigger phrase, deduplicated. Insertion-order
// bookkeeping is the session's job.
func (e *EntityExtractor) ExtractInterests(text string, entities []Entity) []string {
	lowered := strings.ToLower(text)

	var interests []string
	seen := make(map[string]struct{})
	add := func(interest string) {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			return
		}
		if _, ok := seen[interest]; ok {
			return
		}
		seen[interest] = struct{}{}
		interests = append(interests, interest)
	}

	for _, entity := range entities {
		switch entity.Label {
		case LabelProduct, LabelService, LabelTechnology:
			add(entity.Text)
		}
	}

	for _, trigger := range interestTriggers {
		idx := strings.Index(lowered, trigger)
		if idx < 0 {
			continue
		}
		tail := lowered[idx+len(trigger):]
		if end := strings.IndexAny(tail, ".?,"); end >= 0 {
			tail = tail[:end]
		}
		add(tail)
	}

	return interests
}
