package nlp

import (
	"regexp"
	"strings"

	"PortfolioGolang/internal/entity"
)

// Classifier runs the matcher chain in a fixed order and falls back to the
// default category when nothing claims the input. The chain order matters:
// FAQ answers win over everything, introductions over keywords, keywords over
// the semantic fallback, and conversation context only applies when the
// direct matchers all pass.
type Classifier struct {
	extractor *EntityExtractor
	matchers  []Matcher
}

func NewClassifier(faq *FAQTable, corpus []CategoryExamples, followUps []FollowUpPhrases, extractor *EntityExtractor, index *SimilarityIndex) *Classifier {
	return &Classifier{
		extractor: extractor,
		matchers: []Matcher{
			&faqMatcher{table: faq},
			&introductionMatcher{},
			newKeywordMatcher(corpus),
			&similarityMatcher{index: index},
			&followUpMatcher{phrases: followUps},
			&entityMatcher{},
		},
	}
}

// NewDefaultClassifier wires the built-in corpus, FAQ table, follow-up
// phrases and the local hash embedder.
func NewDefaultClassifier() *Classifier {
	corpus := DefaultCorpus()
	return NewClassifier(
		DefaultFAQTable(),
		corpus,
		DefaultFollowUpPhrases(),
		NewEntityExtractor(DefaultBusinessEntities()),
		NewSimilarityIndex(NewHashEmbedder(), corpus),
	)
}

func (c *Classifier) Classify(text string, session *entity.ChatSession) Result {
	cleaned := normalize(text)
	if cleaned == "" {
		return Result{Category: CategoryDefault}
	}

	entities := c.extractor.DetectEntities(text)
	if interests := c.extractor.ExtractInterests(text, entities); len(interests) > 0 {
		session.AddInterests(interests)
	}

	in := Input{Text: cleaned, Entities: entities, Session: session}
	for _, m := range c.matchers {
		if result, ok := m.TryMatch(in); ok {
			return result
		}
	}
	return Result{Category: CategoryDefault}
}

type faqMatcher struct {
	table *FAQTable
}

func (m *faqMatcher) TryMatch(in Input) (Result, bool) {
	entry, ok := m.table.Match(in.Text)
	if !ok {
		return Result{}, false
	}
	return Result{Category: entry.Category, FAQ: true, Response: entry.Response}, true
}

var introPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:my name is|i am|i'm|call me) (\w+)`),
	regexp.MustCompile(`(\w+) (?:here|speaking)`),
}

type introductionMatcher struct{}

func (m *introductionMatcher) TryMatch(in Input) (Result, bool) {
	for _, pattern := range introPatterns {
		match := pattern.FindStringSubmatch(in.Text)
		if match != nil {
			return Result{Category: CategoryIntroduce, Name: capitalize(match[1])}, true
		}
	}
	return Result{}, false
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// keywordMatcher matches when a corpus example occurs in the input on word
// boundaries, or when the input is a substring of an example. Checked in
// corpus order so earlier categories win ties. Plain substring containment in
// the example-in-input direction lets two-letter examples like "yo" claim any
// sentence containing "you", so that direction is word-bounded.
type keywordMatcher struct {
	categories []keywordCategory
}

type keywordCategory struct {
	category string
	terms    []string
	patterns []*regexp.Regexp
}

func newKeywordMatcher(corpus []CategoryExamples) *keywordMatcher {
	m := &keywordMatcher{}
	for _, ce := range corpus {
		kc := keywordCategory{category: ce.Category, terms: ce.Examples}
		for _, term := range ce.Examples {
			kc.patterns = append(kc.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
		}
		m.categories = append(m.categories, kc)
	}
	return m
}

func (m *keywordMatcher) TryMatch(in Input) (Result, bool) {
	for _, kc := range m.categories {
		for i, term := range kc.terms {
			if kc.patterns[i].MatchString(in.Text) || strings.Contains(term, in.Text) {
				return Result{Category: kc.category}, true
			}
		}
	}
	return Result{}, false
}

type similarityMatcher struct {
	index *SimilarityIndex
}

func (m *similarityMatcher) TryMatch(in Input) (Result, bool) {
	if m.index == nil {
		return Result{}, false
	}
	category, score := m.index.BestCategory(in.Text)
	if category == "" || score <= similarityThreshold {
		return Result{}, false
	}
	return Result{Category: category}, true
}

// followUpMatcher resolves short context-dependent inputs ("how much?",
// "tell me more") against the previous turn's category. It only fires when
// the previous category matches the follow-up topic, or when the previous
// turn was a default or redirect and the topic is therefore a fresh lead.
type followUpMatcher struct {
	phrases []FollowUpPhrases
}

func (m *followUpMatcher) TryMatch(in Input) (Result, bool) {
	last := in.Session.LastCategory()
	if last == "" {
		return Result{}, false
	}
	for _, fp := range m.phrases {
		for _, phrase := range fp.Phrases {
			if !strings.Contains(in.Text, phrase) {
				continue
			}
			if last == fp.Category || last == CategoryDefault || last == CategoryRedirect {
				return Result{Category: fp.Category}, true
			}
		}
	}
	return Result{}, false
}

type entityMatcher struct{}

func (m *entityMatcher) TryMatch(in Input) (Result, bool) {
	for _, ent := range in.Entities {
		switch ent.Label {
		case LabelProduct:
			return Result{Category: CategoryProducts}, true
		case LabelService:
			return Result{Category: CategoryServices}, true
		}
	}
	return Result{}, false
}
