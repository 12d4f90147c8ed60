package nlp

import "PortfolioGolang/internal/entity"

// Result is the outcome of classifying one user message. Response is only set
// for FAQ matches, whose answers bypass the generic template table.
type Result struct {
	Category string `json:"category"`
	Name     string `json:"name,omitempty"`
	FAQ      bool   `json:"faq,omitempty"`
	Response string `json:"response,omitempty"`
}

// Input carries everything a matcher may consult for one classification pass.
// Text is already normalized (lower-cased, trimmed); Entities were detected
// once up front so matchers don't rescan.
type Input struct {
	Text     string
	Entities []Entity
	Session  *entity.ChatSession
}

// Matcher is one strategy in the classification chain. Matchers are evaluated
// in a fixed order and the first success wins.
type Matcher interface {
	TryMatch(in Input) (Result, bool)
}

// Entity is a business-domain term found in user text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Entity labels used by the business entity table.
const (
	LabelProduct    = "product"
	LabelService    = "service"
	LabelTechnology = "technology"
)

// CategoryExamples binds an intent category to its example utterances. The
// corpus is an ordered slice because iteration order is the keyword-match
// tie-break.
type CategoryExamples struct {
	Category string
	Examples []string
}

// FAQEntry is a canned answer for a canonical question, matched exactly or by
// fuzzy ratio.
type FAQEntry struct {
	Question string
	Response string
	Category string
}

// Sentiment holds polarity in [-1, 1] and subjectivity in [0, 1].
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// ISentimentAnalyzer scores the emotional polarity of user text.
type ISentimentAnalyzer interface {
	Analyze(text string) Sentiment
}

// IClassifier turns free text plus session context into an intent category.
type IClassifier interface {
	Classify(text string, session *entity.ChatSession) Result
}
