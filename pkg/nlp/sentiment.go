package nlp

import "github.com/jonreiter/govader"

// vaderAnalyzer scores text with the VADER lexicon. Polarity is the compound
// score (already in [-1, 1]); subjectivity is approximated as the proportion
// of the text that is not neutral.
type vaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewSentimentAnalyzer() ISentimentAnalyzer {
	return &vaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderAnalyzer) Analyze(text string) Sentiment {
	scores := v.analyzer.PolarityScores(text)
	return Sentiment{
		Polarity:     scores.Compound,
		Subjectivity: 1 - scores.Neutral,
	}
}
