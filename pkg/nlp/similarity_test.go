package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedderDeterministic(t *testing.T) {
	e := NewHashEmbedder()

	a, err := e.Embed("what products do you offer")
	require.NoError(t, err)
	b, err := e.Embed("what products do you offer")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.InDelta(t, 1.0, cosine(a, b), 1e-6)
}

func TestHashEmbedderNormalizesInput(t *testing.T) {
	e := NewHashEmbedder()

	a, err := e.Embed("Hello There")
	require.NoError(t, err)
	b, err := e.Embed("  hello there ")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cosine(a, b), 1e-6)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-6)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 3}), 1e-6)
	assert.Equal(t, 0.0, cosine([]float32{1, 0}, []float32{1, 0, 0}))
	assert.Equal(t, 0.0, cosine([]float32{0, 0}, []float32{1, 0}))
}

func TestSimilarityIndexExactExample(t *testing.T) {
	idx := NewSimilarityIndex(NewHashEmbedder(), DefaultCorpus())

	category, score := idx.BestCategory("what products do you offer")
	assert.Equal(t, CategoryProducts, category)
	assert.Greater(t, score, similarityThreshold)
}

type fixedEmbedder struct {
	vectors map[string][]float32
}

func (f *fixedEmbedder) Embed(text string) ([]float32, error) {
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return []float32{0, 0, 1}, nil
}

func TestSimilarityIndexPicksHighestScore(t *testing.T) {
	embedder := &fixedEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0, 0},
		"beta":  {0, 1, 0},
		"query": {0.9, 0.1, 0},
	}}
	idx := NewSimilarityIndex(embedder, []CategoryExamples{
		{Category: CategoryProducts, Examples: []string{"alpha"}},
		{Category: CategoryServices, Examples: []string{"beta"}},
	})

	category, score := idx.BestCategory("query")
	assert.Equal(t, CategoryProducts, category)
	assert.Greater(t, score, 0.9)
}
