package nlp

import (
	"math"
	"strings"
)

// Embedder converts text to a vector for cosine comparison. The production
// wiring can plug in a remote embedding model; the default is a local
// deterministic embedder so the classifier works without any model files.
type Embedder interface {
	Embed(text string) ([]float32, error)
}

// similarityThreshold is the minimum per-category cosine score the semantic
// fallback must exceed before it is trusted.
const similarityThreshold = 0.5

const hashEmbedDim = 256

// HashEmbedder produces deterministic embeddings from token hashes. It is not
// a semantic model, but it gives stable, order-sensitive vectors that make
// near-identical phrasings score high and unrelated text score low.
type HashEmbedder struct {
	dim int
}

func NewHashEmbedder() *HashEmbedder {
	return &HashEmbedder{dim: hashEmbedDim}
}

func (e *HashEmbedder) Embed(text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	text = normalize(text)

	for i, token := range strings.Fields(text) {
		h := tokenHash(token)
		for j := 0; j < 3; j++ {
			idx := (h + i*31 + j*17) % e.dim
			if idx < 0 {
				idx = -idx
			}
			vec[idx] += float32(h%256) / 256.0
		}
	}

	// Character-position features keep word order from washing out entirely.
	for i, char := range text {
		idx := (int(char)*7 + i*11) % e.dim
		if idx < 0 {
			idx = -idx
		}
		vec[idx] += float32(char) / 512.0
	}

	return l2Normalize(vec), nil
}

func tokenHash(token string) int {
	h := 2166136261
	for _, c := range token {
		h ^= int(c)
		h *= 16777619
		h &= 0x7fffffff
	}
	return h
}

func l2Normalize(vec []float32) []float32 {
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		inv := float32(1.0 / math.Sqrt(float64(norm)))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SimilarityIndex holds the corpus pre-embedded per category so per-turn
// scoring only embeds the input once.
type SimilarityIndex struct {
	embedder Embedder
	byCat    []categoryVectors
}

type categoryVectors struct {
	category string
	vectors  [][]float32
}

// NewSimilarityIndex embeds every corpus example up front. Examples the
// embedder rejects are skipped; an index over a partial corpus still works.
func NewSimilarityIndex(embedder Embedder, corpus []CategoryExamples) *SimilarityIndex {
	idx := &SimilarityIndex{embedder: embedder}
	for _, ce := range corpus {
		cv := categoryVectors{category: ce.Category}
		for _, example := range ce.Examples {
			vec, err := embedder.Embed(example)
			if err != nil {
				continue
			}
			cv.vectors = append(cv.vectors, vec)
		}
		idx.byCat = append(idx.byCat, cv)
	}
	return idx
}

// BestCategory returns the category whose best example scores highest against
// text, with that score. The caller decides whether the score clears the
// acceptance threshold.
func (idx *SimilarityIndex) BestCategory(text string) (string, float64) {
	vec, err := idx.embedder.Embed(text)
	if err != nil {
		return "", 0
	}

	bestCategory := ""
	bestScore := 0.0
	for _, cv := range idx.byCat {
		for _, example := range cv.vectors {
			if score := cosine(vec, example); score > bestScore {
				bestScore = score
				bestCategory = cv.category
			}
		}
	}
	return bestCategory, bestScore
}
