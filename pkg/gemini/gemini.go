package gemini

import (
	"context"
	"errors"
	"os"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const defaultEmbeddingModel = "text-embedding-004"

// Embedder wraps the Gemini embedding model behind the local embedder
// contract, so the similarity index can swap between the hash embedder and a
// real semantic model with an env flag.
type Embedder struct {
	client *genai.Client
	model  *genai.EmbeddingModel
}

func NewEmbedder(ctx context.Context) (*Embedder, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	modelName := os.Getenv("GEMINI_EMBEDDING_MODEL")
	if modelName == "" {
		modelName = defaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logrus.WithError(err).Error("Failed to create Gemini client")
		return nil, err
	}

	logrus.Info("Gemini embedding model configured: " + modelName)

	return &Embedder{
		client: client,
		model:  client.EmbeddingModel(modelName),
	}, nil
}

func (e *Embedder) Embed(text string) ([]float32, error) {
	res, err := e.model.EmbedContent(context.Background(), genai.Text(text))
	if err != nil {
		return nil, err
	}
	if res.Embedding == nil {
		return nil, errors.New("empty embedding response")
	}
	return res.Embedding.Values, nil
}

func (e *Embedder) Close() error {
	return e.client.Close()
}
