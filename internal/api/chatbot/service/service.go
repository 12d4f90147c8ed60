package chatbotService

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/pkg/company"
	"PortfolioGolang/pkg/nlp"
	"PortfolioGolang/pkg/session"
)

type IChatbotService interface {
	HandleTurn(ctx context.Context, req chatbot.TurnRequest) (chatbot.TurnResponse, error)
	GetSession(ctx context.Context, userID string) (chatbot.SessionResponse, error)
}

type chatbotService struct {
	log        *logrus.Logger
	classifier nlp.IClassifier
	sentiment  nlp.ISentimentAnalyzer
	company    company.ICompany
	sessions   session.ISession
	templates  map[string][]string

	// Randomness seams, overridden in tests.
	randFloat func() float64
	randIntn  func(n int) int
}

func NewChatbotService(
	log *logrus.Logger,
	classifier nlp.IClassifier,
	sentiment nlp.ISentimentAnalyzer,
	companyClient company.ICompany,
	sessions session.ISession,
) IChatbotService {
	return &chatbotService{
		log:        log,
		classifier: classifier,
		sentiment:  sentiment,
		company:    companyClient,
		sessions:   sessions,
		templates:  chatbot.ResponseTemplates(),
		randFloat:  rand.Float64,
		randIntn:   rand.Intn,
	}
}
