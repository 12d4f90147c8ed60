package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioGolang/database/postgres"
	authHandler "PortfolioGolang/internal/api/auth/handler"
	authRepository "PortfolioGolang/internal/api/auth/repository"
	authService "PortfolioGolang/internal/api/auth/service"
	chatbotHandler "PortfolioGolang/internal/api/chatbot/handler"
	chatbotService "PortfolioGolang/internal/api/chatbot/service"
	feedbackHandler "PortfolioGolang/internal/api/feedback/handler"
	feedbackRepository "PortfolioGolang/internal/api/feedback/repository"
	feedbackService "PortfolioGolang/internal/api/feedback/service"
	projectHandler "PortfolioGolang/internal/api/project/handler"
	projectRepository "PortfolioGolang/internal/api/project/repository"
	projectService "PortfolioGolang/internal/api/project/service"
	"PortfolioGolang/internal/middleware"
	"PortfolioGolang/pkg/bcrypt"
	"PortfolioGolang/pkg/company"
	"PortfolioGolang/pkg/gemini"
	"PortfolioGolang/pkg/google"
	"PortfolioGolang/pkg/nlp"
	"PortfolioGolang/pkg/redis"
	"PortfolioGolang/pkg/s3"
	"PortfolioGolang/pkg/session"
	"PortfolioGolang/pkg/smtp"
	"PortfolioGolang/pkg/utils"
	"PortfolioGolang/pkg/whatsapp"
)

const (
	sessionMaxIdle       = time.Hour
	sessionPruneInterval = 10 * time.Minute
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	s3Client       s3.ItfS3
	companyClient  company.ICompany
	sessions       session.ISession
	classifier     nlp.IClassifier
	sentiment      nlp.ISentimentAnalyzer
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithWhatsappClient pairs a WhatsApp device for feedback notifications. Use
// only when WHATSAPP_ENABLED is set; the connection blocks until paired.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithCompanyProfile() ServerOption {
	return func(s *Server) error {
		s.companyClient = company.New()
		return nil
	}
}

func WithSessions() ServerOption {
	return func(s *Server) error {
		s.sessions = session.New()
		return nil
	}
}

// WithChatbotNLP builds the classification pipeline. When GEMINI_API_KEY is
// set the semantic fallback uses Gemini embeddings; otherwise it runs on the
// local hash embedder.
func WithChatbotNLP() ServerOption {
	return func(s *Server) error {
		s.sentiment = nlp.NewSentimentAnalyzer()

		corpus := nlp.DefaultCorpus()
		var embedder nlp.Embedder = nlp.NewHashEmbedder()

		if os.Getenv("GEMINI_API_KEY") != "" {
			geminiEmbedder, err := gemini.NewEmbedder(context.Background())
			if err != nil {
				if s.log != nil {
					s.log.Warnf("Failed to create Gemini embedder, falling back to local embeddings: %v", err)
				}
			} else {
				embedder = geminiEmbedder
			}
		}

		s.classifier = nlp.NewClassifier(
			nlp.DefaultFAQTable(),
			corpus,
			nlp.DefaultFollowUpPhrases(),
			nlp.NewEntityExtractor(nlp.DefaultBusinessEntities()),
			nlp.NewSimilarityIndex(embedder, corpus),
		)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.bcryptUtils, s.redisServer, s.smtpMailer, s.googleProvider, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Chatbot Domain
	chatbotServices := chatbotService.NewChatbotService(s.log, s.classifier, s.sentiment, s.companyClient, s.sessions)
	chatbotHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, chatbotServices)

	// Project Domain
	projectRepo := projectRepository.New(s.db, s.log)
	projectServices := projectService.NewProjectService(s.log, projectRepo, s.s3Client, s.utils)
	projectHandlers := projectHandler.New(s.log, projectServices, s.validator, s.middleware)

	// Feedback Domain
	feedbackRepo := feedbackRepository.New(s.db, s.log)
	feedbackServices := feedbackService.NewFeedbackService(s.log, feedbackRepo, s.smtpMailer, s.whatsappClient, s.utils)
	feedbackHandlers := feedbackHandler.New(s.log, feedbackServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, chatbotHandlers, projectHandlers, feedbackHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	if s.sessions != nil {
		go s.pruneSessions()
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) pruneSessions() {
	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()

	for range ticker.C {
		if pruned := s.sessions.PruneIdle(sessionMaxIdle); pruned > 0 {
			s.log.WithFields(logrus.Fields{
				"pruned": pruned,
			}).Info("Pruned idle chat sessions")
		}
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
