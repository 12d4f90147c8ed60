package feedbackHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	feedbackService "PortfolioGolang/internal/api/feedback/service"
	"PortfolioGolang/internal/middleware"
)

type FeedbackHandler struct {
	log             *logrus.Logger
	feedbackService feedbackService.IFeedbackService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	fs feedbackService.IFeedbackService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *FeedbackHandler {
	return &FeedbackHandler{
		log:             log,
		feedbackService: fs,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *FeedbackHandler) Start(srv fiber.Router) {
	feedback := srv.Group("/feedback")
	feedback.Post("/", h.middleware.NewRateLimiter, h.CreateFeedback)
	feedback.Get("/", h.middleware.NewTokenMiddleware, h.ListFeedback)
}
