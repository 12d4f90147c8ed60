package feedbackService

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"PortfolioGolang/internal/api/feedback"
	feedbackRepository "PortfolioGolang/internal/api/feedback/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/smtp"
	"PortfolioGolang/pkg/utils"
	"PortfolioGolang/pkg/whatsapp"
)

type IFeedbackService interface {
	CreateFeedback(c context.Context, req feedback.CreateFeedbackRequest) error
	ListFeedback(c context.Context, page int, perPage int) (feedback.FeedbackListResponse, error)
}

type feedbackService struct {
	log                *logrus.Logger
	feedbackRepository feedbackRepository.Repository
	smtpServer         smtp.ItfSmtp
	whatsappSender     whatsapp.IWhatsappSender
	utils              utils.IUtils
	adminEmail         string
	adminPhone         string
}

// NewFeedbackService wires the feedback pipeline. whatsappSender may be nil
// when the channel is not configured; email is skipped when ADMIN_EMAIL is
// unset.
func NewFeedbackService(
	log *logrus.Logger,
	repo feedbackRepository.Repository,
	smtpServer smtp.ItfSmtp,
	whatsappSender whatsapp.IWhatsappSender,
	utils utils.IUtils,
) IFeedbackService {
	return &feedbackService{
		log:                log,
		feedbackRepository: repo,
		smtpServer:         smtpServer,
		whatsappSender:     whatsappSender,
		utils:              utils,
		adminEmail:         os.Getenv("ADMIN_EMAIL"),
		adminPhone:         os.Getenv("ADMIN_PHONE"),
	}
}

func toFeedbackResponse(f entity.Feedback) feedback.FeedbackResponse {
	return feedback.FeedbackResponse{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
}
