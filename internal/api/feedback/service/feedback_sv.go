package feedbackService

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioGolang/internal/api/feedback"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
)

const defaultPerPage = 20

func (s *feedbackService) CreateFeedback(c context.Context, req feedback.CreateFeedbackRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.feedbackRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	feedbackID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	entry := entity.Feedback{
		ID:      feedbackID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := repo.Feedback.CreateFeedback(c, entry); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit feedback")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"feedback_id": feedbackID,
	}).Info("Feedback stored")

	// Notifications are best effort; the visitor already got their 201.
	go s.notifyAdmin(requestID, entry)

	return nil
}

func (s *feedbackService) notifyAdmin(requestID string, entry entity.Feedback) {
	if s.adminEmail != "" {
		if err := s.smtpServer.SendFeedbackNotification(s.adminEmail, entry); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to send feedback email notification")
		}
	}

	if s.whatsappSender == nil || s.adminPhone == "" {
		return
	}
	if !s.whatsappSender.IsConnected() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("WhatsApp sender not connected, skipping notification")
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	message := fmt.Sprintf("New feedback from %s <%s>\n%s\n\n%s",
		entry.Name, entry.Email, entry.Subject, entry.Message)

	if err := s.whatsappSender.SendMessage(c, s.adminPhone, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to send feedback WhatsApp notification")
	}
}

func (s *feedbackService) ListFeedback(c context.Context, page int, perPage int) (feedback.FeedbackListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = defaultPerPage
	}

	repo, err := s.feedbackRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return feedback.FeedbackListResponse{}, err
	}

	list, err := repo.Feedback.List(c, perPage, (page-1)*perPage)
	if err != nil {
		return feedback.FeedbackListResponse{}, err
	}

	total, err := repo.Feedback.Count(c)
	if err != nil {
		return feedback.FeedbackListResponse{}, err
	}

	result := feedback.FeedbackListResponse{
		Feedback: make([]feedback.FeedbackResponse, 0, len(list)),
		Total:    total,
	}
	for _, entry := range list {
		result.Feedback = append(result.Feedback, toFeedbackResponse(entry))
	}

	return result, nil
}
