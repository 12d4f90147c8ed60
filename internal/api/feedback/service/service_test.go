package feedbackService

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioGolang/internal/api/feedback"
	feedbackRepository "PortfolioGolang/internal/api/feedback/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/utils"
)

type stubFeedback struct {
	stored []entity.Feedback
}

func (s *stubFeedback) CreateFeedback(_ context.Context, f entity.Feedback) error {
	s.stored = append(s.stored, f)
	return nil
}

func (s *stubFeedback) List(_ context.Context, limit int, offset int) ([]entity.Feedback, error) {
	if offset >= len(s.stored) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.stored) {
		end = len(s.stored)
	}
	return s.stored[offset:end], nil
}

func (s *stubFeedback) Count(_ context.Context) (int, error) {
	return len(s.stored), nil
}

type stubRepo struct {
	feedback *stubFeedback
	commits  int
}

func (s *stubRepo) NewClient(_ bool) (feedbackRepository.Client, error) {
	return feedbackRepository.Client{
		Feedback: s.feedback,
		Commit:   func() error { s.commits++; return nil },
		Rollback: func() error { return nil },
	}, nil
}

type stubSMTP struct {
	mu       sync.Mutex
	notified []entity.Feedback
}

func (s *stubSMTP) SendOTP(_ string, _ string) error { return nil }

func (s *stubSMTP) SendFeedbackNotification(_ string, f entity.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified = append(s.notified, f)
	return nil
}

type stubWhatsapp struct {
	mu        sync.Mutex
	connected bool
	messages  []string
}

func (s *stubWhatsapp) SendMessage(_ context.Context, _ string, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	return nil
}

func (s *stubWhatsapp) Disconnect() error { return nil }

func (s *stubWhatsapp) IsConnected() bool { return s.connected }

func newTestService(t *testing.T, repo *stubRepo, smtpStub *stubSMTP) *feedbackService {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	if repo.feedback == nil {
		repo.feedback = &stubFeedback{}
	}

	svc := NewFeedbackService(logger, repo, smtpStub, nil, utils.New())
	return svc.(*feedbackService)
}

func TestCreateFeedbackStoresEntry(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo, &stubSMTP{})

	err := svc.CreateFeedback(context.Background(), feedback.CreateFeedbackRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a chatbot build.",
	})
	require.NoError(t, err)

	require.Len(t, repo.feedback.stored, 1)
	stored := repo.feedback.stored[0]
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Jane Visitor", stored.Name)
	assert.Equal(t, 1, repo.commits)
}

func TestNotifyAdminSendsEmail(t *testing.T) {
	smtpStub := &stubSMTP{}
	svc := newTestService(t, &stubRepo{}, smtpStub)
	svc.adminEmail = "admin@example.com"

	svc.notifyAdmin("test-request", entity.Feedback{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})

	require.Len(t, smtpStub.notified, 1)
	assert.Equal(t, "Hello", smtpStub.notified[0].Subject)
}

func TestNotifyAdminSkipsDisconnectedWhatsapp(t *testing.T) {
	svc := newTestService(t, &stubRepo{}, &stubSMTP{})
	wa := &stubWhatsapp{connected: false}
	svc.whatsappSender = wa
	svc.adminPhone = "254700000000"

	svc.notifyAdmin("test-request", entity.Feedback{Name: "Jane"})

	assert.Empty(t, wa.messages)
}

func TestNotifyAdminSendsWhatsappWhenConnected(t *testing.T) {
	svc := newTestService(t, &stubRepo{}, &stubSMTP{})
	wa := &stubWhatsapp{connected: true}
	svc.whatsappSender = wa
	svc.adminPhone = "254700000000"

	svc.notifyAdmin("test-request", entity.Feedback{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})

	require.Len(t, wa.messages, 1)
	assert.Contains(t, wa.messages[0], "Jane <jane@example.com>")
}

func TestListFeedbackPagination(t *testing.T) {
	stored := &stubFeedback{}
	for _, subject := range []string{"one", "two", "three"} {
		stored.stored = append(stored.stored, entity.Feedback{Subject: subject})
	}
	svc := newTestService(t, &stubRepo{feedback: stored}, &stubSMTP{})

	result, err := svc.ListFeedback(context.Background(), 2, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Feedback, 1)
	assert.Equal(t, "three", result.Feedback[0].Subject)
}
