package chatbotService

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/nlp"
	"PortfolioGolang/pkg/session"
)

type stubClassifier struct {
	result nlp.Result
}

func (s *stubClassifier) Classify(text string, sess *entity.ChatSession) nlp.Result {
	return s.result
}

type stubSentiment struct {
	polarity float64
}

func (s *stubSentiment) Analyze(text string) nlp.Sentiment {
	return nlp.Sentiment{Polarity: s.polarity}
}

type stubCompany struct {
	profile *entity.CompanyProfile
}

func (s *stubCompany) GetProfile(ctx context.Context) *entity.CompanyProfile { return s.profile }
func (s *stubCompany) Invalidate()                                           {}

func testProfile() *entity.CompanyProfile {
	return &entity.CompanyProfile{
		Name:        "Acme Labs",
		Industry:    "robotics",
		Mission:     "build robots",
		Products:    []string{"Robot Arm", "Robot Leg"},
		Services:    []string{"Robot Repair"},
		ContactInfo: "hello@acme.test",
		Phone:       "+1 555 0100",
		Address:     "Testville",
		Website:     "https://acme.test",
		About:       "about acme",
	}
}

func newTestService(classifier nlp.IClassifier, sentiment nlp.ISentimentAnalyzer) (*chatbotService, session.ISession) {
	sessions := session.New()
	svc := NewChatbotService(
		log.NewLogger(),
		classifier,
		sentiment,
		&stubCompany{profile: testProfile()},
		sessions,
	).(*chatbotService)
	svc.randFloat = func() float64 { return 1 } // disable name prefix by default
	svc.randIntn = func(n int) int { return 0 } // deterministic template pick
	return svc, sessions
}

func TestRenderTemplate(t *testing.T) {
	profile := testProfile()

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "company name",
			template: "Welcome to {company_name}!",
			want:     "Welcome to Acme Labs!",
		},
		{
			name:     "lists flatten comma joined",
			template: "{products_list} / {services_list}",
			want:     "Robot Arm, Robot Leg / Robot Repair",
		},
		{
			name:     "support phone resolves to phone",
			template: "Call {support_phone} or {phone}",
			want:     "Call +1 555 0100 or +1 555 0100",
		},
		{
			name:     "no placeholders",
			template: "Plain text.",
			want:     "Plain text.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderTemplate(tt.template, profile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTemplateUnknownPlaceholder(t *testing.T) {
	_, err := renderTemplate("Hello {nonexistent_key}", testProfile())
	require.Error(t, err)

	var phErr *chatbot.UnknownPlaceholderError
	require.ErrorAs(t, err, &phErr)
	assert.Equal(t, "nonexistent_key", phErr.Placeholder)
}

func TestAllTemplatesRender(t *testing.T) {
	profile := testProfile()
	for category, variants := range chatbot.ResponseTemplates() {
		for _, template := range variants {
			_, err := renderTemplate(template, profile)
			assert.NoError(t, err, "category %s template %q", category, template)
		}
	}
}

func TestAllFAQResponsesRender(t *testing.T) {
	profile := testProfile()

	// FAQ responses are templates too; every one must stay inside the
	// closed placeholder set.
	table := nlp.DefaultFAQTable()
	for _, q := range []string{
		"what technologies do you use", "how do i get started",
		"can you build custom software", "do you offer maintenance",
		"what makes you different", "what's your company mission",
		"how do i contact support", "are you open to partnerships",
		"what is your refund policy", "how do you ensure data privacy",
		"what is your typical project timeline",
	} {
		entry, ok := table.Match(q)
		require.True(t, ok, q)
		_, err := renderTemplate(entry.Response, profile)
		assert.NoError(t, err, q)
	}
}

func TestHandleTurnIntroduce(t *testing.T) {
	svc, sessions := newTestService(
		&stubClassifier{result: nlp.Result{Category: nlp.CategoryIntroduce, Name: "Bob"}},
		&stubSentiment{polarity: -1}, // must be ignored for introductions
	)

	resp, err := svc.HandleTurn(context.Background(), chatbot.TurnRequest{Message: "my name is bob", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Nice to meet you, Bob!", resp.Response)
	assert.Equal(t, nlp.CategoryIntroduce, resp.Category)

	snap, ok := sessions.Snapshot("u1")
	require.True(t, ok)
	assert.Equal(t, "Bob", snap.UserName)
	require.Len(t, snap.ConversationHistory, 1)
	assert.Equal(t, entity.ChatTurn{Category: nlp.CategoryIntroduce, Name: "Bob"}, snap.ConversationHistory[0])
}

func TestHandleTurnFAQSkipsSentimentOverride(t *testing.T) {
	svc, sessions := newTestService(
		&stubClassifier{result: nlp.Result{
			Category: nlp.CategoryServices,
			FAQ:      true,
			Response: "Yes, {company_name} offers maintenance.",
		}},
		&stubSentiment{polarity: -1},
	)

	resp, err := svc.HandleTurn(context.Background(), chatbot.TurnRequest{Message: "do you offer maintenance", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "Yes, Acme Labs offers maintenance.", resp.Response)

	snap, _ := sessions.Snapshot("u1")
	require.Len(t, snap.ConversationHistory, 1)
	assert.True(t, snap.ConversationHistory[0].FAQ)
}

func TestHandleTurnSentimentOverride(t *testing.T) {
	tests := []struct {
		name     string
		polarity float64
		want     string
	}{
		{"strong negative", -0.8, chatbot.SympathyResponse},
		{"strong positive", 0.8, chatbot.EnthusiasmResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(
				&stubClassifier{result: nlp.Result{Category: nlp.CategoryPricing}},
				&stubSentiment{polarity: tt.polarity},
			)

			resp, err := svc.HandleTurn(context.Background(), chatbot.TurnRequest{Message: "whatever", UserID: "u1"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Response)
			// Category is still the classified one even when overridden.
			assert.Equal(t, nlp.CategoryPricing, resp.Category)
		})
	}
}

func TestHandleTurnBoundaryPolarityUsesTemplate(t *testing.T) {
	svc, _ := newTestService(
		&stubClassifier{result: nlp.Result{Category: nlp.CategoryGreeting}},
		&stubSentiment{polarity: -0.5}, // strictly-below threshold only
	)

	resp, err := svc.HandleTurn(context.Background(), chatbot.TurnRequest{Message: "hi", UserID: "u1"})
	require.NoError(t, err)
	assert.NotEqual(t, chatbot.SympathyResponse, resp.Response)
	assert.Contains(t, resp.Response, "Acme Labs")
}

func TestHandleTurnPersonalization(t *testing.T) {
	svc, sessions := newTestService(
		&stubClassifier{result: nlp.Result{Category: nlp.CategoryGreeting}},
		&stubSentiment{},
	)
	svc.randFloat = func() float64 { return 0 } // always prefix the name

	sessions.WithSession("u1", func(sess *entity.ChatSession) {
		sess.UserName = "Alice"
		sess.Interests = []string{"chatbot", "web design"}
	})

	resp, err := svc.HandleTurn(context.Background(), chatbot.TurnRequest{Message: "hello", UserID: "u1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Response, "Alice, h"), resp.Response)
	assert.Contains(t, resp.Response, "\n\nBased on your interests in chatbot, web design, how can I assist you further?")
}

func TestHandleTurnNamePrefixSkippedByProbability(t *testing.T) {
	svc, sessions := newTestService(
		&stubClassifier{result: nlp.Result{Category: nlp.CategoryGreeting}},
		&stubSentiment{},
	)
	svc.randFloat = func() float64 { return 0.9 }

	sessions.WithSession("u1", func(sess *entity.ChatSession) {
		sess.UserName = "Alice"
	})

	resp, err := svc.HandleTurn(context.Background(), chatbot.TurnRequest{Message: "hello", UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(resp.Response, "Alice,"))
}

func TestHandleTurnDefaultsUserID(t *testing.T) {
	svc, sessions := newTestService(
		&stubClassifier{result: nlp.Result{Category: nlp.CategoryDefault}},
		&stubSentiment{},
	)

	_, err := svc.HandleTurn(context.Background(), chatbot.TurnRequest{Message: ""})
	require.NoError(t, err)

	snap, ok := sessions.Snapshot(session.DefaultUserID)
	require.True(t, ok)
	assert.Len(t, snap.ConversationHistory, 1)
}

func TestGetSession(t *testing.T) {
	svc, sessions := newTestService(&stubClassifier{}, &stubSentiment{})

	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, chatbot.ErrSessionNotFound)

	sessions.WithSession("u1", func(sess *entity.ChatSession) {
		sess.UserName = "Alice"
		sess.ConversationHistory = []entity.ChatTurn{{Category: "greeting"}}
	})

	resp, err := svc.GetSession(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.UserName)
	assert.Equal(t, 1, resp.Turns)
}
