package chatbotService

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	"PortfolioGolang/pkg/nlp"
	"PortfolioGolang/pkg/session"
)

// HandleTurn runs one chat exchange: classify, pick a response, compose and
// personalize it, and append the turn to the session history. All of that
// happens under the per-session lock so concurrent turns for one user
// serialize.
func (s *chatbotService) HandleTurn(ctx context.Context, req chatbot.TurnRequest) (chatbot.TurnResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	userID := req.UserID
	if userID == "" {
		userID = session.DefaultUserID
	}

	profile := s.company.GetProfile(ctx)

	var resp chatbot.TurnResponse
	var turnErr error

	s.sessions.WithSession(userID, func(sess *entity.ChatSession) {
		result := s.classifier.Classify(req.Message, sess)

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"category":   result.Category,
			"faq":        result.FAQ,
		}).Debug("Classified chat turn")

		switch {
		case result.Category == nlp.CategoryIntroduce:
			// Fixed greeting, no template or sentiment handling.
			sess.UserName = result.Name
			sess.ConversationHistory = append(sess.ConversationHistory, entity.ChatTurn{
				Category: nlp.CategoryIntroduce,
				Name:     result.Name,
			})
			resp = chatbot.TurnResponse{
				Response: fmt.Sprintf("Nice to meet you, %s!", result.Name),
				Category: nlp.CategoryIntroduce,
			}

		case result.FAQ:
			sess.ConversationHistory = append(sess.ConversationHistory, entity.ChatTurn{
				Category: result.Category,
				FAQ:      true,
			})
			rendered, err := renderTemplate(result.Response, profile)
			if err != nil {
				turnErr = err
				return
			}
			resp = chatbot.TurnResponse{
				Response: s.personalize(rendered, sess),
				Category: result.Category,
			}

		default:
			response, err := s.pickResponse(req.Message, result.Category, profile)
			if err != nil {
				turnErr = err
				return
			}
			sess.ConversationHistory = append(sess.ConversationHistory, entity.ChatTurn{
				Category: result.Category,
			})
			resp = chatbot.TurnResponse{
				Response: s.personalize(response, sess),
				Category: result.Category,
			}
		}
	})

	if turnErr != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      turnErr.Error(),
		}).Error("Failed to compose chat response")
		return chatbot.TurnResponse{}, turnErr
	}

	return resp, nil
}

// pickResponse applies the sentiment override, falling back to a random
// template for the category. Categories without templates use the default
// clarification set.
func (s *chatbotService) pickResponse(message, category string, profile *entity.CompanyProfile) (string, error) {
	sentiment := s.sentiment.Analyze(message)
	if sentiment.Polarity < -0.5 {
		return chatbot.SympathyResponse, nil
	}
	if sentiment.Polarity > 0.5 {
		return chatbot.EnthusiasmResponse, nil
	}

	variants, ok := s.templates[category]
	if !ok || len(variants) == 0 {
		variants = s.templates[nlp.CategoryDefault]
	}
	template := variants[s.randIntn(len(variants))]

	return renderTemplate(template, profile)
}

// GetSession reports the session shape without exposing raw history.
func (s *chatbotService) GetSession(ctx context.Context, userID string) (chatbot.SessionResponse, error) {
	if userID == "" {
		userID = session.DefaultUserID
	}

	snap, ok := s.sessions.Snapshot(userID)
	if !ok {
		return chatbot.SessionResponse{}, chatbot.ErrSessionNotFound
	}

	return chatbot.SessionResponse{
		UserID:    snap.UserID,
		UserName:  snap.UserName,
		Interests: snap.Interests,
		Turns:     len(snap.ConversationHistory),
	}, nil
}
