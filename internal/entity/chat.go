package entity

import "time"

// ChatTurn is one classified exchange in a chat session. Turns are appended
// and never mutated.
type ChatTurn struct {
	Category string `json:"category"`
	Name     string `json:"name,omitempty"`
	FAQ      bool   `json:"faq,omitempty"`
}

// ChatSession is the in-memory per-user conversation state. It lives for the
// process lifetime; see pkg/session for locking rules.
type ChatSession struct {
	UserID              string
	ConversationHistory []ChatTurn
	UserName            string
	Interests           []string
	LastInteraction     time.Time
}

// LastCategory returns the category of the most recent turn, or "" for a
// fresh session.
func (s *ChatSession) LastCategory() string {
	if len(s.ConversationHistory) == 0 {
		return ""
	}
	return s.ConversationHistory[len(s.ConversationHistory)-1].Category
}

// AddInterests appends new interests preserving insertion order and
// deduplicating against everything already recorded.
func (s *ChatSession) AddInterests(interests []string) {
	seen := make(map[string]struct{}, len(s.Interests))
	for _, interest := range s.Interests {
		seen[interest] = struct{}{}
	}
	for _, interest := range interests {
		if _, ok := seen[interest]; ok {
			continue
		}
		seen[interest] = struct{}{}
		s.Interests = append(s.Interests, interest)
	}
}
