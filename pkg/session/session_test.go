package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioGolang/internal/entity"
)

func TestWithSessionCreatesOnFirstUse(t *testing.T) {
	s := New()

	_, ok := s.Snapshot("alice")
	assert.False(t, ok)

	s.WithSession("alice", func(session *entity.ChatSession) {
		assert.Equal(t, "alice", session.UserID)
		assert.Empty(t, session.ConversationHistory)
		session.UserName = "Alice"
	})

	snap, ok := s.Snapshot("alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", snap.UserName)
	assert.False(t, snap.LastInteraction.IsZero())
}

func TestEmptyUserIDMapsToDefault(t *testing.T) {
	s := New()

	s.WithSession("", func(session *entity.ChatSession) {
		session.UserName = "Anon"
	})

	snap, ok := s.Snapshot(DefaultUserID)
	require.True(t, ok)
	assert.Equal(t, "Anon", snap.UserName)
}

func TestConcurrentTurnsSerialize(t *testing.T) {
	s := New()

	const turns = 100
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.WithSession("bob", func(session *entity.ChatSession) {
				session.ConversationHistory = append(session.ConversationHistory, entity.ChatTurn{
					Category: fmt.Sprintf("turn-%d", i),
				})
			})
		}(i)
	}
	wg.Wait()

	snap, ok := s.Snapshot("bob")
	require.True(t, ok)
	assert.Len(t, snap.ConversationHistory, turns)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.WithSession("carol", func(session *entity.ChatSession) {
		session.ConversationHistory = []entity.ChatTurn{{Category: "greeting"}}
		session.Interests = []string{"chatbot"}
	})

	snap, _ := s.Snapshot("carol")
	snap.ConversationHistory[0].Category = "mutated"
	snap.Interests[0] = "mutated"

	again, _ := s.Snapshot("carol")
	assert.Equal(t, "greeting", again.ConversationHistory[0].Category)
	assert.Equal(t, "chatbot", again.Interests[0])
}

func TestPruneIdle(t *testing.T) {
	s := New()
	s.WithSession("old", func(session *entity.ChatSession) {
		session.LastInteraction = time.Now().Add(-2 * time.Hour)
	})
	s.WithSession("fresh", func(session *entity.ChatSession) {})

	dropped := s.PruneIdle(time.Hour)
	assert.Equal(t, 1, dropped)

	_, ok := s.Snapshot("old")
	assert.False(t, ok)
	_, ok = s.Snapshot("fresh")
	assert.True(t, ok)
}
