package realtime

import (
	"io"
	"log/slog"
	"testing"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(buffer int) *hub {
	return newHub(buffer, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_PublishReachesOnlySameMatch(t *testing.T) {
	h := newTestHub(4)
	matchA, matchB := uuid.New(), uuid.New()

	chA, unsubA := h.Subscribe(matchA)
	defer unsubA()
	chB, unsubB := h.Subscribe(matchB)
	defer unsubB()

	msg := &entity.ChatMessage{ID: uuid.New(), MatchID: matchA, Body: "hello"}
	h.Publish(msg)

	select {
	case got := <-chA:
		assert.Equal(t, msg.ID, got.ID)
	default:
		t.Fatal("expected message on match A subscriber")
	}

	select {
	case <-chB:
		t.Fatal("match B subscriber must not receive match A messages")
	default:
	}
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	h := newTestHub(1)
	matchID := uuid.New()

	ch, unsub := h.Subscribe(matchID)
	defer unsub()

	h.Publish(&entity.ChatMessage{ID: uuid.New(), MatchID: matchID})
	h.Publish(&entity.ChatMessage{ID: uuid.New(), MatchID: matchID})

	assert.Len(t, ch, 1)
}

func TestHub_UnsubscribeClosesAndIsIdempotent(t *testing.T) {
	h := newTestHub(1)
	matchID := uuid.New()

	ch, unsub := h.Subscribe(matchID)
	require.Equal(t, 1, h.subscriberCount(matchID))

	unsub()
	unsub()

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, h.subscriberCount(matchID))

	// Publishing after everyone left is a no-op.
	h.Publish(&entity.ChatMessage{ID: uuid.New(), MatchID: matchID})
}
