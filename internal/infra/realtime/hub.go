// Package realtime fans out chat messages to live WebSocket listeners in this process.
package realtime

import (
	"log/slog"
	"sync"

	"mentorship/config"
	"mentorship/internal/domain/constants"
	"mentorship/internal/domain/entity"
	"mentorship/internal/domain/service"

	"github.com/google/uuid"
)

const defaultBuffer = 16

type subscriber struct {
	ch chan *entity.ChatMessage
}

// hub implements service.ChatBroadcaster with one subscriber set per match.
type hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[*subscriber]struct{}
	buffer      int
	logger      *slog.Logger
}

// NewHub creates a chat broadcaster sized from the chat configuration.
func NewHub(cfg *config.Config, logger *slog.Logger) service.ChatBroadcaster {
	buffer := defaultBuffer
	if cfg != nil && cfg.Chat != nil && cfg.Chat.StreamBuffer > 0 {
		buffer = cfg.Chat.StreamBuffer
	}

	return newHub(buffer, logger)
}

func newHub(buffer int, logger *slog.Logger) *hub {
	if logger == nil {
		logger = slog.Default()
	}

	return &hub{
		subscribers: make(map[uuid.UUID]map[*subscriber]struct{}),
		buffer:      buffer,
		logger:      logger,
	}
}

// Subscribe registers a listener for matchID. The returned func unsubscribes and closes the channel.
func (h *hub) Subscribe(matchID uuid.UUID) (<-chan *entity.ChatMessage, func()) {
	sub := &subscriber{ch: make(chan *entity.ChatMessage, h.buffer)}

	h.mu.Lock()
	if h.subscribers[matchID] == nil {
		h.subscribers[matchID] = make(map[*subscriber]struct{})
	}
	h.subscribers[matchID][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			subs := h.subscribers[matchID]
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.subscribers, matchID)
			}
			close(sub.ch)
		})
	}

	return sub.ch, unsubscribe
}

// Publish delivers msg to every current subscriber of its match without blocking.
// A subscriber whose buffer is full misses the message.
func (h *hub) Publish(msg *entity.ChatMessage) {
	if msg == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[msg.MatchID] {
		select {
		case sub.ch <- msg:
		default:
			h.logger.Warn("chat subscriber channel full, dropping message",
				slog.String(constants.AttrMatchID, msg.MatchID.String()),
				slog.String("message_id", msg.ID.String()),
			)
		}
	}
}

func (h *hub) subscriberCount(matchID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[matchID])
}
