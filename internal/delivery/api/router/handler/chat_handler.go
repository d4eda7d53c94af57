package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"mentorship/config"
	"mentorship/internal/delivery/api/middleware"
	"mentorship/internal/delivery/api/response"
	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/entity"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
	maxStreamFrameSize  = 64 << 10

	frameTypeMessage = "message"
	frameTypeError   = "error"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Config *config.Config
	Logger *slog.Logger
}

// ChatHandler serves the message history, sending and the live stream of a match.
type ChatHandler struct {
	chatUC       usecase.ChatUsecase
	logger       *slog.Logger
	upgrader     websocket.Upgrader
	pingInterval time.Duration
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	pingInterval := defaultPingInterval
	if params.Config != nil && params.Config.Chat != nil && params.Config.Chat.PingInterval > 0 {
		pingInterval = params.Config.Chat.PingInterval
	}

	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are already governed by the CORS middleware and the bearer token.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		pingInterval: pingInterval,
	}
}

// SendMessageRequest represents the request body for sending a chat message
type SendMessageRequest struct {
	Message     string `json:"message" validate:"required"`
	MessageType string `json:"message_type"`
}

// UnreadCountResponse is the number of messages waiting for the caller.
type UnreadCountResponse struct {
	MatchID uuid.UUID `json:"match_id"`
	Unread  int64     `json:"unread"`
}

// streamFrame is one JSON frame written to a chat stream.
type streamFrame struct {
	Type    string              `json:"type"`
	Message *entity.ChatMessage `json:"message,omitempty"`
	Error   *response.ErrorInfo `json:"error,omitempty"`
}

// ListMessages returns the match history and marks the caller's messages read.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	messages, err := h.chatUC.ListMessages(c.Request().Context(), userID, matchID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// SendMessage posts a message to the other party of the match.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), userID, matchID, req.Message, req.MessageType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}

// UnreadCount returns how many messages of the match the caller has not read.
func (h *ChatHandler) UnreadCount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	count, err := h.chatUC.UnreadCount(c.Request().Context(), userID, matchID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UnreadCountResponse{MatchID: matchID, Unread: count})
}

// Stream upgrades to a WebSocket that pushes every new message of the match.
// Frames received from the client are sent as messages on the caller's behalf.
func (h *ChatHandler) Stream(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("match_id", matchID.String()))

	// Authorization happens before the upgrade so refusals are plain JSON errors.
	messages, unsubscribe, err := h.chatUC.Subscribe(ctx, userID, matchID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		logger.Warn("Chat stream upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	logger.Info("Chat stream opened")

	replies := make(chan streamFrame, 1)
	writerDone := make(chan struct{})
	readerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		h.writeLoop(conn, messages, replies, readerDone, logger)
	}()

	h.readLoop(ctx, conn, userID, matchID, replies, writerDone, logger)
	close(readerDone)
	<-writerDone

	logger.Info("Chat stream closed")

	return nil
}

func (h *ChatHandler) writeLoop(conn *websocket.Conn, messages <-chan *entity.ChatMessage, replies <-chan streamFrame, readerDone <-chan struct{}, logger *slog.Logger) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	// Closing the connection unblocks the reader when the writer stops first.
	defer conn.Close()

	for {
		select {
		case <-readerDone:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))

			return

		case msg, ok := <-messages:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "stream closed"), time.Now().Add(writeWait))

				return
			}

			if err := writeFrame(conn, streamFrame{Type: frameTypeMessage, Message: msg}); err != nil {
				logger.Debug("Chat stream write failed", slog.Any("error", err))

				return
			}

		case frame := <-replies:
			if err := writeFrame(conn, frame); err != nil {
				logger.Debug("Chat stream write failed", slog.Any("error", err))

				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.Debug("Chat stream ping failed", slog.Any("error", err))

				return
			}
		}
	}
}

func (h *ChatHandler) readLoop(ctx context.Context, conn *websocket.Conn, userID, matchID uuid.UUID, replies chan<- streamFrame, writerDone <-chan struct{}, logger *slog.Logger) {
	conn.SetReadLimit(maxStreamFrameSize)

	// A peer that misses two pings is considered gone.
	readWait := 2 * h.pingInterval
	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("Chat stream read ended", slog.Any("error", err))
			}

			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(readWait))

		frame, ok := h.handleInbound(ctx, userID, matchID, data, logger)
		if ok {
			continue
		}

		select {
		case replies <- frame:
		case <-writerDone:
			return
		}
	}
}

// handleInbound sends a client frame as a message. It returns ok when nothing needs to be written back;
// the stored message itself reaches the sender through the subscription.
func (h *ChatHandler) handleInbound(ctx context.Context, userID, matchID uuid.UUID, data []byte, logger *slog.Logger) (streamFrame, bool) {
	var req SendMessageRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return errorFrame("INVALID_INPUT", "Frame must be a JSON message"), false
	}

	if _, err := h.chatUC.SendMessage(ctx, userID, matchID, req.Message, req.MessageType); err != nil {
		info, _, ok := response.NewErrorInfo(err)
		if !ok {
			logger.Error("Failed to send message from chat stream", slog.Any("error", err))
		}

		return streamFrame{Type: frameTypeError, Error: info}, false
	}

	return streamFrame{}, true
}

func errorFrame(code, message string) streamFrame {
	return streamFrame{Type: frameTypeError, Error: &response.ErrorInfo{Code: code, Message: message}}
}

func writeFrame(conn *websocket.Conn, frame streamFrame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(conn.WriteJSON(frame))
}
