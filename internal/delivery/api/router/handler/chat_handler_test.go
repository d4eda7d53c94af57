package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mentorship/config"
	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	mockUsecase "mentorship/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChatHandler(t *testing.T) (*ChatHandler, *mockUsecase.MockChatUsecase) {
	chatUC := mockUsecase.NewMockChatUsecase(t)
	cfg := &config.Config{Chat: &config.ChatConfig{PingInterval: time.Second}}

	return NewChatHandler(ChatHandlerParams{ChatUC: chatUC, Config: cfg, Logger: newDiscardLogger()}), chatUC
}

func TestChatHandler_ListMessages(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	e := newTestEcho()
	userID := uuid.New()
	matchID := uuid.New()
	messages := []*entity.ChatMessage{
		{ID: uuid.New(), MatchID: matchID, SenderID: uuid.New(), ReceiverID: userID, Body: "hello", MessageType: entity.MessageTypeText},
	}

	chatUC.EXPECT().ListMessages(mock.Anything, userID, matchID).Return(messages, nil).Once()

	c, rec := newAuthedContext(e, http.MethodGet, "/", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	require.NoError(t, h.ListMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.ChatMessage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Body)
	assert.False(t, got[0].IsRead)
}

func TestChatHandler_ListMessages_Forbidden(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	e := newTestEcho()
	userID := uuid.New()
	matchID := uuid.New()

	chatUC.EXPECT().ListMessages(mock.Anything, userID, matchID).Return(nil, domainerrors.ErrUnauthorizedChatAccess).Once()

	c, rec := newAuthedContext(e, http.MethodGet, "/", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	require.NoError(t, h.ListMessages(c))
	requireErrorCode(t, rec, http.StatusForbidden, "UNAUTHORIZED_CHAT_ACCESS")
}

func TestChatHandler_SendMessage(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	e := newTestEcho()
	userID := uuid.New()
	matchID := uuid.New()
	msg := &entity.ChatMessage{ID: uuid.New(), MatchID: matchID, SenderID: userID, Body: "fmt.Println()", MessageType: entity.MessageTypeCode}

	chatUC.EXPECT().SendMessage(mock.Anything, userID, matchID, "fmt.Println()", "code").Return(msg, nil).Once()

	c, rec := newAuthedContext(e, http.MethodPost, "/", `{"message":"fmt.Println()","message_type":"code"}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	require.NoError(t, h.SendMessage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestChatHandler_SendMessage_EmptyBody(t *testing.T) {
	h, _ := createTestChatHandler(t)
	e := newTestEcho()

	c, rec := newAuthedContext(e, http.MethodPost, "/", `{"message":""}`, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.SendMessage(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestChatHandler_UnreadCount(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	e := newTestEcho()
	userID := uuid.New()
	matchID := uuid.New()

	chatUC.EXPECT().UnreadCount(mock.Anything, userID, matchID).Return(int64(4), nil).Once()

	c, rec := newAuthedContext(e, http.MethodGet, "/", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(matchID.String())

	require.NoError(t, h.UnreadCount(c))

	var got UnreadCountResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, int64(4), got.Unread)
	assert.Equal(t, matchID, got.MatchID)
}

// startStreamServer serves the chat stream with userID already authenticated.
func startStreamServer(t *testing.T, h *ChatHandler, userID uuid.UUID) *httptest.Server {
	t.Helper()

	e := newTestEcho()
	e.GET("/matches/:id/chat/ws", h.Stream, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, userID)

			return next(c)
		}
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv
}

func TestChatHandler_Stream(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	userID := uuid.New()
	matchID := uuid.New()

	messages := make(chan *entity.ChatMessage, 1)
	unsubscribed := make(chan struct{})

	chatUC.EXPECT().Subscribe(mock.Anything, userID, matchID).
		Return((<-chan *entity.ChatMessage)(messages), func() { close(unsubscribed) }, nil).Once()
	chatUC.EXPECT().SendMessage(mock.Anything, userID, matchID, "hi there", "").
		Return(&entity.ChatMessage{ID: uuid.New()}, nil).Once()
	chatUC.EXPECT().SendMessage(mock.Anything, userID, matchID, "", "").
		Return(nil, domainerrors.ErrValidationFailed).Once()

	srv := startStreamServer(t, h, userID)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/matches/" + matchID.String() + "/chat/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	pushed := &entity.ChatMessage{ID: uuid.New(), MatchID: matchID, Body: "from the hub", MessageType: entity.MessageTypeText}
	messages <- pushed

	var frame streamFrame
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, frameTypeMessage, frame.Type)
	require.NotNil(t, frame.Message)
	assert.Equal(t, pushed.ID, frame.Message.ID)

	// A successful send produces no reply, so the next frame answers the empty body.
	require.NoError(t, conn.WriteJSON(map[string]string{"message": "hi there"}))
	require.NoError(t, conn.WriteJSON(map[string]string{"message": ""}))

	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, frameTypeError, frame.Type)
	require.NotNil(t, frame.Error)
	assert.Equal(t, "VALIDATION_FAILED", frame.Error.Code)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "INVALID_INPUT", frame.Error.Code)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	select {
	case <-unsubscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was not released")
	}
}

func TestChatHandler_Stream_Unauthorized(t *testing.T) {
	h, chatUC := createTestChatHandler(t)
	userID := uuid.New()
	matchID := uuid.New()

	chatUC.EXPECT().Subscribe(mock.Anything, userID, matchID).Return(nil, nil, domainerrors.ErrUnauthorizedChatAccess).Once()

	srv := startStreamServer(t, h, userID)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/matches/" + matchID.String() + "/chat/ws"

	_, resp, err := websocket.DefaultDialer.DialContext(context.Background(), url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
