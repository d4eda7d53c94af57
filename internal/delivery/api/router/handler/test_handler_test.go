package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	mockUsecase "mentorship/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTestHandler_WhoAmI(t *testing.T) {
	t.Run("registered mentor", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewTestHandler(TestHandlerParams{ProfileUC: profileUC})
		userID := uuid.New()

		profileUC.EXPECT().GetProfile(mock.Anything, userID).
			Return(&entity.User{ID: userID, MentorProfile: &entity.MentorProfile{}}, nil).Once()

		c, rec := newAuthedContext(newTestEcho(), http.MethodGet, "/", "", userID)
		require.NoError(t, h.WhoAmI(c))

		var out WhoAmIResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.True(t, out.Registered)
		assert.True(t, out.IsMentor)
		assert.False(t, out.IsMentee)
	})

	t.Run("token without user record", func(t *testing.T) {
		profileUC := mockUsecase.NewMockProfileUsecase(t)
		h := NewTestHandler(TestHandlerParams{ProfileUC: profileUC})
		userID := uuid.New()

		profileUC.EXPECT().GetProfile(mock.Anything, userID).
			Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")).Once()

		c, rec := newAuthedContext(newTestEcho(), http.MethodGet, "/", "", userID)
		require.NoError(t, h.WhoAmI(c))

		var out WhoAmIResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, userID, out.UserID)
		assert.False(t, out.Registered)
	})
}

func TestTestHandler_ScorePreview(t *testing.T) {
	h := NewTestHandler(TestHandlerParams{})

	// 50 base + 20 experience + 15 mentoring + 4 breadth + 10 capacity.
	c, rec := newAuthedContext(newTestEcho(), http.MethodPost, "/",
		`{"years_of_experience":6,"mentoring_experience":"experienced","areas_of_strength":["go","k8s"]}`, uuid.Nil)
	require.NoError(t, h.ScorePreview(c))

	var out map[string]int
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, 99, out["score"])
}
