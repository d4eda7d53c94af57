package handler

import (
	"log/slog"
	"net/http"

	"mentorship/internal/delivery/api/middleware"
	"mentorship/internal/delivery/api/response"
	"mentorship/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MentorHandlerParams holds dependencies for MentorHandler, injected by Fx.
type MentorHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MentorHandler serves mentor discovery and invites.
type MentorHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMentorHandler is the constructor for MentorHandler
func NewMentorHandler(params MentorHandlerParams) *MentorHandler {
	return &MentorHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// ListAvailableMentors lists active mentors other than the caller with their scores.
func (h *MentorHandler) ListAvailableMentors(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listings, err := h.matchUC.ListAvailableMentors(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMentorListingResponses(listings))
}

// GenerateInviteQR renders the caller's mentor invite as a PNG.
func (h *MentorHandler) GenerateInviteQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.matchUC.GenerateMentorInviteQR(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
