package handler

import (
	"log/slog"
	"net/http"

	"mentorship/internal/delivery/api/middleware"
	"mentorship/internal/delivery/api/response"
	"mentorship/internal/domain/entity"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MatchHandler holds dependencies for match-related handlers
type MatchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// RequestMentorshipRequest represents the request body for asking a mentor for mentorship
type RequestMentorshipRequest struct {
	MentorUserID uuid.UUID `json:"mentor_user_id" validate:"required"`
	Message      string    `json:"message" validate:"required,max=2000"`
}

// RespondRequest represents the mentor's decision on a pending request
type RespondRequest struct {
	Decision string `json:"decision" validate:"required"`
	Message  string `json:"message" validate:"max=2000"`
}

// RequestViaQRRequest represents the request body for requesting the mentor of a scanned invite
type RequestViaQRRequest struct {
	QRData  string `json:"qr_data" validate:"required"`
	Message string `json:"message" validate:"required,max=2000"`
}

// ListMatches lists every match the caller takes part in.
func (h *MatchHandler) ListMatches(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matches, err := h.matchUC.ListMatchesForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMatchResponses(matches))
}

// RequestMentorship creates a pending match with the chosen mentor.
func (h *MatchHandler) RequestMentorship(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RequestMentorshipRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mentorship request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	match, err := h.matchUC.RequestMentorship(c.Request().Context(), userID, req.MentorUserID, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMatchResponse(match))
}

// RespondToRequest records the mentor's decision on a pending match.
func (h *MatchHandler) RespondToRequest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	var req RespondRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	match, err := h.matchUC.RespondToRequest(c.Request().Context(), userID, matchID, entity.MatchDecision(req.Decision), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMatchResponse(match))
}

// CompleteMentorship ends an accepted or active match.
func (h *MatchHandler) CompleteMentorship(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	match, err := h.matchUC.CompleteMentorship(c.Request().Context(), userID, matchID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMatchResponse(match))
}

// RequestMentorshipViaQR requests the mentor named by a scanned invite.
func (h *MatchHandler) RequestMentorshipViaQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RequestViaQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	match, err := h.matchUC.RequestMentorshipViaQR(c.Request().Context(), userID, req.QRData, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMatchResponse(match))
}
