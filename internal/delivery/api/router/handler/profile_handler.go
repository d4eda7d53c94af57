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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own user and capability records.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for creating the caller's user record.
type RegisterRequest struct {
	Email  string                      `json:"email" validate:"required,email,max=255"`
	Name   string                      `json:"name" validate:"required,max=255"`
	Mentor *usecase.MentorProfileInput `json:"mentor,omitempty"`
	Mentee *usecase.MenteeProfileInput `json:"mentee,omitempty"`
}

// Register creates the user identified by the token, optionally with profiles.
func (h *ProfileHandler) Register(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.profileUC.Register(c.Request().Context(), userID, &usecase.RegisterInput{
		Email:  req.Email,
		Name:   req.Name,
		Mentor: req.Mentor,
		Mentee: req.Mentee,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// GetProfile returns the caller with both nested profiles.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// BecomeMentor attaches a mentor profile to the caller.
func (h *ProfileHandler) BecomeMentor(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.MentorProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mentor profile input")
	}

	profile, err := h.profileUC.BecomeMentor(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMentorProfileResponse(profile))
}

// BecomeMentee attaches a mentee profile to the caller.
func (h *ProfileHandler) BecomeMentee(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.MenteeProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mentee profile input")
	}

	profile, err := h.profileUC.BecomeMentee(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMenteeProfileResponse(profile))
}

// UpdateMentorProfile applies a partial update to the caller's mentor profile.
func (h *ProfileHandler) UpdateMentorProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.UpdateMentorProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mentor profile input")
	}

	profile, err := h.profileUC.UpdateMentorProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMentorProfileResponse(profile))
}

// UpdateMenteeProfile applies a partial update to the caller's mentee profile.
func (h *ProfileHandler) UpdateMenteeProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.UpdateMenteeProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mentee profile input")
	}

	profile, err := h.profileUC.UpdateMenteeProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMenteeProfileResponse(profile))
}

// GetPreferences reports which profiles exist and whether they are filled in.
func (h *ProfileHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.profileUC.HasPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
