package handler

import (
	"net/http"

	"mentorship/internal/delivery/api/middleware"
	"mentorship/internal/delivery/api/response"
	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/scoring"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// TestHandler serves development helpers mounted only when testRoutes.enabled is set.
type TestHandler struct {
	profileUC usecase.ProfileUsecase
}

func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{profileUC: params.ProfileUC}
}

type WhoAmIResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	RequestID  string    `json:"request_id"`
	Registered bool      `json:"registered"`
	IsMentor   bool      `json:"is_mentor"`
	IsMentee   bool      `json:"is_mentee"`
}

// WhoAmI reports what the bearer token resolves to and which capabilities the user holds.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	out := WhoAmIResponse{UserID: userID, RequestID: deliverycontext.GetRequestID(c)}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	switch {
	case err == nil:
		out.Registered = true
		out.IsMentor = user.IsMentor()
		out.IsMentee = user.IsMentee()
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// ScorePreviewRequest carries the mentor fields the scorer reads.
type ScorePreviewRequest struct {
	YearsOfExperience   int      `json:"years_of_experience" validate:"gte=0"`
	MentoringExperience string   `json:"mentoring_experience"`
	AreasOfStrength     []string `json:"areas_of_strength"`
	Bio                 string   `json:"bio"`
	MaxMentees          int      `json:"max_mentees" validate:"gte=0"`
	CurrentMenteeCount  int      `json:"current_mentee_count" validate:"gte=0"`
}

// ScorePreview scores an unsaved mentor profile.
func (h *TestHandler) ScorePreview(c echo.Context) error {
	var req ScorePreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid score preview input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	maxMentees := req.MaxMentees
	if maxMentees == 0 {
		maxMentees = entity.DefaultMaxMentees
	}

	score := scoring.Score(&entity.MentorProfile{
		YearsOfExperience:   req.YearsOfExperience,
		MentoringExperience: req.MentoringExperience,
		AreasOfStrength:     req.AreasOfStrength,
		Bio:                 req.Bio,
		MaxMentees:          maxMentees,
		CurrentMenteeCount:  req.CurrentMenteeCount,
	})

	return response.Success(c, http.StatusOK, map[string]int{"score": score})
}
