package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mentorship/config"
	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	"mentorship/internal/domain/scoring"
	"mentorship/internal/domain/service"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// matchService implements the MatchUsecase interface.
type matchService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	events    *eventEmitter
	listLimit int
	logger    *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	listLimit := 0
	if params.Config != nil && params.Config.Matching != nil {
		listLimit = params.Config.Matching.ListLimit
	}

	return &matchService{
		txManager: params.TxManager,
		qrService: params.QRCodeService,
		events:    &eventEmitter{publisher: params.EventPublisher, logger: params.Logger},
		listLimit: listLimit,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAvailableMentors returns active mentors owned by other users, each with a fresh score.
func (srv *matchService) ListAvailableMentors(ctx context.Context, requestingUserID uuid.UUID) ([]*usecase.MentorListing, error) {
	var mentors []*entity.MentorProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MentorRepo().ListActive(ctx, requestingUserID, srv.listLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list active mentors")
		}
		mentors = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available mentors")
	}

	listings := make([]*usecase.MentorListing, 0, len(mentors))
	for _, mentor := range mentors {
		listings = append(listings, &usecase.MentorListing{
			Mentor: mentor,
			Score:  scoring.Score(mentor),
		})
	}

	return listings, nil
}

// ListMatchesForUser returns every match the user takes part in through either profile, newest first.
func (srv *matchService) ListMatchesForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error) {
	matches := []*entity.Match{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find user")
		}

		var mentorID, menteeID *uuid.UUID
		if user.IsMentor() {
			mentorID = &user.MentorProfile.ID
		}
		if user.IsMentee() {
			menteeID = &user.MenteeProfile.ID
		}
		if mentorID == nil && menteeID == nil {
			return nil
		}

		found, err := repoFactory.MatchRepo().ListByParticipant(ctx, mentorID, menteeID)
		if err != nil {
			return errors.Wrap(err, "failed to list matches")
		}
		matches = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list matches for user")
	}

	return matches, nil
}

// RequestMentorship creates a pending match from the caller's mentee profile to the mentor owned by mentorUserID.
func (srv *matchService) RequestMentorship(ctx context.Context, menteeUserID, mentorUserID uuid.UUID, message string) (*entity.Match, error) {
	var match *entity.Match

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mentee, err := repoFactory.MenteeRepo().FindByUserID(ctx, menteeUserID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "mentee profile not found")
			}

			return errors.Wrap(err, "failed to find mentee profile")
		}

		mentor, err := repoFactory.MentorRepo().FindByUserID(ctx, mentorUserID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrMentorNotFound, "mentor profile not found")
			}

			return errors.Wrap(err, "failed to find mentor profile")
		}
		if !mentor.IsActive {
			return errors.Wrap(domainerrors.ErrMentorNotFound, "mentor is inactive")
		}

		if mentorUserID == menteeUserID {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cannot request mentorship from yourself")
		}
		if strings.TrimSpace(message) == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "request message is required")
		}

		// Advisory here; the binding check happens at accept time.
		if !mentor.HasCapacity() {
			return errors.Wrap(domainerrors.ErrMentorAtCapacity, "mentor has reached maximum mentee capacity")
		}

		matchRepo := repoFactory.MatchRepo()

		open, err := matchRepo.ExistsOpenBetween(ctx, mentor.ID, mentee.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing matches")
		}
		if open {
			return errors.Wrap(domainerrors.ErrDuplicateRequest, "an open match already exists for this pair")
		}

		newMatch := &entity.Match{
			MentorID:       mentor.ID,
			MenteeID:       mentee.ID,
			MentorUserID:   mentor.UserID,
			MenteeUserID:   mentee.UserID,
			Status:         entity.MatchStatusPending,
			MatchScore:     scoring.Score(mentor),
			RequestMessage: message,
			Mentor:         mentor,
			Mentee:         mentee,
		}

		if err := matchRepo.Create(ctx, newMatch); err != nil {
			if errors.Is(err, repository.ErrDuplicateOpenMatch) {
				return errors.Wrap(domainerrors.ErrDuplicateRequest, "an open match already exists for this pair")
			}

			return errors.Wrap(err, "failed to create match")
		}
		match = newMatch

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to request mentorship")
	}

	srv.log(ctx).InfoContext(ctx, "Mentorship requested",
		slog.String("match_id", match.ID.String()),
		slog.Int("match_score", match.MatchScore),
	)

	event := newMatchEvent(service.EventMentorshipRequested, match.ID, menteeUserID, match.MentorUserID)
	event.Preview = preview(message)
	srv.events.emit(ctx, event)

	return match, nil
}

// RespondToRequest accepts or declines a pending match addressed to the caller's mentor profile.
func (srv *matchService) RespondToRequest(
	ctx context.Context,
	mentorUserID, matchID uuid.UUID,
	decision entity.MatchDecision,
	message string,
) (*entity.Match, error) {
	if !decision.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "decision must be accepted or declined, got %q", decision)
	}

	var match *entity.Match

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mentorRepo := repoFactory.MentorRepo()
		matchRepo := repoFactory.MatchRepo()

		mentor, err := mentorRepo.FindByUserID(ctx, mentorUserID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "mentor profile not found")
			}

			return errors.Wrap(err, "failed to find mentor profile")
		}

		found, err := matchRepo.FindByIDForUpdate(ctx, matchID)
		if err != nil {
			if errors.Is(err, repository.ErrMatchNotFound) {
				return errors.Wrap(domainerrors.ErrMatchNotFoundOrUnauthorized, "match not found")
			}

			return errors.Wrap(err, "failed to find match")
		}
		if found.MentorID != mentor.ID {
			return errors.Wrap(domainerrors.ErrMatchNotFoundOrUnauthorized, "match belongs to another mentor")
		}
		if found.Status != entity.MatchStatusPending {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "match is %s, not pending", found.Status)
		}

		now := time.Now()
		transition := &repository.MatchTransition{
			From:            []entity.MatchStatus{entity.MatchStatusPending},
			To:              decision.Status(),
			ResponseMessage: &message,
		}

		if decision == entity.DecisionAccepted {
			if err := mentorRepo.IncrementMenteeCount(ctx, mentor.ID); err != nil {
				if errors.Is(err, repository.ErrCapacityExceeded) {
					return errors.Wrap(domainerrors.ErrMentorAtCapacity, "mentor has reached maximum mentee capacity")
				}

				return errors.Wrap(err, "failed to reserve mentee slot")
			}
			transition.MatchedAt = &now
		}

		if err := matchRepo.Transition(ctx, found.ID, transition); err != nil {
			if errors.Is(err, repository.ErrMatchStatusConflict) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "match is no longer pending")
			}

			return errors.Wrap(err, "failed to update match status")
		}

		found.Status = transition.To
		found.ResponseMessage = message
		found.MatchedAt = transition.MatchedAt
		found.UpdatedAt = now
		if decision == entity.DecisionAccepted && found.Mentor != nil {
			found.Mentor.CurrentMenteeCount++
		}
		match = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to respond to mentorship request")
	}

	srv.log(ctx).InfoContext(ctx, "Mentorship request answered",
		slog.String("match_id", match.ID.String()),
		slog.String("status", match.Status.String()),
	)

	eventType := service.EventMentorshipDeclined
	if decision == entity.DecisionAccepted {
		eventType = service.EventMentorshipAccepted
	}
	event := newMatchEvent(eventType, match.ID, mentorUserID, match.MenteeUserID)
	event.Preview = preview(message)
	srv.events.emit(ctx, event)

	return match, nil
}

// CompleteMentorship ends an accepted or active match and frees the mentor slot.
func (srv *matchService) CompleteMentorship(ctx context.Context, userID, matchID uuid.UUID) (*entity.Match, error) {
	var match *entity.Match

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.MatchRepo()

		found, err := matchRepo.FindByIDForUpdate(ctx, matchID)
		if err != nil {
			if errors.Is(err, repository.ErrMatchNotFound) {
				return errors.Wrap(domainerrors.ErrMatchNotFoundOrUnauthorized, "match not found")
			}

			return errors.Wrap(err, "failed to find match")
		}
		if !found.IsParty(userID) {
			return errors.Wrap(domainerrors.ErrMatchNotFoundOrUnauthorized, "caller is not a party to the match")
		}
		if !found.Status.CanTransitionTo(entity.MatchStatusCompleted) {
			return errors.Wrapf(domainerrors.ErrInvalidTransition, "match is %s", found.Status)
		}

		now := time.Now()
		if err := matchRepo.Transition(ctx, found.ID, &repository.MatchTransition{
			From:        []entity.MatchStatus{entity.MatchStatusAccepted, entity.MatchStatusActive},
			To:          entity.MatchStatusCompleted,
			CompletedAt: &now,
		}); err != nil {
			if errors.Is(err, repository.ErrMatchStatusConflict) {
				return errors.Wrap(domainerrors.ErrInvalidTransition, "match was already completed")
			}

			return errors.Wrap(err, "failed to complete match")
		}

		if err := repoFactory.MentorRepo().DecrementMenteeCount(ctx, found.MentorID); err != nil {
			return errors.Wrap(err, "failed to release mentee slot")
		}

		found.Status = entity.MatchStatusCompleted
		found.CompletedAt = &now
		found.UpdatedAt = now
		if found.Mentor != nil && found.Mentor.CurrentMenteeCount > 0 {
			found.Mentor.CurrentMenteeCount--
		}
		match = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete mentorship")
	}

	srv.log(ctx).InfoContext(ctx, "Mentorship completed", slog.String("match_id", match.ID.String()))

	recipient, _ := match.OtherParty(userID)
	srv.events.emit(ctx, newMatchEvent(service.EventMentorshipCompleted, match.ID, userID, recipient))

	return match, nil
}

// GenerateMentorInviteQR renders a QR code mentees can scan to request the caller as mentor.
func (srv *matchService) GenerateMentorInviteQR(ctx context.Context, mentorUserID uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.MentorRepo().FindByUserID(ctx, mentorUserID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "mentor profile not found")
			}

			return errors.Wrap(err, "failed to find mentor profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate mentor invite")
	}

	png, err := srv.qrService.GenerateMentorInviteQR(mentorUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render mentor invite QR code")
	}

	return png, nil
}

// RequestMentorshipViaQR resolves a scanned invite and requests that mentor.
func (srv *matchService) RequestMentorshipViaQR(ctx context.Context, menteeUserID uuid.UUID, qrData, message string) (*entity.Match, error) {
	mentorUserID, err := srv.qrService.ParseMentorInviteQR(qrData)
	if err != nil {
		srv.log(ctx).DebugContext(ctx, "Rejected mentor invite QR", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid mentor invite QR code")
	}

	return srv.RequestMentorship(ctx, menteeUserID, mentorUserID, message)
}
