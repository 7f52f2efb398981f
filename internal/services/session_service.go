package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/cache"
	"github.com/Mallqui258/Automatizacion2/internal/events"
	"github.com/Mallqui258/Automatizacion2/internal/metrics"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/validator"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionService runs a respondent through the questionnaire: start,
// answer items, complete.
type SessionService interface {
	Start(ctx context.Context, req *StartSessionRequest) (*StartSessionResponse, error)
	SaveResponse(ctx context.Context, req *SaveResponseRequest) (*SaveResponseResult, error)
	Complete(ctx context.Context, req *CompleteSessionRequest) (*CompleteSessionResponse, error)
	Get(ctx context.Context, sessionID string) (*models.TestSession, error)
	List(ctx context.Context, filters repositories.SessionFilters) (*SessionListResponse, error)
}

// ===== REQUEST / RESPONSE TYPES =====

type StartSessionRequest struct {
	Sex string `json:"sex" validate:"required,sex"`
}

type StartSessionResponse struct {
	SessionID string     `json:"session_id"`
	Sex       models.Sex `json:"sex"`
}

type SaveResponseRequest struct {
	SessionID      string   `json:"session_id" validate:"required"`
	QuestionNumber int      `json:"question_number" validate:"question_number"`
	Response       []string `json:"response" validate:"option_code"`
}

type SaveResponseResult struct {
	Success        bool  `json:"success"`
	TotalResponses int64 `json:"total_responses"`
}

type CompleteSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type CompleteSessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SessionListResponse struct {
	Sessions []*models.TestSession `json:"sessions"`
	Total    int64                 `json:"total"`
}

type sessionService struct {
	repo      repositories.Repository
	results   ResultService
	cache     cache.CacheService
	publisher events.EventPublisher
	validator *validator.Validator
	logger    *ServiceLogger
	now       func() time.Time
}

func NewSessionService(
	repo repositories.Repository,
	results ResultService,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
) SessionService {
	return &sessionService{
		repo:      repo,
		results:   results,
		cache:     cacheService,
		publisher: publisher,
		validator: validator,
		logger:    NewServiceLogger(logger, LogConfig{Service: "casm83", Component: "session"}),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionService) Start(ctx context.Context, req *StartSessionRequest) (resp *StartSessionResponse, err error) {
	op := s.logger.WithOperation(ctx, "start_session", "")
	defer func() { op.LogResult(err) }()

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	sex, err := s.validator.Answer().ValidateSex(req.Sex)
	if err != nil {
		return nil, err
	}

	session := &models.TestSession{
		ID:        uuid.NewString(),
		Sex:       sex,
		CreatedAt: s.now(),
	}
	op.SetSession(session.ID)

	if err := s.validator.ValidateStruct(session); err != nil {
		return nil, err
	}
	if err := s.repo.Session().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	metrics.SessionsStarted.WithLabelValues(string(sex)).Inc()
	s.publish(ctx, events.NewSessionStartedEvent(session))

	return &StartSessionResponse{SessionID: session.ID, Sex: session.Sex}, nil
}

func (s *sessionService) SaveResponse(ctx context.Context, req *SaveResponseRequest) (result *SaveResponseResult, err error) {
	op := s.logger.WithOperation(ctx, "save_response", req.SessionID)
	defer func() { op.LogResult(err) }()

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	selection, err := s.validator.Answer().ValidateResponse(req.QuestionNumber, req.Response)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Session().GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, translateRepoError(err, req.SessionID)
	}
	if session.Completed {
		return nil, sessionClosedError(session.ID, "save a response")
	}

	options := selection.Options()
	if err := s.repo.Session().UpsertResponse(ctx, &models.SessionResponse{
		SessionID:      session.ID,
		QuestionNumber: req.QuestionNumber,
		Options:        datatypes.JSONSlice[string](options),
	}); err != nil {
		return nil, fmt.Errorf("failed to save response: %w", translateRepoError(err, session.ID))
	}

	total, err := s.repo.Session().CountResponses(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count responses: %w", err)
	}

	s.invalidateProfile(ctx, session.ID)
	metrics.ResponsesSaved.Inc()
	s.publish(ctx, events.NewResponseSavedEvent(session.ID, req.QuestionNumber, options, total))

	return &SaveResponseResult{Success: true, TotalResponses: total}, nil
}

func (s *sessionService) Complete(ctx context.Context, req *CompleteSessionRequest) (resp *CompleteSessionResponse, err error) {
	op := s.logger.WithOperation(ctx, "complete_session", req.SessionID)
	defer func() { op.LogResult(err) }()

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	// Score before closing: a failed read must leave the session open.
	profile, err := s.results.GetProfile(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute profile: %w", err)
	}

	completedAt := s.now()
	if err := s.repo.Session().MarkCompleted(ctx, req.SessionID, completedAt); err != nil {
		return nil, translateRepoError(err, req.SessionID)
	}

	metrics.ObserveCompletedProfile(profile)
	s.publish(ctx, events.NewSessionCompletedEvent(req.SessionID, completedAt, profile))

	return &CompleteSessionResponse{Success: true, Message: "Test completed"}, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*models.TestSession, error) {
	session, err := s.repo.Session().GetWithResponses(ctx, sessionID)
	if err != nil {
		return nil, translateRepoError(err, sessionID)
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, filters repositories.SessionFilters) (*SessionListResponse, error) {
	sessions, total, err := s.repo.Session().ListWithResponses(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*models.TestSession{}
	}
	return &SessionListResponse{Sessions: sessions, Total: total}, nil
}

// publish never fails the caller; a lost event is only logged.
func (s *sessionService) publish(ctx context.Context, event *events.SessionEvent) {
	if err := s.publisher.PublishSessionEvent(ctx, event); err != nil {
		s.logger.Warn(ctx, "Failed to publish session event",
			"event_type", event.Type,
			"event_id", event.ID,
			"error", err)
	}
}

func (s *sessionService) invalidateProfile(ctx context.Context, sessionID string) {
	if err := s.cache.Delete(ctx, cache.ProfileKey(sessionID)); err != nil {
		s.logger.Warn(ctx, "Failed to invalidate cached profile", "session_id", sessionID, "error", err)
	}
}
