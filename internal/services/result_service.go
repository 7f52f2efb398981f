package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/cache"
	"github.com/Mallqui258/Automatizacion2/internal/metrics"
	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/scoring"
	"github.com/Mallqui258/Automatizacion2/internal/validator"
)

// ResultService produces CASM-83 profiles, either for a stored session or
// for an answer sheet submitted as a whole.
type ResultService interface {
	GetProfile(ctx context.Context, sessionID string) (*models.Profile, error)
	ScoreAnswers(ctx context.Context, req *ScoreRequest) (*models.Profile, error)
	// FlushProfiles drops every cached profile, for instance after the norm
	// tables or the occupation catalog changed.
	FlushProfiles(ctx context.Context) error
}

type ScoreRequest struct {
	Sex     string           `json:"sex" validate:"required,sex"`
	Answers map[int][]string `json:"answers" validate:"dive,keys,question_number,endkeys,option_code"`
}

type resultService struct {
	repo      repositories.Repository
	engine    *scoring.Engine
	cache     cache.CacheService
	cacheTTL  time.Duration
	validator *validator.Validator
	logger    *ServiceLogger
}

func NewResultService(
	repo repositories.Repository,
	engine *scoring.Engine,
	cacheService cache.CacheService,
	cacheTTL time.Duration,
	validator *validator.Validator,
	logger *slog.Logger,
) ResultService {
	return &resultService{
		repo:      repo,
		engine:    engine,
		cache:     cacheService,
		cacheTTL:  cacheTTL,
		validator: validator,
		logger:    NewServiceLogger(logger, LogConfig{Service: "casm83", Component: "result"}),
	}
}

// GetProfile scores a stored session. Open sessions are always computed from
// the current responses; completed ones go through the cache.
func (s *resultService) GetProfile(ctx context.Context, sessionID string) (profile *models.Profile, err error) {
	op := s.logger.WithOperation(ctx, "get_profile", sessionID)
	defer func() { op.LogResult(err) }()

	key := cache.ProfileKey(sessionID)
	var cached models.Profile
	switch cacheErr := s.cache.Get(ctx, key, &cached); {
	case cacheErr == nil:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return &cached, nil
	case errors.Is(cacheErr, cache.ErrCacheMiss):
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn(ctx, "Profile cache lookup failed", "session_id", sessionID, "error", cacheErr)
	}

	session, err := s.repo.Session().GetWithResponses(ctx, sessionID)
	if err != nil {
		return nil, translateRepoError(err, sessionID)
	}

	profile, err = s.engine.Profile(session.Sex, session.Answers())
	if err != nil {
		return nil, err
	}
	profile.SessionID = session.ID
	metrics.ProfilesComputed.WithLabelValues(string(session.Sex), metrics.SourceSession).Inc()

	if session.Completed {
		if err := s.cache.Set(ctx, key, profile, s.cacheTTL); err != nil {
			s.logger.Warn(ctx, "Failed to cache profile", "session_id", sessionID, "error", err)
		}
	}

	return profile, nil
}

// ScoreAnswers scores an ad-hoc answer sheet without touching storage.
func (s *resultService) ScoreAnswers(ctx context.Context, req *ScoreRequest) (profile *models.Profile, err error) {
	op := s.logger.WithOperation(ctx, "score_answers", "")
	defer func() { op.LogResult(err) }()

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	sex, err := s.validator.Answer().ValidateSex(req.Sex)
	if err != nil {
		return nil, err
	}
	answers, err := s.validator.Answer().ValidateAnswers(req.Answers)
	if err != nil {
		return nil, err
	}

	profile, err = s.engine.Profile(sex, answers)
	if err != nil {
		return nil, err
	}
	metrics.ProfilesComputed.WithLabelValues(string(sex), metrics.SourceAdhoc).Inc()
	return profile, nil
}

func (s *resultService) FlushProfiles(ctx context.Context) (err error) {
	op := s.logger.WithOperation(ctx, "flush_profiles", "")
	defer func() { op.LogResult(err) }()

	if err := s.cache.DeletePattern(ctx, cache.ProfilePattern); err != nil {
		return fmt.Errorf("failed to flush cached profiles: %w", err)
	}
	return nil
}
