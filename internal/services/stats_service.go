package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/scoring"
)

// StatsService aggregates the profiles of completed sessions.
type StatsService interface {
	CohortStats(ctx context.Context, filters repositories.SessionFilters) (*CohortStats, error)
}

type CohortStats struct {
	TotalSessions     int64       `json:"total_sessions"`
	CompletedSessions int         `json:"completed_sessions"`
	BySex             []*SexStats `json:"by_sex"`
	GeneratedAt       time.Time   `json:"generated_at"`
}

type SexStats struct {
	Sex      models.Sex    `json:"sex"`
	Sessions int           `json:"sessions"`
	Scales   []*ScaleStats `json:"scales"`
}

// ScaleStats summarises one scale for one sex. RecommendedFrom is the lowest
// raw score that earns a recommendation under that sex's norms.
type ScaleStats struct {
	Scale           models.ScaleCode     `json:"scale"`
	Name            string               `json:"name"`
	MeanScore       float64              `json:"mean_score"`
	MinScore        int                  `json:"min_score"`
	MaxScore        int                  `json:"max_score"`
	Levels          map[models.Level]int `json:"levels"`
	Recommended     int                  `json:"recommended"`
	RecommendedFrom int                  `json:"recommended_from"`
}

type statsService struct {
	repo   repositories.Repository
	engine *scoring.Engine
	logger *ServiceLogger
}

func NewStatsService(repo repositories.Repository, engine *scoring.Engine, logger *slog.Logger) StatsService {
	return &statsService{
		repo:   repo,
		engine: engine,
		logger: NewServiceLogger(logger, LogConfig{Service: "casm83", Component: "stats"}),
	}
}

// CohortStats scores every completed session matching filters and reports
// per-sex, per-scale aggregates. Both sexes are always present, in fixed
// order, even when one has no sessions. Paging fields are ignored.
func (s *statsService) CohortStats(ctx context.Context, filters repositories.SessionFilters) (stats *CohortStats, err error) {
	op := s.logger.WithOperation(ctx, "cohort_stats", "")
	defer func() { op.LogResult(err) }()

	_, total, err := s.repo.Session().List(ctx, repositories.SessionFilters{
		Sex:      filters.Sex,
		DateFrom: filters.DateFrom,
		DateTo:   filters.DateTo,
		Limit:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	completed := true
	filters.Completed = &completed
	filters.Limit, filters.Offset = 0, 0
	sessions, _, err := s.repo.Session().ListWithResponses(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	accumulators := make(map[models.Sex]*sexAccumulator, len(models.AllSexes()))
	for _, sex := range models.AllSexes() {
		accumulators[sex] = &sexAccumulator{}
	}

	for _, session := range sessions {
		acc, ok := accumulators[session.Sex]
		if !ok {
			s.logger.Warn(ctx, "Skipping session with unknown sex", "session_id", session.ID, "sex", session.Sex)
			continue
		}
		scores, err := s.engine.ScaleScores(session.Sex, session.Answers())
		if err != nil {
			return nil, fmt.Errorf("failed to score session %s: %w", session.ID, err)
		}
		acc.add(scores)
	}

	stats = &CohortStats{
		TotalSessions: total,
		BySex:         make([]*SexStats, 0, len(accumulators)),
		GeneratedAt:   time.Now().UTC(),
	}
	for _, sex := range models.AllSexes() {
		acc := accumulators[sex]
		stats.CompletedSessions += acc.sessions
		sexStats, err := acc.result(sex, s.engine)
		if err != nil {
			return nil, err
		}
		stats.BySex = append(stats.BySex, sexStats)
	}
	return stats, nil
}

type sexAccumulator struct {
	sessions int
	sums     [models.NumScales]int
	mins     [models.NumScales]int
	maxs     [models.NumScales]int
	levels   [models.NumScales][models.NumLevels]int
}

func (a *sexAccumulator) add(scores models.ScaleScores) {
	for i, score := range scores {
		if a.sessions == 0 || score.Score < a.mins[i] {
			a.mins[i] = score.Score
		}
		if score.Score > a.maxs[i] {
			a.maxs[i] = score.Score
		}
		a.sums[i] += score.Score
		a.levels[i][score.Interpretation]++
	}
	a.sessions++
}

func (a *sexAccumulator) result(sex models.Sex, engine *scoring.Engine) (*SexStats, error) {
	out := &SexStats{Sex: sex, Sessions: a.sessions, Scales: make([]*ScaleStats, 0, models.NumScales)}
	for _, code := range models.AllScales() {
		cutoffs, err := engine.Catalog().Cutoffs(sex, code)
		if err != nil {
			return nil, err
		}
		scale := &ScaleStats{
			Scale:           code,
			Name:            engine.Catalog().Scale(code).Name,
			MinScore:        a.mins[code],
			MaxScore:        a.maxs[code],
			Levels:          make(map[models.Level]int, models.NumLevels),
			RecommendedFrom: cutoffs.Floor(models.RecommendationCutoff),
		}
		if a.sessions > 0 {
			scale.MeanScore = float64(a.sums[code]) / float64(a.sessions)
		}
		for _, level := range models.AllLevels() {
			count := a.levels[code][level]
			scale.Levels[level] = count
			if level.Recommended() {
				scale.Recommended += count
			}
		}
		out.Scales = append(out.Scales, scale)
	}
	return out, nil
}
