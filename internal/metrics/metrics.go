package metrics

import (
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casm83_sessions_started_total",
			Help: "Total number of questionnaire sessions started",
		},
		[]string{"sex"},
	)

	SessionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casm83_sessions_completed_total",
			Help: "Total number of questionnaire sessions completed",
		},
		[]string{"sex"},
	)

	ResponsesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "casm83_responses_saved_total",
			Help: "Total number of item responses stored",
		},
	)

	ProfilesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casm83_profiles_computed_total",
			Help: "Total number of profiles computed",
		},
		[]string{"sex", "source"},
	)

	ScalesRecommended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casm83_scales_recommended_total",
			Help: "Number of times each scale appeared in the recommendations of a completed session",
		},
		[]string{"scale"},
	)

	ScaleRawScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "casm83_scale_raw_score",
			Help:    "Raw scores of completed sessions per scale",
			Buckets: prometheus.LinearBuckets(0, 2, 12),
		},
		[]string{"scale", "sex"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casm83_profile_cache_lookups_total",
			Help: "Profile cache lookups by result",
		},
		[]string{"result"},
	)

	ExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "casm83_export_duration_seconds",
			Help: "Duration of session exports in seconds",
		},
		[]string{"format"},
	)
)

// Profile sources
const (
	SourceSession = "session"
	SourceAdhoc   = "adhoc"
)

// ObserveCompletedProfile records the score distribution and recommendations
// of a session at completion time.
func ObserveCompletedProfile(profile *models.Profile) {
	sex := string(profile.Sex)
	SessionsCompleted.WithLabelValues(sex).Inc()
	for _, score := range profile.Scores {
		ScaleRawScore.WithLabelValues(score.Scale.String(), sex).Observe(float64(score.Score))
	}
	for _, rec := range profile.Recommendations.TopScales {
		ScalesRecommended.WithLabelValues(rec.Scale.String()).Inc()
	}
}

func ObserveExport(format string, start time.Time) {
	ExportDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
}
