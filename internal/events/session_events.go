package events

import (
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/google/uuid"
)

// EventType represents the lifecycle events of a questionnaire session
type EventType string

const (
	EventSessionStarted       EventType = "session.started"
	EventSessionResponseSaved EventType = "session.response_saved"
	EventSessionCompleted     EventType = "session.completed"
)

const (
	eventSource  = "casm83-service"
	eventVersion = "1.0"
)

// SessionEvent is the envelope shared by all session events
type SessionEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Event payloads

type SessionStartedEvent struct {
	SessionID string     `json:"session_id"`
	Sex       models.Sex `json:"sex"`
	StartedAt time.Time  `json:"started_at"`
}

type ResponseSavedEvent struct {
	SessionID      string   `json:"session_id"`
	QuestionNumber int      `json:"question_number"`
	Response       []string `json:"response"`
	TotalResponses int64    `json:"total_responses"`
}

type SessionCompletedEvent struct {
	SessionID         string             `json:"session_id"`
	Sex               models.Sex         `json:"sex"`
	CompletedAt       time.Time          `json:"completed_at"`
	AnsweredQuestions int                `json:"answered_questions"`
	TopScales         []models.ScaleCode `json:"top_scales"`
}

func newEvent(eventType EventType, data interface{}) *SessionEvent {
	return &SessionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func NewSessionStartedEvent(session *models.TestSession) *SessionEvent {
	return newEvent(EventSessionStarted, SessionStartedEvent{
		SessionID: session.ID,
		Sex:       session.Sex,
		StartedAt: session.CreatedAt,
	})
}

func NewResponseSavedEvent(sessionID string, questionNumber int, response []string, total int64) *SessionEvent {
	return newEvent(EventSessionResponseSaved, ResponseSavedEvent{
		SessionID:      sessionID,
		QuestionNumber: questionNumber,
		Response:       response,
		TotalResponses: total,
	})
}

// NewSessionCompletedEvent carries the recommended scales in ranking order.
func NewSessionCompletedEvent(sessionID string, completedAt time.Time, profile *models.Profile) *SessionEvent {
	top := make([]models.ScaleCode, 0, len(profile.Recommendations.TopScales))
	for _, rec := range profile.Recommendations.TopScales {
		top = append(top, rec.Scale)
	}
	return newEvent(EventSessionCompleted, SessionCompletedEvent{
		SessionID:         sessionID,
		Sex:               profile.Sex,
		CompletedAt:       completedAt,
		AnsweredQuestions: profile.AnsweredQuestions,
		TopScales:         top,
	})
}
