// Package memory keeps sessions in process memory. It backs the
// "--storage memory" development mode and the HTTP tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"gorm.io/datatypes"
)

type SessionMemory struct {
	mu        sync.RWMutex
	sessions  map[string]*models.TestSession
	responses map[string]map[int]models.SessionResponse
	nextID    uint
}

func NewSessionMemory() *SessionMemory {
	return &SessionMemory{
		sessions:  make(map[string]*models.TestSession),
		responses: make(map[string]map[int]models.SessionResponse),
	}
}

func (m *SessionMemory) Create(ctx context.Context, session *models.TestSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	stored := *session
	stored.Responses = nil
	m.sessions[session.ID] = &stored
	m.responses[session.ID] = make(map[int]models.SessionResponse)
	return nil
}

func (m *SessionMemory) GetByID(ctx context.Context, id string) (*models.TestSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *session
	return &out, nil
}

func (m *SessionMemory) GetWithResponses(ctx context.Context, id string) (*models.TestSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.sessions[id]; !ok {
		return nil, repositories.ErrNotFound
	}
	return m.withResponses(id), nil
}

func (m *SessionMemory) UpsertResponse(ctx context.Context, response *models.SessionResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byQuestion, ok := m.responses[response.SessionID]
	if !ok {
		return repositories.ErrNotFound
	}

	stored, exists := byQuestion[response.QuestionNumber]
	if !exists {
		m.nextID++
		stored.ID = m.nextID
	}
	stored.SessionID = response.SessionID
	stored.QuestionNumber = response.QuestionNumber
	stored.Options = append(datatypes.JSONSlice[string]{}, response.Options...)
	stored.UpdatedAt = time.Now()
	byQuestion[response.QuestionNumber] = stored

	response.ID = stored.ID
	response.UpdatedAt = stored.UpdatedAt
	return nil
}

func (m *SessionMemory) CountResponses(ctx context.Context, sessionID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.responses[sessionID])), nil
}

func (m *SessionMemory) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if session.Completed {
		return repositories.ErrAlreadyCompleted
	}
	session.Completed = true
	session.CompletedAt = &at
	return nil
}

func (m *SessionMemory) List(ctx context.Context, filters repositories.SessionFilters) ([]*models.TestSession, int64, error) {
	return m.list(filters, false)
}

func (m *SessionMemory) ListWithResponses(ctx context.Context, filters repositories.SessionFilters) ([]*models.TestSession, int64, error) {
	return m.list(filters, true)
}

func (m *SessionMemory) list(filters repositories.SessionFilters, withResponses bool) ([]*models.TestSession, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filters = filters.Normalized()
	matched := make([]*models.TestSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		if filters.Matches(session) {
			matched = append(matched, session)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := sortKey(matched[i], filters.SortBy), sortKey(matched[j], filters.SortBy)
		if a.Equal(b) {
			return matched[i].ID < matched[j].ID
		}
		if filters.SortOrder == "desc" {
			return a.After(b)
		}
		return a.Before(b)
	})

	total := int64(len(matched))
	if filters.Offset >= len(matched) {
		matched = matched[:0]
	} else {
		matched = matched[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(matched) {
		matched = matched[:filters.Limit]
	}

	out := make([]*models.TestSession, 0, len(matched))
	for _, session := range matched {
		if withResponses {
			out = append(out, m.withResponses(session.ID))
			continue
		}
		copied := *session
		out = append(out, &copied)
	}
	return out, total, nil
}

// withResponses copies a session with its responses in question order.
// Callers must hold the read lock.
func (m *SessionMemory) withResponses(id string) *models.TestSession {
	out := *m.sessions[id]
	byQuestion := m.responses[id]

	out.Responses = make([]models.SessionResponse, 0, len(byQuestion))
	for _, r := range byQuestion {
		r.Options = append(datatypes.JSONSlice[string]{}, r.Options...)
		out.Responses = append(out.Responses, r)
	}
	sort.Slice(out.Responses, func(i, j int) bool {
		return out.Responses[i].QuestionNumber < out.Responses[j].QuestionNumber
	})
	return &out
}

func sortKey(session *models.TestSession, sortBy string) time.Time {
	if sortBy == repositories.SortByCompletedAt {
		if session.CompletedAt == nil {
			return time.Time{}
		}
		return *session.CompletedAt
	}
	return session.CreatedAt
}

// Repository adapts SessionMemory to repositories.Repository.
type Repository struct {
	sessions *SessionMemory
}

func NewRepository() *Repository {
	return &Repository{sessions: NewSessionMemory()}
}

func (r *Repository) Session() repositories.SessionRepository {
	return r.sessions
}

func (r *Repository) Migrate(ctx context.Context) error {
	return nil
}
