package models

import (
	"time"

	"gorm.io/datatypes"
)

// TestSession is one respondent's run through the questionnaire.
type TestSession struct {
	ID          string            `json:"id" gorm:"primaryKey;size:36"`
	Sex         Sex               `json:"sex" gorm:"not null;size:16;index" validate:"required,sex"`
	Completed   bool              `json:"completed" gorm:"not null;index"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at"`
	Responses   []SessionResponse `json:"responses" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (TestSession) TableName() string {
	return "test_sessions"
}

// SessionResponse stores the options marked for one question. An empty
// Options list is kept as a row so a skipped item stays distinguishable
// from one that was never submitted.
type SessionResponse struct {
	ID             uint                        `json:"-" gorm:"primaryKey"`
	SessionID      string                      `json:"-" gorm:"not null;size:36;uniqueIndex:idx_session_question"`
	QuestionNumber int                         `json:"question_number" gorm:"not null;uniqueIndex:idx_session_question"`
	Options        datatypes.JSONSlice[string] `json:"response" gorm:"type:jsonb;not null"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (SessionResponse) TableName() string {
	return "session_responses"
}

// Answers rebuilds the scoring input from stored rows. Rows that no longer
// parse are skipped; the boundary rejects them before they are written.
func (s *TestSession) Answers() Answers {
	answers := make(Answers, len(s.Responses))
	for _, r := range s.Responses {
		sel, err := ParseSelection(r.Options)
		if err != nil {
			continue
		}
		answers[r.QuestionNumber] = sel
	}
	return answers
}
