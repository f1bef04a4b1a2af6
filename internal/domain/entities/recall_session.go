package entities

import (
	"time"

	"github.com/google/uuid"
)

// Recall session status values
const (
	SessionStatusActive  = "active"
	SessionStatusStopped = "stopped"
	SessionStatusError   = "error"
)

// RecallSession links a Recall.ai bot to the meeting it records
type RecallSession struct {
	SessionID uuid.UUID  `json:"session_id" gorm:"column:session_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null"`
	BotID     string     `json:"bot_id" gorm:"type:text;uniqueIndex;not null"`
	Status    string     `json:"status" gorm:"type:varchar(20);default:active"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	EndedAt   *time.Time `json:"ended_at,omitempty" gorm:"type:timestamp"`
}

// TableName specifies the table name for GORM
func (RecallSession) TableName() string {
	return "recall_sessions"
}

// NewRecallSession creates a new active session
func NewRecallSession(meetingID, userID uuid.UUID, botID string) *RecallSession {
	return &RecallSession{
		SessionID: uuid.New(),
		MeetingID: meetingID,
		UserID:    userID,
		BotID:     botID,
		Status:    SessionStatusActive,
		CreatedAt: time.Now(),
	}
}

// Close marks the session stopped
func (s *RecallSession) Close() {
	now := time.Now()
	s.Status = SessionStatusStopped
	s.EndedAt = &now
}
