package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingJargon is one exploded jargon-clarification row from a structured summary
type MeetingJargon struct {
	JargonID      uuid.UUID `json:"jargon_id" gorm:"column:jargon_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID     uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Term          string    `json:"term" gorm:"type:text;not null"`
	Clarification string    `json:"clarification" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (MeetingJargon) TableName() string {
	return "meeting_jargon"
}
