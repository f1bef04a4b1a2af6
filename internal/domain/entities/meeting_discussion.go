package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingDiscussion is one exploded discussion-point row from a structured
// summary. Participants is a JSON array of display names.
type MeetingDiscussion struct {
	DiscussionID uuid.UUID      `json:"discussion_id" gorm:"column:discussion_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Topic        string         `json:"topic" gorm:"type:text;not null"`
	Summary      string         `json:"summary,omitempty" gorm:"type:text"`
	Participants datatypes.JSON `json:"participants,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (MeetingDiscussion) TableName() string {
	return "meeting_discussions"
}
