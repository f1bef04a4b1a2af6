package entities

import (
	"time"

	"github.com/google/uuid"
)

// Meeting status values
const (
	MeetingStatusScheduled  = "scheduled"
	MeetingStatusStarted    = "started"
	MeetingStatusProcessing = "processing"
	MeetingStatusCompleted  = "completed"
	MeetingStatusError      = "error"
)

// Meeting is the stored meeting model. Only the fields the recording and
// summary flows touch are modeled here.
type Meeting struct {
	MeetingID uuid.UUID  `json:"meeting_id" gorm:"column:meeting_id;type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string     `json:"title" gorm:"type:text;not null"`
	Status    string     `json:"status" gorm:"column:meeting_status;type:varchar(20);default:scheduled"`
	BotID     *string    `json:"bot_id,omitempty" gorm:"column:bot_id;type:text;index"`
	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	StartedAt *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	EndedAt   *time.Time `json:"ended_at,omitempty" gorm:"type:timestamp"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}
