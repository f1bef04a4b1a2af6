package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingDecision is one exploded decision row from a structured summary
type MeetingDecision struct {
	DecisionID uuid.UUID `json:"decision_id" gorm:"column:decision_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID  uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Decision   string    `json:"decision" gorm:"type:text;not null"`
	Context    string    `json:"context,omitempty" gorm:"type:text"`
	Impact     string    `json:"impact,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (MeetingDecision) TableName() string {
	return "meeting_decisions"
}
