package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem is one exploded action item row from a structured summary
type ActionItem struct {
	ActionID    uuid.UUID `json:"action_id" gorm:"column:action_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Owner       string    `json:"owner" gorm:"type:text"`
	DueDate     string    `json:"due_date,omitempty" gorm:"type:text"`
	Priority    string    `json:"priority" gorm:"type:varchar(20);default:medium"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:pending"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (ActionItem) TableName() string {
	return "action_items"
}
