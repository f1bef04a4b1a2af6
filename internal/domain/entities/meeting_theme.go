package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingTheme captures the full themes list of one structured summary.
// Exactly one row is written per summary, even when the list is empty.
type MeetingTheme struct {
	ThemeID      uuid.UUID      `json:"theme_id" gorm:"column:theme_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Themes       datatypes.JSON `json:"themes" gorm:"type:jsonb;not null"`
	ContextGroup string         `json:"context_group,omitempty" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (MeetingTheme) TableName() string {
	return "meeting_themes"
}
