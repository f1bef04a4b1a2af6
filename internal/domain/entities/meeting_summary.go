package entities

import (
	"time"

	"github.com/google/uuid"
)

// SummaryTypeStructured tags the canonical structured summary rows
const SummaryTypeStructured = "structured_summary"

// MeetingSummary is the canonical summary row. Content holds the full
// JSON-serialized StructuredSummary; ContextGroup duplicates the summary's
// own label as an indexed column for grouping queries.
type MeetingSummary struct {
	SummaryID    uuid.UUID `json:"summary_id" gorm:"column:summary_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	BotID        string    `json:"bot_id" gorm:"type:text;not null"`
	SummaryType  string    `json:"summary_type" gorm:"type:varchar(50);not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	ContextGroup string    `json:"context_group" gorm:"type:text;index"`
	CreatedBy    uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (MeetingSummary) TableName() string {
	return "meeting_summaries"
}
