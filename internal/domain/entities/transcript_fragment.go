package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TranscriptFragment is one verbatim webhook payload from the transcription
// bot. Fragments are append-only; nothing mutates or deduplicates them after
// insert. MeetingID is nullable so a fragment arriving before (or without)
// a session mapping is still kept.
type TranscriptFragment struct {
	TranscriptID uuid.UUID      `json:"transcript_id" gorm:"column:transcript_id;type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    *uuid.UUID     `json:"meeting_id,omitempty" gorm:"type:uuid;index"`
	BotID        string         `json:"bot_id" gorm:"type:text;not null;index"`
	Data         datatypes.JSON `json:"transcript_data" gorm:"column:transcript_data;type:jsonb;not null"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (TranscriptFragment) TableName() string {
	return "meeting_transcripts"
}

// NewTranscriptFragment creates a fragment row with a server-assigned timestamp
func NewTranscriptFragment(meetingID *uuid.UUID, botID string, data []byte) *TranscriptFragment {
	return &TranscriptFragment{
		TranscriptID: uuid.New(),
		MeetingID:    meetingID,
		BotID:        botID,
		Data:         datatypes.JSON(data),
		CreatedAt:    time.Now(),
	}
}
