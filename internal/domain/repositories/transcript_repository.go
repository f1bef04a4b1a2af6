package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// TranscriptRepository defines the interface for transcript fragment access.
// Fragments are append-only.
type TranscriptRepository interface {
	// Create appends one fragment row
	Create(ctx context.Context, fragment *entities.TranscriptFragment) error

	// ListByBotID lists all fragments for a bot in insertion order
	ListByBotID(ctx context.Context, botID string) ([]*entities.TranscriptFragment, error)

	// ListByMeetingID lists all fragments for a meeting in insertion order
	ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.TranscriptFragment, error)

	// CountByBotID counts stored fragments for a bot
	CountByBotID(ctx context.Context, botID string) (int64, error)
}
