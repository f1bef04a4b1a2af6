package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// RecallSessionRepository defines the interface for recall session data access
type RecallSessionRepository interface {
	// Create creates a new session
	Create(ctx context.Context, session *entities.RecallSession) error

	// FindByBotID finds the session owning a bot
	FindByBotID(ctx context.Context, botID string) (*entities.RecallSession, error)

	// FindActiveByMeetingID finds the newest active session for a meeting
	FindActiveByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.RecallSession, error)

	// ListByMeetingID lists all sessions for a meeting, newest first
	ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.RecallSession, error)

	// Close marks a session stopped
	Close(ctx context.Context, sessionID uuid.UUID) error
}
