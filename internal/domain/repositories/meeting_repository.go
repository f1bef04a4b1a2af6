package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// FindByID finds a meeting by ID
	FindByID(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error)

	// AttachBot stamps the meeting with its recording bot and marks it started
	AttachBot(ctx context.Context, meetingID uuid.UUID, botID string) error

	// UpdateStatus updates the meeting lifecycle status
	UpdateStatus(ctx context.Context, meetingID uuid.UUID, status string) error
}
