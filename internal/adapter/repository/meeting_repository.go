package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// MeetingRepository implements the meeting repository interface using GORM
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{
		db: db,
	}
}

// FindByID finds a meeting by ID
func (r *MeetingRepository) FindByID(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&meeting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting by ID: %w", err)
	}
	return &meeting, nil
}

// AttachBot stamps the meeting with its recording bot and marks it started
func (r *MeetingRepository) AttachBot(ctx context.Context, meetingID uuid.UUID, botID string) error {
	now := time.Now()
	if err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("meeting_id = ?", meetingID).
		Updates(map[string]interface{}{
			"bot_id":         botID,
			"meeting_status": entities.MeetingStatusStarted,
			"started_at":     now,
		}).Error; err != nil {
		return fmt.Errorf("failed to attach bot to meeting: %w", err)
	}
	return nil
}

// UpdateStatus updates the meeting lifecycle status
func (r *MeetingRepository) UpdateStatus(ctx context.Context, meetingID uuid.UUID, status string) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("meeting_id = ?", meetingID).
		Update("meeting_status", status).Error; err != nil {
		return fmt.Errorf("failed to update meeting status: %w", err)
	}
	return nil
}
