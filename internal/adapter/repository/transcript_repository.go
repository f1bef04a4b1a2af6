package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// TranscriptRepository implements the transcript repository interface using GORM
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{
		db: db,
	}
}

// Create appends one fragment row
func (r *TranscriptRepository) Create(ctx context.Context, fragment *entities.TranscriptFragment) error {
	if err := r.db.WithContext(ctx).Create(fragment).Error; err != nil {
		return fmt.Errorf("failed to create transcript fragment: %w", err)
	}
	return nil
}

// ListByBotID lists all fragments for a bot in insertion order
func (r *TranscriptRepository) ListByBotID(ctx context.Context, botID string) ([]*entities.TranscriptFragment, error) {
	var fragments []*entities.TranscriptFragment
	if err := r.db.WithContext(ctx).
		Where("bot_id = ?", botID).
		Order("created_at ASC").
		Find(&fragments).Error; err != nil {
		return nil, fmt.Errorf("failed to list fragments by bot ID: %w", err)
	}
	return fragments, nil
}

// ListByMeetingID lists all fragments for a meeting in insertion order
func (r *TranscriptRepository) ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.TranscriptFragment, error) {
	var fragments []*entities.TranscriptFragment
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&fragments).Error; err != nil {
		return nil, fmt.Errorf("failed to list fragments by meeting ID: %w", err)
	}
	return fragments, nil
}

// CountByBotID counts stored fragments for a bot
func (r *TranscriptRepository) CountByBotID(ctx context.Context, botID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.TranscriptFragment{}).
		Where("bot_id = ?", botID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count fragments by bot ID: %w", err)
	}
	return count, nil
}
