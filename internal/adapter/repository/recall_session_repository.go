package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// RecallSessionRepository implements the session repository interface using GORM
type RecallSessionRepository struct {
	db *gorm.DB
}

// NewRecallSessionRepository creates a new recall session repository
func NewRecallSessionRepository(db *gorm.DB) *RecallSessionRepository {
	return &RecallSessionRepository{
		db: db,
	}
}

// Create creates a new session
func (r *RecallSessionRepository) Create(ctx context.Context, session *entities.RecallSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create recall session: %w", err)
	}
	return nil
}

// FindByBotID finds the session owning a bot
func (r *RecallSessionRepository) FindByBotID(ctx context.Context, botID string) (*entities.RecallSession, error) {
	var session entities.RecallSession
	if err := r.db.WithContext(ctx).Where("bot_id = ?", botID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session by bot ID: %w", err)
	}
	return &session, nil
}

// FindActiveByMeetingID finds the newest active session for a meeting
func (r *RecallSessionRepository) FindActiveByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.RecallSession, error) {
	var session entities.RecallSession
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND status = ?", meetingID, entities.SessionStatusActive).
		Order("created_at DESC").
		First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}
	return &session, nil
}

// ListByMeetingID lists all sessions for a meeting, newest first
func (r *RecallSessionRepository) ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.RecallSession, error) {
	var sessions []*entities.RecallSession
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions by meeting ID: %w", err)
	}
	return sessions, nil
}

// Close marks a session stopped
func (r *RecallSessionRepository) Close(ctx context.Context, sessionID uuid.UUID) error {
	now := time.Now()
	if err := r.db.WithContext(ctx).
		Model(&entities.RecallSession{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"status":   entities.SessionStatusStopped,
			"ended_at": now,
		}).Error; err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}
