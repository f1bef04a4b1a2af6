package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// SummaryRepository implements the summary repository interface using GORM
type SummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{
		db: db,
	}
}

// CreateSummary writes the canonical summary row
func (r *SummaryRepository) CreateSummary(ctx context.Context, summary *entities.MeetingSummary) error {
	if err := r.db.WithContext(ctx).Create(summary).Error; err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	return nil
}

// CreateActionItem writes one exploded action item row
func (r *SummaryRepository) CreateActionItem(ctx context.Context, item *entities.ActionItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create action item: %w", err)
	}
	return nil
}

// CreateDecision writes one exploded decision row
func (r *SummaryRepository) CreateDecision(ctx context.Context, decision *entities.MeetingDecision) error {
	if err := r.db.WithContext(ctx).Create(decision).Error; err != nil {
		return fmt.Errorf("failed to create decision: %w", err)
	}
	return nil
}

// CreateDiscussion writes one exploded discussion row
func (r *SummaryRepository) CreateDiscussion(ctx context.Context, discussion *entities.MeetingDiscussion) error {
	if err := r.db.WithContext(ctx).Create(discussion).Error; err != nil {
		return fmt.Errorf("failed to create discussion: %w", err)
	}
	return nil
}

// CreateJargon writes one exploded jargon row
func (r *SummaryRepository) CreateJargon(ctx context.Context, jargon *entities.MeetingJargon) error {
	if err := r.db.WithContext(ctx).Create(jargon).Error; err != nil {
		return fmt.Errorf("failed to create jargon entry: %w", err)
	}
	return nil
}

// CreateTheme writes the single themes row of a summary
func (r *SummaryRepository) CreateTheme(ctx context.Context, theme *entities.MeetingTheme) error {
	if err := r.db.WithContext(ctx).Create(theme).Error; err != nil {
		return fmt.Errorf("failed to create theme row: %w", err)
	}
	return nil
}

// FindLatestStructured returns the newest structured summary for a meeting
func (r *SummaryRepository) FindLatestStructured(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	var summary entities.MeetingSummary
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND summary_type = ?", meetingID, entities.SummaryTypeStructured).
		Order("created_at DESC").
		First(&summary).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to find structured summary: %w", err)
	}
	return &summary, nil
}

// ListByMeetingID lists all summaries for a meeting, newest first
func (r *SummaryRepository) ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingSummary, error) {
	var summaries []*entities.MeetingSummary
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list summaries by meeting ID: %w", err)
	}
	return summaries, nil
}

// ListActionItems lists exploded action items for a meeting
func (r *SummaryRepository) ListActionItems(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// ListDecisions lists exploded decisions for a meeting
func (r *SummaryRepository) ListDecisions(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingDecision, error) {
	var decisions []*entities.MeetingDecision
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&decisions).Error; err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, nil
}

// ListDiscussions lists exploded discussions for a meeting
func (r *SummaryRepository) ListDiscussions(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingDiscussion, error) {
	var discussions []*entities.MeetingDiscussion
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&discussions).Error; err != nil {
		return nil, fmt.Errorf("failed to list discussions: %w", err)
	}
	return discussions, nil
}
