package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// SummaryRepository defines the interface for summary persistence. The
// canonical summary row and the exploded component rows live behind the
// same interface so the pipeline service owns the write ordering.
type SummaryRepository interface {
	// CreateSummary writes the canonical summary row
	CreateSummary(ctx context.Context, summary *entities.MeetingSummary) error

	// CreateActionItem writes one exploded action item row
	CreateActionItem(ctx context.Context, item *entities.ActionItem) error

	// CreateDecision writes one exploded decision row
	CreateDecision(ctx context.Context, decision *entities.MeetingDecision) error

	// CreateDiscussion writes one exploded discussion row
	CreateDiscussion(ctx context.Context, discussion *entities.MeetingDiscussion) error

	// CreateJargon writes one exploded jargon row
	CreateJargon(ctx context.Context, jargon *entities.MeetingJargon) error

	// CreateTheme writes the single themes row of a summary
	CreateTheme(ctx context.Context, theme *entities.MeetingTheme) error

	// FindLatestStructured returns the newest structured summary for a meeting
	FindLatestStructured(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error)

	// ListByMeetingID lists all summaries for a meeting, newest first
	ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingSummary, error)

	// ListActionItems lists exploded action items for a meeting
	ListActionItems(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// ListDecisions lists exploded decisions for a meeting
	ListDecisions(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingDecision, error)

	// ListDiscussions lists exploded discussions for a meeting
	ListDiscussions(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingDiscussion, error)
}
