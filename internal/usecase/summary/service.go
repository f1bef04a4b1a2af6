package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
	"github.com/momentum-hq/momentum-backend/internal/domain/repositories"
)

// Notifier dispatches a fire-and-forget notification after a summary is
// persisted. Failures are logged by the caller, never propagated.
type Notifier interface {
	SummaryReady(meetingID, meetingTitle string) error
}

// ProcessResult is the structured outcome of one pipeline run. Callers
// branch on Status instead of unwinding errors across the boundary.
type ProcessResult struct {
	Status            string                      `json:"status"`
	Error             string                      `json:"error,omitempty"`
	SummaryID         *uuid.UUID                  `json:"summary_id,omitempty"`
	StructuredSummary *entities.StructuredSummary `json:"structured_summary,omitempty"`
	TranscriptLength  int                         `json:"transcript_length,omitempty"`
	SkippedFragments  int                         `json:"skipped_fragments,omitempty"`
	ProcessedAt       time.Time                   `json:"processed_at"`
}

// SummaryDetail bundles the latest structured summary with its exploded
// component rows for read endpoints
type SummaryDetail struct {
	Summary     *entities.MeetingSummary     `json:"summary"`
	Content     *entities.StructuredSummary  `json:"content"`
	ActionItems []*entities.ActionItem       `json:"action_items"`
	Decisions   []*entities.MeetingDecision  `json:"decisions"`
	Discussions []*entities.MeetingDiscussion `json:"discussions"`
}

// SummaryListing is one row of the all-summaries listing. Content is always
// a JSON object, never a raw string.
type SummaryListing struct {
	SummaryID    uuid.UUID                   `json:"summary_id"`
	MeetingID    uuid.UUID                   `json:"meeting_id"`
	SummaryType  string                      `json:"summary_type"`
	Content      *entities.StructuredSummary `json:"content"`
	ContextGroup string                      `json:"context_group"`
	CreatedBy    uuid.UUID                   `json:"created_by"`
	CreatedAt    time.Time                   `json:"created_at"`
}

// Service runs the transcript-to-summary pipeline: load fragments,
// normalize, extract, persist, notify. Each run executes sequentially
// within one request; there is no internal parallelism, retrying, or
// locking. Concurrent runs for the same meeting are last-write-wins and
// the newest summary row is the authoritative one.
type Service struct {
	transcripts repositories.TranscriptRepository
	summaries   repositories.SummaryRepository
	meetings    repositories.MeetingRepository
	extractor   *Extractor
	notifier    Notifier
	logger      *zap.Logger
}

// NewService creates the pipeline service
func NewService(
	transcripts repositories.TranscriptRepository,
	summaries repositories.SummaryRepository,
	meetings repositories.MeetingRepository,
	extractor *Extractor,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		transcripts: transcripts,
		summaries:   summaries,
		meetings:    meetings,
		extractor:   extractor,
		notifier:    notifier,
		logger:      logger,
	}
}

func errorResult(err error) *ProcessResult {
	return &ProcessResult{
		Status:      "error",
		Error:       err.Error(),
		ProcessedAt: time.Now().UTC(),
	}
}

// ProcessMeetingSummary runs the full pipeline for one meeting recording.
// The returned result always carries a status; only programming errors
// escape as panics.
func (s *Service) ProcessMeetingSummary(ctx context.Context, meetingID uuid.UUID, botID string, userID uuid.UUID) *ProcessResult {
	if s.logger != nil {
		s.logger.Info("🚀 Starting summary pipeline",
			zap.String("meeting_id", meetingID.String()),
			zap.String("bot_id", botID))
	}

	if err := s.meetings.UpdateStatus(ctx, meetingID, entities.MeetingStatusProcessing); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to mark meeting processing", zap.Error(err))
	}

	fragments, err := s.transcripts.ListByBotID(ctx, botID)
	if err != nil {
		s.failMeeting(ctx, meetingID)
		return errorResult(fmt.Errorf("load transcript fragments: %w", err))
	}
	if len(fragments) == 0 {
		s.failMeeting(ctx, meetingID)
		return errorResult(entities.ErrNoTranscriptData)
	}

	norm := Normalize(fragments)
	if norm.Skipped > 0 && s.logger != nil {
		s.logger.Warn("⚠️ Skipped fragments with unrecognized shape",
			zap.Int("skipped", norm.Skipped),
			zap.String("bot_id", botID))
	}
	if norm.Text == "" {
		s.failMeeting(ctx, meetingID)
		return errorResult(fmt.Errorf("no meaningful transcript content found"))
	}

	structured, err := s.extractor.Extract(ctx, norm.Text)
	if err != nil {
		// Transport failure: no summary row is written
		s.failMeeting(ctx, meetingID)
		return errorResult(err)
	}

	content, err := json.Marshal(structured)
	if err != nil {
		s.failMeeting(ctx, meetingID)
		return errorResult(fmt.Errorf("serialize summary: %w", err))
	}

	// Canonical row first; component rows are best-effort afterwards
	row := &entities.MeetingSummary{
		SummaryID:    uuid.New(),
		MeetingID:    meetingID,
		BotID:        botID,
		SummaryType:  entities.SummaryTypeStructured,
		Content:      string(content),
		ContextGroup: structured.ContextGroup,
		CreatedBy:    userID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.summaries.CreateSummary(ctx, row); err != nil {
		s.failMeeting(ctx, meetingID)
		return errorResult(fmt.Errorf("persist summary: %w", err))
	}

	s.saveComponents(ctx, meetingID, structured)

	if err := s.meetings.UpdateStatus(ctx, meetingID, entities.MeetingStatusCompleted); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to mark meeting completed", zap.Error(err))
	}

	s.notify(ctx, meetingID)

	if s.logger != nil {
		s.logger.Info("✅ Summary pipeline finished",
			zap.String("meeting_id", meetingID.String()),
			zap.String("summary_id", row.SummaryID.String()),
			zap.Int("transcript_length", len(norm.Text)))
	}

	return &ProcessResult{
		Status:            "success",
		SummaryID:         &row.SummaryID,
		StructuredSummary: structured,
		TranscriptLength:  len(norm.Text),
		SkippedFragments:  norm.Skipped,
		ProcessedAt:       time.Now().UTC(),
	}
}

func (s *Service) failMeeting(ctx context.Context, meetingID uuid.UUID) {
	if err := s.meetings.UpdateStatus(ctx, meetingID, entities.MeetingStatusError); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to mark meeting errored", zap.Error(err))
	}
}

// saveComponents fans the structure out into per-concern tables. Every write
// is independently best-effort; one malformed entry never sinks the batch,
// and the canonical row is already committed either way.
func (s *Service) saveComponents(ctx context.Context, meetingID uuid.UUID, structured *entities.StructuredSummary) {
	for _, item := range structured.ActionItems {
		row := &entities.ActionItem{
			ActionID:    uuid.New(),
			MeetingID:   meetingID,
			Description: item.Description,
			Owner:       item.Owner,
			DueDate:     item.DueDate,
			Priority:    item.Priority,
			Status:      item.Status,
		}
		if row.Priority == "" {
			row.Priority = "medium"
		}
		if row.Status == "" {
			row.Status = "pending"
		}
		if err := s.summaries.CreateActionItem(ctx, row); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to save action item", zap.Error(err))
		}
	}

	for _, decision := range structured.KeyDecisions {
		row := &entities.MeetingDecision{
			DecisionID: uuid.New(),
			MeetingID:  meetingID,
			Decision:   decision.Decision,
			Context:    decision.Context,
			Impact:     decision.Impact,
		}
		if err := s.summaries.CreateDecision(ctx, row); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to save decision", zap.Error(err))
		}
	}

	for _, discussion := range structured.DiscussionPoints {
		participants, err := json.Marshal(discussion.Participants)
		if err != nil {
			participants = []byte("[]")
		}
		row := &entities.MeetingDiscussion{
			DiscussionID: uuid.New(),
			MeetingID:    meetingID,
			Topic:        discussion.Topic,
			Summary:      discussion.Summary,
			Participants: datatypes.JSON(participants),
		}
		if err := s.summaries.CreateDiscussion(ctx, row); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to save discussion point", zap.Error(err))
		}
	}

	for _, jargon := range structured.JargonClarifications {
		row := &entities.MeetingJargon{
			JargonID:      uuid.New(),
			MeetingID:     meetingID,
			Term:          jargon.Term,
			Clarification: jargon.Clarification,
		}
		if err := s.summaries.CreateJargon(ctx, row); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to save jargon entry", zap.Error(err))
		}
	}

	// Exactly one themes row per summary, even when the list is empty
	themes, err := json.Marshal(structured.Themes)
	if err != nil {
		themes = []byte("[]")
	}
	themeRow := &entities.MeetingTheme{
		ThemeID:      uuid.New(),
		MeetingID:    meetingID,
		Themes:       datatypes.JSON(themes),
		ContextGroup: structured.ContextGroup,
	}
	if err := s.summaries.CreateTheme(ctx, themeRow); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to save themes row", zap.Error(err))
	}
}

func (s *Service) notify(ctx context.Context, meetingID uuid.UUID) {
	if s.notifier == nil {
		return
	}
	title := ""
	if meeting, err := s.meetings.FindByID(ctx, meetingID); err == nil {
		title = meeting.Title
	}
	if err := s.notifier.SummaryReady(meetingID.String(), title); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Summary notification failed", zap.Error(err))
	}
}

// coerceContent parses a stored content string back into a structure. Corrupt
// or non-object rows coerce to an all-empty shape so reads never fail on
// historical data.
func coerceContent(content string) *entities.StructuredSummary {
	var structured entities.StructuredSummary
	if err := json.Unmarshal([]byte(content), &structured); err != nil {
		empty := &entities.StructuredSummary{}
		empty.Normalize()
		empty.ContextGroup = ""
		return empty
	}
	structured.Normalize()
	return &structured
}

// GetMeetingSummary returns the newest structured summary for a meeting
// together with its exploded components
func (s *Service) GetMeetingSummary(ctx context.Context, meetingID uuid.UUID) (*SummaryDetail, error) {
	row, err := s.summaries.FindLatestStructured(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	detail := &SummaryDetail{
		Summary: row,
		Content: coerceContent(row.Content),
	}

	if detail.ActionItems, err = s.summaries.ListActionItems(ctx, meetingID); err != nil {
		return nil, err
	}
	if detail.Decisions, err = s.summaries.ListDecisions(ctx, meetingID); err != nil {
		return nil, err
	}
	if detail.Discussions, err = s.summaries.ListDiscussions(ctx, meetingID); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListMeetingSummaries lists every summary of a meeting with content coerced
// to a valid object
func (s *Service) ListMeetingSummaries(ctx context.Context, meetingID uuid.UUID) ([]*SummaryListing, error) {
	rows, err := s.summaries.ListByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	listings := make([]*SummaryListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, &SummaryListing{
			SummaryID:    row.SummaryID,
			MeetingID:    row.MeetingID,
			SummaryType:  row.SummaryType,
			Content:      coerceContent(row.Content),
			ContextGroup: row.ContextGroup,
			CreatedBy:    row.CreatedBy,
			CreatedAt:    row.CreatedAt,
		})
	}
	return listings, nil
}
