package handler

import (
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/momentum-hq/momentum-backend/errors"
	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
	"github.com/momentum-hq/momentum-backend/internal/domain/repositories"
	summaryusecase "github.com/momentum-hq/momentum-backend/internal/usecase/summary"
)

// Summary exposes the structured summary pipeline and its read endpoints
type Summary struct {
	svc      *summaryusecase.Service
	meetings repositories.MeetingRepository
	logger   *zap.Logger
}

// NewSummary creates a summary handler
func NewSummary(svc *summaryusecase.Service, meetings repositories.MeetingRepository, logger *zap.Logger) *Summary {
	return &Summary{
		svc:      svc,
		meetings: meetings,
		logger:   logger,
	}
}

// ProcessStructuredSummary runs the transcript-to-summary pipeline for a
// meeting. The bot id is resolved from the meeting row, so the pipeline can
// run long after the recording session ended.
func (h *Summary) ProcessStructuredSummary(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting id must be a valid UUID"))
	}

	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("user_id must be a valid UUID"))
	}

	meeting, err := h.meetings.FindByID(c.Request().Context(), meetingID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(meetingID.String()))
		}
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("find meeting", err))
	}
	if meeting.BotID == nil || *meeting.BotID == "" {
		return HandleError(h.logger, c, apperrors.ErrMissingBotID().WithDetail("meeting_id", meetingID.String()))
	}

	result := h.svc.ProcessMeetingSummary(c.Request().Context(), meetingID, *meeting.BotID, userID)
	if result.Status == "error" {
		return HandleError(h.logger, c, apperrors.ErrSummaryFailed(stdErrors.New(result.Error)))
	}

	return HandleSuccess(h.logger, c, result)
}

// GetStructuredSummary returns the latest structured summary of a meeting
// along with its exploded component rows
func (h *Summary) GetStructuredSummary(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting id must be a valid UUID"))
	}

	detail, err := h.svc.GetMeetingSummary(c.Request().Context(), meetingID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrSummaryNotFound) {
			return HandleError(h.logger, c, apperrors.ErrSummaryNotFound(meetingID.String()))
		}
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("load summary", err))
	}

	return HandleSuccess(h.logger, c, detail)
}

// ListSummaries returns every summary row of a meeting, newest first
func (h *Summary) ListSummaries(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting id must be a valid UUID"))
	}

	listings, err := h.svc.ListMeetingSummaries(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("list summaries", err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"summaries": listings,
		"count":     len(listings),
	})
}
