package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/momentum-hq/momentum-backend/errors"
	recalldto "github.com/momentum-hq/momentum-backend/internal/adapter/dto/recall"
	recallusecase "github.com/momentum-hq/momentum-backend/internal/usecase/recall"
)

// Recording exposes the bot lifecycle and transcript read endpoints
type Recording struct {
	svc    *recallusecase.Service
	logger *zap.Logger
}

// NewRecording creates a recording handler
func NewRecording(svc *recallusecase.Service, logger *zap.Logger) *Recording {
	return &Recording{
		svc:    svc,
		logger: logger,
	}
}

// StartRecording dispatches a notetaker bot into a meeting
func (h *Recording) StartRecording(c echo.Context) error {
	var req recalldto.StartRecordingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting_id must be a valid UUID"))
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("user_id must be a valid UUID"))
	}

	botID, err := h.svc.StartRecording(c.Request().Context(), req.MeetingURL, meetingID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, recalldto.StartRecordingResponse{
		BotID:  botID,
		Status: "started",
	})
}

// StopRecording tells the active bot of a meeting to leave the call
func (h *Recording) StopRecording(c echo.Context) error {
	meetingID, err := uuid.Parse(c.QueryParam("meeting_id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting_id must be a valid UUID"))
	}

	if err := h.svc.StopRecording(c.Request().Context(), meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, recalldto.StopRecordingResponse{Status: "stopped"})
}

// RecordingState returns the live bot status and stored fragment count
func (h *Recording) RecordingState(c echo.Context) error {
	meetingID, err := uuid.Parse(c.QueryParam("meeting_id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting_id must be a valid UUID"))
	}

	state, err := h.svc.GetRecordingState(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, state)
}

// ListSessions lists all recording sessions of a meeting
func (h *Recording) ListSessions(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("meeting_id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting_id must be a valid UUID"))
	}

	sessions, err := h.svc.ListSessions(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, sessions)
}

// GetTranscript renders the stored fragments of a meeting as readable rows
func (h *Recording) GetTranscript(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("meeting id must be a valid UUID"))
	}

	lines, err := h.svc.GetTranscript(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{
		"transcript": lines,
	})
}
