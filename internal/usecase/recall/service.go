package recall

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/momentum-hq/momentum-backend/errors"
	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
	"github.com/momentum-hq/momentum-backend/internal/domain/repositories"
	"github.com/momentum-hq/momentum-backend/pkg/recall"
)

// BotClient is the Recall.ai surface the service depends on
type BotClient interface {
	CreateBot(ctx context.Context, meetingURL string) (*recall.Bot, error)
	LeaveCall(ctx context.Context, botID string) error
	GetBot(ctx context.Context, botID string) (*recall.Bot, error)
}

// SessionCache caches the bot-to-meeting mapping consulted on every webhook
// delivery. A miss falls through to the sessions table.
type SessionCache interface {
	GetMeetingID(ctx context.Context, botID string) (uuid.UUID, bool)
	SetMeetingID(ctx context.Context, botID string, meetingID uuid.UUID)
}

// webhookEnvelope is the Recall.ai realtime event wrapper
type webhookEnvelope struct {
	Event string `json:"event"`
	Data  struct {
		Bot struct {
			ID string `json:"id"`
		} `json:"bot"`
		Data json.RawMessage `json:"data"`
	} `json:"data"`
}

// RecordingState is the live view of one recording bot
type RecordingState struct {
	State         string `json:"state"`
	FragmentCount int64  `json:"fragment_count"`
}

// TranscriptLine is one presentation row of a readable transcript
type TranscriptLine struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Service manages recording bot lifecycle and ingests transcription webhooks
type Service struct {
	bots        BotClient
	sessions    repositories.RecallSessionRepository
	meetings    repositories.MeetingRepository
	transcripts repositories.TranscriptRepository
	cache       SessionCache
	logger      *zap.Logger
}

// NewService creates the recording service
func NewService(
	bots BotClient,
	sessions repositories.RecallSessionRepository,
	meetings repositories.MeetingRepository,
	transcripts repositories.TranscriptRepository,
	cache SessionCache,
	logger *zap.Logger,
) *Service {
	return &Service{
		bots:        bots,
		sessions:    sessions,
		meetings:    meetings,
		transcripts: transcripts,
		cache:       cache,
		logger:      logger,
	}
}

// StartRecording dispatches a bot into the meeting, records the session and
// stamps the meeting with the bot id
func (s *Service) StartRecording(ctx context.Context, meetingURL string, meetingID, userID uuid.UUID) (string, error) {
	if _, err := s.meetings.FindByID(ctx, meetingID); err != nil {
		if err == entities.ErrMeetingNotFound {
			return "", apperrors.ErrMeetingNotFound(meetingID.String())
		}
		return "", apperrors.ErrDBQueryFailed("find meeting", err)
	}

	bot, err := s.bots.CreateBot(ctx, meetingURL)
	if err != nil {
		return "", apperrors.ErrBotStartFailed(meetingID.String(), err)
	}

	session := entities.NewRecallSession(meetingID, userID, bot.ID)
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", apperrors.ErrDBQueryFailed("create session", err)
	}

	if err := s.meetings.AttachBot(ctx, meetingID, bot.ID); err != nil {
		// Session row exists; the webhook path can still resolve the mapping
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to stamp meeting with bot id",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(err))
		}
	}

	if s.cache != nil {
		s.cache.SetMeetingID(ctx, bot.ID, meetingID)
	}

	if s.logger != nil {
		s.logger.Info("🤖 Recording bot dispatched",
			zap.String("meeting_id", meetingID.String()),
			zap.String("bot_id", bot.ID))
	}
	return bot.ID, nil
}

// StopRecording tells the active bot to leave the call and closes its session
func (s *Service) StopRecording(ctx context.Context, meetingID uuid.UUID) error {
	session, err := s.sessions.FindActiveByMeetingID(ctx, meetingID)
	if err != nil {
		if err == entities.ErrSessionNotFound {
			return apperrors.ErrSessionNotFound(meetingID.String())
		}
		return apperrors.ErrDBQueryFailed("find active session", err)
	}

	if err := s.bots.LeaveCall(ctx, session.BotID); err != nil {
		return apperrors.ErrBotStopFailed(session.BotID, err)
	}

	if err := s.sessions.Close(ctx, session.SessionID); err != nil {
		return apperrors.ErrDBQueryFailed("close session", err)
	}

	if s.logger != nil {
		s.logger.Info("🛑 Recording stopped",
			zap.String("meeting_id", meetingID.String()),
			zap.String("bot_id", session.BotID))
	}
	return nil
}

// GetRecordingState returns the bot's latest status plus how many fragments
// have been stored so far
func (s *Service) GetRecordingState(ctx context.Context, meetingID uuid.UUID) (*RecordingState, error) {
	session, err := s.sessions.FindActiveByMeetingID(ctx, meetingID)
	if err != nil {
		if err == entities.ErrSessionNotFound {
			return nil, apperrors.ErrSessionNotFound(meetingID.String())
		}
		return nil, apperrors.ErrDBQueryFailed("find active session", err)
	}

	bot, err := s.bots.GetBot(ctx, session.BotID)
	if err != nil {
		return nil, apperrors.ErrBotStateFailed(session.BotID, err)
	}

	count, err := s.transcripts.CountByBotID(ctx, session.BotID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("count fragments", err)
	}

	return &RecordingState{
		State:         bot.LatestStatus(),
		FragmentCount: count,
	}, nil
}

// ListSessions lists all recording sessions of a meeting
func (s *Service) ListSessions(ctx context.Context, meetingID uuid.UUID) ([]*entities.RecallSession, error) {
	sessions, err := s.sessions.ListByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list sessions", err)
	}
	return sessions, nil
}

// HandleTranscriptionWebhook ingests one realtime webhook delivery. Events
// other than transcript.data are acknowledged no-ops. The fragment is stored
// verbatim; a missing bot-to-meeting mapping is logged but never blocks the
// write. A failed write fails the call so the sender redelivers.
func (s *Service) HandleTranscriptionWebhook(ctx context.Context, payload []byte) error {
	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return apperrors.ErrInvalidPayload()
	}

	if envelope.Event != "transcript.data" {
		return nil
	}

	botID := envelope.Data.Bot.ID
	if botID == "" {
		return apperrors.ErrMissingBotID()
	}
	if len(envelope.Data.Data) == 0 || string(envelope.Data.Data) == "null" {
		return apperrors.ErrInvalidPayload()
	}

	meetingID := s.resolveMeetingID(ctx, botID)
	fragment := entities.NewTranscriptFragment(meetingID, botID, envelope.Data.Data)
	if err := s.transcripts.Create(ctx, fragment); err != nil {
		return apperrors.ErrTranscriptNotSaved(botID, err)
	}

	if s.logger != nil {
		s.logger.Debug("📝 Stored transcript fragment",
			zap.String("bot_id", botID),
			zap.String("transcript_id", fragment.TranscriptID.String()))
	}
	return nil
}

// resolveMeetingID maps a bot id to its meeting: cache first, then the
// sessions table, filling the cache on a miss. Returns nil when no mapping
// exists; the fragment is stored anyway.
func (s *Service) resolveMeetingID(ctx context.Context, botID string) *uuid.UUID {
	if s.cache != nil {
		if id, ok := s.cache.GetMeetingID(ctx, botID); ok {
			return &id
		}
	}

	session, err := s.sessions.FindByBotID(ctx, botID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ No recall session found for bot, storing fragment without meeting",
				zap.String("bot_id", botID))
		}
		return nil
	}

	if s.cache != nil {
		s.cache.SetMeetingID(ctx, botID, session.MeetingID)
	}
	return &session.MeetingID
}

// GetTranscript renders the stored fragments of a meeting as readable
// speaker/text rows. Relative offsets become MM:SS here, at presentation
// time only.
func (s *Service) GetTranscript(ctx context.Context, meetingID uuid.UUID) ([]TranscriptLine, error) {
	fragments, err := s.transcripts.ListByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list fragments", err)
	}
	if len(fragments) == 0 {
		return nil, apperrors.ErrTranscriptEmpty(meetingID.String())
	}

	lines := make([]TranscriptLine, 0, len(fragments))
	for _, fragment := range fragments {
		if line, ok := renderFragment(fragment.Data); ok {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

type presentationWord struct {
	Text           string `json:"text"`
	StartTimestamp *struct {
		Relative float64 `json:"relative"`
	} `json:"start_timestamp"`
}

type presentationPayload struct {
	Speaker     string `json:"speaker"`
	Participant *struct {
		Name string `json:"name"`
	} `json:"participant"`
	Words []presentationWord `json:"words"`
}

func renderFragment(data []byte) (TranscriptLine, bool) {
	var payload presentationPayload
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Words) == 0 {
		return TranscriptLine{}, false
	}

	speaker := payload.Speaker
	if speaker == "" && payload.Participant != nil {
		speaker = payload.Participant.Name
	}
	if speaker == "" {
		speaker = "Unknown"
	}

	timestamp := "00:00"
	if first := payload.Words[0]; first.StartTimestamp != nil {
		seconds := int(first.StartTimestamp.Relative)
		timestamp = fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
	}

	texts := make([]string, 0, len(payload.Words))
	for _, w := range payload.Words {
		texts = append(texts, w.Text)
	}

	return TranscriptLine{
		Speaker:   speaker,
		Text:      strings.Join(texts, " "),
		Timestamp: timestamp,
	}, true
}
