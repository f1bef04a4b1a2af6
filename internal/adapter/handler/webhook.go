package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/momentum-hq/momentum-backend/errors"
	"github.com/momentum-hq/momentum-backend/pkg/recall"
)

// TranscriptionIngestor consumes raw Recall.ai webhook payloads
type TranscriptionIngestor interface {
	HandleTranscriptionWebhook(ctx context.Context, payload []byte) error
}

// Webhook receives realtime transcription events from Recall.ai
type Webhook struct {
	ingestor TranscriptionIngestor
	secret   string
	logger   *zap.Logger
}

// NewWebhook creates a webhook handler
func NewWebhook(ingestor TranscriptionIngestor, secret string, logger *zap.Logger) *Webhook {
	return &Webhook{
		ingestor: ingestor,
		secret:   secret,
		logger:   logger,
	}
}

// HandleRecallTranscription authenticates and ingests one webhook delivery.
// A storage failure returns non-2xx so Recall.ai redelivers the event.
func (h *Webhook) HandleRecallTranscription(c echo.Context) error {
	if !recall.VerifyWebhookSecret(c.QueryParam("secret"), h.secret) {
		if h.logger != nil {
			h.logger.Warn("🚫 Rejected webhook with invalid secret",
				zap.String("remote_addr", c.RealIP()),
			)
		}
		return HandleError(h.logger, c, apperrors.ErrWebhookRejected())
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	if err := h.ingestor.HandleTranscriptionWebhook(c.Request().Context(), payload); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
