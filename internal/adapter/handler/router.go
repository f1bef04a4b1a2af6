package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/momentum-hq/momentum-backend/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	recordingHandler *Recording
	webhookHandler   *Webhook
	summaryHandler   *Summary
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, recordingHandler *Recording, webhookHandler *Webhook, summaryHandler *Summary) *Router {
	return &Router{
		cfg:              cfg,
		recordingHandler: recordingHandler,
		webhookHandler:   webhookHandler,
		summaryHandler:   summaryHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupRecallRoutes(v1)
	rt.setupWebhookRoutes(v1)
}

// setupRecallRoutes configures bot lifecycle, transcript and summary routes
func (rt *Router) setupRecallRoutes(g *echo.Group) {
	recallGroup := g.Group("/recall")

	recallGroup.POST("/start-recording", rt.recordingHandler.StartRecording)
	recallGroup.POST("/stop-recording", rt.recordingHandler.StopRecording)
	recallGroup.GET("/recording-state", rt.recordingHandler.RecordingState)
	recallGroup.GET("/sessions/:meeting_id", rt.recordingHandler.ListSessions)

	meetings := recallGroup.Group("/meetings")
	meetings.GET("/:id/transcript", rt.recordingHandler.GetTranscript)
	meetings.POST("/:id/structured-summary", rt.summaryHandler.ProcessStructuredSummary)
	meetings.GET("/:id/structured-summary", rt.summaryHandler.GetStructuredSummary)
	meetings.GET("/:id/summaries", rt.summaryHandler.ListSummaries)
}

// setupWebhookRoutes configures the Recall.ai realtime delivery endpoint
func (rt *Router) setupWebhookRoutes(g *echo.Group) {
	webhookGroup := g.Group("/webhooks")

	webhookGroup.POST("/recall/transcription", rt.webhookHandler.HandleRecallTranscription)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "unknown"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
