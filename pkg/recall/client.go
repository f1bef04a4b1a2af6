package recall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/momentum-hq/momentum-backend/pkg/config"
)

// Client is a minimal Recall.ai bot API client
type Client struct {
	baseURL       string
	apiKey        string
	botName       string
	webhookURL    string
	webhookSecret string
	client        *http.Client
}

// NewClient creates a Recall.ai client using the provided config
func NewClient(cfg *config.RecallConfig) *Client {
	return &Client{
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		botName:       cfg.BotName,
		webhookURL:    cfg.WebhookURL,
		webhookSecret: cfg.WebhookSecret,
		client:        &http.Client{Timeout: 30 * time.Second},
	}
}

// Bot is the subset of the Recall.ai bot resource the service reads
type Bot struct {
	ID            string         `json:"id"`
	StatusChanges []StatusChange `json:"status_changes"`
}

// StatusChange is one entry in a bot's status history
type StatusChange struct {
	Code      string `json:"code"`
	CreatedAt string `json:"created_at"`
}

// LatestStatus returns the code of the newest status change, or "unknown"
func (b *Bot) LatestStatus() string {
	if len(b.StatusChanges) == 0 {
		return "unknown"
	}
	return b.StatusChanges[len(b.StatusChanges)-1].Code
}

// CreateBot dispatches a notetaker bot into the meeting. The bot streams
// transcript events back to the configured webhook URL with the shared
// secret appended as a query parameter. Transient failures are retried
// with exponential backoff; webhook ingestion itself is never retried here.
func (c *Client) CreateBot(ctx context.Context, meetingURL string) (*Bot, error) {
	payload := map[string]interface{}{
		"bot_name":    c.botName,
		"meeting_url": meetingURL,
		"recording_config": map[string]interface{}{
			"realtime_endpoints": []map[string]interface{}{
				{
					"type": "webhook",
					"url":  fmt.Sprintf("%s?secret=%s", c.webhookURL, c.webhookSecret),
					"events": []string{
						"transcript.partial_data",
						"transcript.data",
						"participant_events.chat_message",
					},
				},
			},
			"transcript": map[string]interface{}{
				"provider": map[string]interface{}{
					"gladia_v2_streaming": map[string]interface{}{},
				},
			},
		},
		"zoom": map[string]interface{}{
			"request_recording_permission_on_host_join": true,
			"require_recording_permission":              true,
		},
	}

	var bot Bot
	operation := func() error {
		return c.do(ctx, http.MethodPost, "/api/v1/bot", payload, &bot)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	return &bot, nil
}

// LeaveCall tells the bot to leave the meeting
func (c *Client) LeaveCall(ctx context.Context, botID string) error {
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/bot/%s/leave_call", botID), nil, nil); err != nil {
		return fmt.Errorf("leave call: %w", err)
	}
	return nil
}

// GetBot fetches the current bot resource including its status history
func (c *Client) GetBot(ctx context.Context, botID string) (*Bot, error) {
	var bot Bot
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/bot/%s", botID), nil, &bot); err != nil {
		return nil, fmt.Errorf("get bot: %w", err)
	}
	return &bot, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("recall api returned status %d: %s", resp.StatusCode, msg)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}
