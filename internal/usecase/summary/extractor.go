package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/momentum-hq/momentum-backend/internal/domain/entities"
)

// TextGenerator is the single-call text model the extractor depends on
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Extractor turns normalized transcript text into a StructuredSummary.
// Its output is always a valid structure: parse failures degrade to the
// fallback, only transport failures propagate.
type Extractor struct {
	model  TextGenerator
	logger *zap.Logger
}

// NewExtractor creates an extractor backed by the given model
func NewExtractor(model TextGenerator, logger *zap.Logger) *Extractor {
	return &Extractor{
		model:  model,
		logger: logger,
	}
}

const extractionPromptTemplate = `
You are an expert meeting analyst. Analyze the following meeting transcript and extract structured information.

TRANSCRIPT:
%s

Please provide a structured analysis in the following JSON format:

{
    "overview": "Brief overview of the meeting",
    "action_items": [
        {
            "description": "Action item description",
            "owner": "Person responsible",
            "due_date": "Due date if mentioned (YYYY-MM-DD format)",
            "priority": "high/medium/low",
            "status": "pending"
        }
    ],
    "key_decisions": [
        {
            "decision": "Decision made",
            "context": "Context around the decision",
            "impact": "Impact of the decision"
        }
    ],
    "key_takeaways": [
        "Key takeaway 1",
        "Key takeaway 2"
    ],
    "discussion_points": [
        {
            "topic": "Discussion topic",
            "summary": "Summary of discussion",
            "participants": ["Participant names"]
        }
    ],
    "jargon_clarifications": [
        {
            "term": "Jargon or acronym",
            "clarification": "Explanation of the term"
        }
    ],
    "themes": [
        "Theme 1",
        "Theme 2"
    ],
    "context_group": "Suggested context group identifier (e.g., 'product-development', 'sales-review', 'team-sync')"
}

Return ONLY the JSON object, no additional text.
`

// Extract generates a structured summary from transcript text. Empty input
// short-circuits to the fallback without touching the model.
func (e *Extractor) Extract(ctx context.Context, transcriptText string) (*entities.StructuredSummary, error) {
	if strings.TrimSpace(transcriptText) == "" {
		if e.logger != nil {
			e.logger.Info("📭 Empty transcript, returning fallback summary without model call")
		}
		return entities.FallbackSummary(), nil
	}

	prompt := fmt.Sprintf(extractionPromptTemplate, transcriptText)

	raw, err := e.model.GenerateContent(ctx, prompt)
	if err != nil {
		// Transport failures are the caller's problem, unlike parse failures
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	parsed, err := parseStructuredSummary(raw)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("⚠️ Failed to parse model output, using fallback summary",
				zap.Error(err))
		}
		return entities.FallbackSummary(), nil
	}
	return parsed, nil
}

// parseStructuredSummary is the one place model output becomes a structure.
// It strips markdown fences and requires a JSON object; anything else is a
// parse failure for the caller to branch on.
func parseStructuredSummary(raw string) (*entities.StructuredSummary, error) {
	cleaned := stripJSONFence(raw)
	if !strings.HasPrefix(cleaned, "{") {
		return nil, fmt.Errorf("model output is not a JSON object")
	}

	var summary entities.StructuredSummary
	if err := json.Unmarshal([]byte(cleaned), &summary); err != nil {
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}
	summary.Normalize()
	return &summary, nil
}

// stripJSONFence removes a leading ```json and trailing ``` wrapper
func stripJSONFence(s string) string {
	cleaned := strings.TrimSpace(s)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
