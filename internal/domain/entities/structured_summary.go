package entities

// StructuredSummary is the fixed-shape document the summary extractor
// produces. Either the full structure (possibly with empty sub-lists) or the
// fallback structure exists; nothing in between is ever persisted.
type StructuredSummary struct {
	Overview             string                `json:"overview"`
	ActionItems          []SummaryActionItem   `json:"action_items"`
	KeyDecisions         []SummaryDecision     `json:"key_decisions"`
	KeyTakeaways         []string              `json:"key_takeaways"`
	DiscussionPoints     []SummaryDiscussion   `json:"discussion_points"`
	JargonClarifications []SummaryJargon       `json:"jargon_clarifications"`
	Themes               []string              `json:"themes"`
	ContextGroup         string                `json:"context_group"`
}

// SummaryActionItem is one action item inside a structured summary
type SummaryActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// SummaryDecision is one decision inside a structured summary
type SummaryDecision struct {
	Decision string `json:"decision"`
	Context  string `json:"context"`
	Impact   string `json:"impact"`
}

// SummaryDiscussion is one discussion point inside a structured summary
type SummaryDiscussion struct {
	Topic        string   `json:"topic"`
	Summary      string   `json:"summary"`
	Participants []string `json:"participants"`
}

// SummaryJargon is one jargon clarification inside a structured summary
type SummaryJargon struct {
	Term          string `json:"term"`
	Clarification string `json:"clarification"`
}

// FallbackSummary returns the structure used when extraction cannot produce
// a real result. Downstream writers rely on this exact shape.
func FallbackSummary() *StructuredSummary {
	return &StructuredSummary{
		Overview:             "Error processing transcript",
		ActionItems:          []SummaryActionItem{},
		KeyDecisions:         []SummaryDecision{},
		KeyTakeaways:         []string{},
		DiscussionPoints:     []SummaryDiscussion{},
		JargonClarifications: []SummaryJargon{},
		Themes:               []string{},
		ContextGroup:         "general",
	}
}

// Normalize replaces nil list fields with empty slices and defaults the
// context group, so callers can range and serialize without nil checks
func (s *StructuredSummary) Normalize() {
	if s.ActionItems == nil {
		s.ActionItems = []SummaryActionItem{}
	}
	if s.KeyDecisions == nil {
		s.KeyDecisions = []SummaryDecision{}
	}
	if s.KeyTakeaways == nil {
		s.KeyTakeaways = []string{}
	}
	if s.DiscussionPoints == nil {
		s.DiscussionPoints = []SummaryDiscussion{}
	}
	if s.JargonClarifications == nil {
		s.JargonClarifications = []SummaryJargon{}
	}
	if s.Themes == nil {
		s.Themes = []string{}
	}
	if s.ContextGroup == "" {
		s.ContextGroup = "general"
	}
}
