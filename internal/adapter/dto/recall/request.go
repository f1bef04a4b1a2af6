package recall

// StartRecordingRequest starts a notetaker bot for a meeting
type StartRecordingRequest struct {
	MeetingURL string `json:"meeting_url" validate:"required,url"`
	MeetingID  string `json:"meeting_id" validate:"required,uuid4"`
	UserID     string `json:"user_id" validate:"required,uuid4"`
}

// ProcessSummaryRequest triggers the structured summary pipeline
type ProcessSummaryRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}
