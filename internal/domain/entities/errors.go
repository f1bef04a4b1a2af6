package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")

	// Session errors
	ErrSessionNotFound = errors.New("recall session not found")

	// Transcript errors
	ErrNoTranscriptData = errors.New("no transcript data available")

	// Summary errors
	ErrSummaryNotFound = errors.New("summary not found")
)
