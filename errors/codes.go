package errors

// ErrorCode identifies an application error class in responses and logs
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004
	ErrorCode_FORBIDDEN        ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1006

	// Meetings and sessions
	ErrorCode_MEETING_NOT_FOUND ErrorCode = 2000
	ErrorCode_SESSION_NOT_FOUND ErrorCode = 2001
	ErrorCode_MISSING_BOT_ID    ErrorCode = 2002

	// Recording bot
	ErrorCode_BOT_START_FAILED ErrorCode = 3000
	ErrorCode_BOT_STOP_FAILED  ErrorCode = 3001
	ErrorCode_BOT_STATE_FAILED ErrorCode = 3002
	ErrorCode_WEBHOOK_REJECTED ErrorCode = 3003

	// AI pipeline
	ErrorCode_SUMMARY_FAILED      ErrorCode = 4000
	ErrorCode_SUMMARY_NOT_FOUND   ErrorCode = 4001
	ErrorCode_TRANSCRIPT_EMPTY    ErrorCode = 4002
	ErrorCode_MODEL_UNAVAILABLE   ErrorCode = 4003
	ErrorCode_PROCESSING_FAILED   ErrorCode = 4004
	ErrorCode_TRANSCRIPT_NOT_SAVED ErrorCode = 4005

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 5000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:       "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:      "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:            "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:    "MEETING_NOT_FOUND",
	ErrorCode_SESSION_NOT_FOUND:    "SESSION_NOT_FOUND",
	ErrorCode_MISSING_BOT_ID:       "MISSING_BOT_ID",
	ErrorCode_BOT_START_FAILED:     "BOT_START_FAILED",
	ErrorCode_BOT_STOP_FAILED:      "BOT_STOP_FAILED",
	ErrorCode_BOT_STATE_FAILED:     "BOT_STATE_FAILED",
	ErrorCode_WEBHOOK_REJECTED:     "WEBHOOK_REJECTED",
	ErrorCode_SUMMARY_FAILED:       "SUMMARY_FAILED",
	ErrorCode_SUMMARY_NOT_FOUND:    "SUMMARY_NOT_FOUND",
	ErrorCode_TRANSCRIPT_EMPTY:     "TRANSCRIPT_EMPTY",
	ErrorCode_MODEL_UNAVAILABLE:    "MODEL_UNAVAILABLE",
	ErrorCode_PROCESSING_FAILED:    "PROCESSING_FAILED",
	ErrorCode_TRANSCRIPT_NOT_SAVED: "TRANSCRIPT_NOT_SAVED",
	ErrorCode_DB_QUERY_FAILED:      "DB_QUERY_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
