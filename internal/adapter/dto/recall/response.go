package recall

// StartRecordingResponse reports the dispatched bot
type StartRecordingResponse struct {
	BotID  string `json:"botId"`
	Status string `json:"status"`
}

// StopRecordingResponse confirms the bot left the call
type StopRecordingResponse struct {
	Status string `json:"status"`
}
