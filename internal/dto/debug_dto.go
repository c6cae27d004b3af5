package dto

type SessionInspection struct {
	Session     SessionResponse `json:"session"`
	UserProfile string          `json:"user_profile"`
	FirstInput  string          `json:"first_input"`
	RiskProfile string          `json:"risk_profile"`
	TurnCount   int64           `json:"turn_count"`
	ProfileErr  string          `json:"profile_error,omitempty"`
}

type RagPingResponse struct {
	URL        string `json:"url"`
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

type RagLatencyResponse struct {
	Endpoint   string `json:"endpoint"`
	Outcome    string `json:"outcome"`
	DurationMs int64  `json:"duration_ms"`
	TimeoutMs  int64  `json:"timeout_ms"`
	Error      string `json:"error,omitempty"`
}
