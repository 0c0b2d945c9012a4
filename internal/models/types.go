package models

// NATS request from a chat frontend
type ChatRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	Message   string `json:"message"`
}

// NATS response to a chat frontend
type ChatResponse struct {
	SessionID    string  `json:"session_id"`
	Status       string  `json:"status"` // "SUCCESS", "BLOCKED_INPUT", "BLOCKED_OUTPUT", "ERROR"
	Reply        string  `json:"reply"`
	ErrorCode    *string `json:"error_code,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
}

// Status constants
const (
	StatusSuccess       = "SUCCESS"
	StatusBlockedInput  = "BLOCKED_INPUT"
	StatusBlockedOutput = "BLOCKED_OUTPUT"
	StatusError         = "ERROR"
)

// Error codes
const (
	ErrorLLMTimeout = "LLM_API_TIMEOUT"
	ErrorLLMFailed  = "LLM_API_FAILED"
	ErrorParseError = "PARSE_ERROR"
	ErrorBadRequest = "BAD_REQUEST"
)
