package chatrequests

// ChatRequest is the body accepted by the persona chat endpoints.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required,max=100"`
	Message   string `json:"message" binding:"required"`
	Mode      string `json:"mode,omitempty"` // optional mode pin; unknown values fall back to keyword detection
}
