package handlers

// APIResponse is the uniform envelope wrapping every handler outcome
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func response(status int, message string, data any) *APIResponse {
	return &APIResponse{Status: status, Message: message, Data: data}
}
