package handlers

// ErrorResponse is the error envelope returned by all endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the generic success envelope
type SuccessResponse struct {
	Message string `json:"message"`
}

// userMessage extracts the message shown to the user, in fixed precedence:
// server-provided message, then the error text, then a static fallback.
func userMessage(serverMessage string, err error, fallback string) string {
	if serverMessage != "" {
		return serverMessage
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
