package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by all
// endpoints and middlewares.
//
// Fields:
//   - Message: user-facing description of what failed.
//   - ErrorDetails: underlying error text, when available.
//   - Timestamp: moment the error response was built.
type ErrorResponse struct {
	Message      string    `json:"error" example:"no data found for the given ticker and date range"`
	ErrorDetails string    `json:"details,omitempty" example:"sql: connection is already closed"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list and still render as text in logs.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an
// optional underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
