package models

import "time"

// TimestampLayout is how created_at is rendered in JSON responses
const TimestampLayout = "2006-01-02 15:04:05"

// Error envelope messages
const (
	MsgNotFound      = "Message not found"
	MsgInvalidJSON   = "Invalid JSON"
	MsgDatabaseError = "Database error"
)

// Request types

// Both fields are optional; a missing field decodes to nil.
type CreateMessageRequest struct {
	Body     *string `json:"body"`
	Username *string `json:"username"`
}

// A nil Body leaves the stored body untouched.
type UpdateMessageRequest struct {
	Body *string `json:"body"`
}

// Response types

type MessageResponse struct {
	ID        int64   `json:"id"`
	Body      *string `json:"body"`
	Username  *string `json:"username"`
	CreatedAt string  `json:"created_at"`
}

// Domain types

type Message struct {
	ID        int64
	Body      *string
	Username  *string
	CreatedAt time.Time
}

// ToResponse converts the message to its JSON shape
func (m Message) ToResponse() MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Body:      m.Body,
		Username:  m.Username,
		CreatedAt: m.CreatedAt.UTC().Format(TimestampLayout),
	}
}

// ToResponses converts a slice of messages, never returning nil
func ToResponses(messages []Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.ToResponse())
	}
	return out
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
