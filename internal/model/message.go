package model

import "time"

// MessageIn is the request body for a communication-hub message. Timestamp is
// optional; the service stamps it at creation when absent.
type MessageIn struct {
	Sender    string     `json:"sender" validate:"required"`
	Receiver  string     `json:"receiver" validate:"required"`
	Content   string     `json:"content" validate:"required"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
