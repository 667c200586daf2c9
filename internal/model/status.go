package model

import "encoding/json"

// Status is the remote's free-form status label for a request.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether polling should stop on this status.
// Only "completed" and "failed" are terminal; everything else, including
// labels this client has never seen, keeps the poll loop going.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// RequestStatus is one observation of a submitted request's progress.
// Payload keeps the raw response body so unknown fields survive for display.
type RequestStatus struct {
	RequestID string
	Status    Status
	Payload   json.RawMessage
}

// Terminal reports whether this observation ends the poll loop.
func (r *RequestStatus) Terminal() bool {
	return r.Status.Terminal()
}

// Job is one record from a remote's /status/requests listing.
type Job struct {
	ID        json.Number `json:"id"`
	Timestamp string      `json:"timestamp"`
	Method    string      `json:"method"`
	Status    Status      `json:"status"`
	Prompt    string      `json:"prompt"`
	Org       string      `json:"org"`
	Repo      string      `json:"repo"`
}
