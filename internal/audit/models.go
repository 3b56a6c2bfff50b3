// Package audit defines the management audit trail: every accepted
// submission and every terminal processing transition is recorded so the
// joint decision of the two trust parties stays reconstructable.
package audit

import "time"

// Action classifies an audit event.
type Action string

const (
	ActionRequestSubmitted   Action = "request_submitted"
	ActionProcessingApproved Action = "processing_approved"
	ActionProcessingDeclined Action = "processing_declined"
	ActionProcessingRevoked  Action = "processing_revoked"
	ActionExecutionFailed    Action = "execution_failed"
	ActionExecutionResumed   Action = "execution_resumed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp        time.Time `json:"timestamp"`
	Action           Action    `json:"action"`
	Kind             string    `json:"kind"`
	Origin           string    `json:"origin,omitempty"`
	SecurityServerID string    `json:"security_server_id"`
	ClientID         string    `json:"client_id"`
	RequestID        string    `json:"request_id,omitempty"`
	ProcessingID     string    `json:"processing_id,omitempty"`
	Status           string    `json:"status,omitempty"`
	Operator         string    `json:"operator,omitempty"`
	Reason           string    `json:"reason,omitempty"`
	CorrelationID    string    `json:"correlation_id,omitempty"`
}
