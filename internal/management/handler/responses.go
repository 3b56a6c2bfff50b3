package handler

import (
	"time"

	"github.com/google/uuid"

	"centreg/internal/management/models"
)

// RequestResponse is the HTTP representation of a management request.
type RequestResponse struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	SecurityServerID string    `json:"security_server_id"`
	ClientID         string    `json:"client_id"`
	Origin           string    `json:"origin"`
	Comment          string    `json:"comment,omitempty"`
	CertFingerprint  string    `json:"cert_fingerprint,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	ProcessingID     string    `json:"processing_id"`
	ProcessingStatus string    `json:"processing_status"`
	RevokesRequestID string    `json:"revokes_request_id,omitempty"`
	SupersededByID   string    `json:"superseded_by_id,omitempty"`
}

// ProcessingResponse is the HTTP representation of a processing with its
// requests.
type ProcessingResponse struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Status    string            `json:"status"`
	Requests  []RequestResponse `json:"requests"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SubmitResponse acknowledges an accepted submission.
type SubmitResponse struct {
	RequestID string `json:"request_id"`
}

// RevokeResponse acknowledges a revocation. CompensatingRequestID is empty
// for kinds with no compensating operation.
type RevokeResponse struct {
	RequestID             string `json:"request_id"`
	CompensatingRequestID string `json:"compensating_request_id,omitempty"`
}

// DecisionResponse reports a processing's decision outcome.
type DecisionResponse struct {
	ProcessingID string `json:"processing_id"`
	Status       string `json:"status"`
}

// FromRequest maps a domain request to its HTTP representation.
func FromRequest(r *models.Request) RequestResponse {
	return RequestResponse{
		ID:               r.ID.String(),
		Kind:             string(r.Kind),
		SecurityServerID: r.SecurityServerID.String(),
		ClientID:         r.ClientID.String(),
		Origin:           string(r.Origin),
		Comment:          r.Comment,
		CertFingerprint:  r.CertFingerprint,
		CreatedAt:        r.CreatedAt,
		ProcessingID:     r.ProcessingID.String(),
		ProcessingStatus: string(r.ProcessingStatus),
		RevokesRequestID: optionalID(r.RevokesRequestID),
		SupersededByID:   optionalID(r.SupersededByID),
	}
}

// FromProcessing maps a domain processing to its HTTP representation.
func FromProcessing(p *models.Processing) ProcessingResponse {
	requests := make([]RequestResponse, len(p.Requests))
	for i, r := range p.Requests {
		requests[i] = FromRequest(r)
	}
	return ProcessingResponse{
		ID:        p.ID.String(),
		Kind:      string(p.Kind),
		Status:    string(p.Status),
		Requests:  requests,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func optionalID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
