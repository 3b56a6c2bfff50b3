package handler

import (
	"strings"

	"centreg/internal/management/models"
	"centreg/internal/management/service"
	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
)

// SubmitRequest is the HTTP request body for POST /management/requests.
type SubmitRequest struct {
	Kind             string `json:"kind"`
	SecurityServerID string `json:"security_server_id"`
	ClientID         string `json:"client_id"`
	Origin           string `json:"origin"`
	Comment          string `json:"comment"`
	CertFingerprint  string `json:"cert_fingerprint"`

	// Parsed values (populated by Validate)
	parsed service.Submission
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	kind := models.RequestKind(strings.TrimSpace(r.Kind))
	if !kind.Valid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown request kind %q", r.Kind)
	}
	origin := models.Origin(strings.TrimSpace(r.Origin))
	if !origin.Valid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown origin %q", r.Origin)
	}

	server, err := domain.ParseSecurityServerID(strings.TrimSpace(r.SecurityServerID))
	if err != nil {
		return err
	}
	client, err := domain.ParseClientID(strings.TrimSpace(r.ClientID))
	if err != nil {
		return err
	}

	r.parsed = service.Submission{
		Kind:             kind,
		SecurityServerID: server,
		ClientID:         client,
		Origin:           origin,
		Comment:          strings.TrimSpace(r.Comment),
		CertFingerprint:  strings.TrimSpace(r.CertFingerprint),
	}
	return nil
}

// Parsed returns the validated domain submission.
func (r *SubmitRequest) Parsed() service.Submission {
	return r.parsed
}

// RevokeRequest is the HTTP request body for request revocation.
type RevokeRequest struct {
	Origin string `json:"origin"`

	parsedOrigin models.Origin
}

func (r *RevokeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	origin := models.Origin(strings.TrimSpace(r.Origin))
	if !origin.Valid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown origin %q", r.Origin)
	}
	r.parsedOrigin = origin
	return nil
}

// DeclineRequest is the HTTP request body for declining a processing.
type DeclineRequest struct {
	Reason string `json:"reason"`
}

func (r *DeclineRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "reason is required")
	}
	return nil
}
