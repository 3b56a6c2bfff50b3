// Package models defines the management request and processing records and
// the processing state machine. A processing owns up to two requests for the
// same target, one from each trust party; the state machine is kind-agnostic
// and the kind-specific side effects live in the service's executor.
package models

import (
	"time"

	"github.com/google/uuid"

	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
)

// RequestKind enumerates the administrative operations the registry accepts.
type RequestKind string

const (
	KindClientRegistration   RequestKind = "client_registration"
	KindClientDeletion       RequestKind = "client_deletion"
	KindOwnerChange          RequestKind = "owner_change"
	KindAuthCertRegistration RequestKind = "auth_cert_registration"
	KindAuthCertDeletion     RequestKind = "auth_cert_deletion"
)

// Valid reports whether the kind is a known request kind.
func (k RequestKind) Valid() bool {
	switch k {
	case KindClientRegistration, KindClientDeletion, KindOwnerChange,
		KindAuthCertRegistration, KindAuthCertDeletion:
		return true
	}
	return false
}

// Compensating returns the deletion kind that undoes a registration kind.
// Only registration kinds can be revoked, so ok is false for the rest.
func (k RequestKind) Compensating() (RequestKind, bool) {
	switch k {
	case KindClientRegistration:
		return KindClientDeletion, true
	case KindAuthCertRegistration:
		return KindAuthCertDeletion, true
	}
	return "", false
}

// Origin identifies which trust party submitted a request.
type Origin string

const (
	OriginSecurityServer Origin = "security_server"
	OriginCenter         Origin = "center"
)

// Valid reports whether the origin is a known submitting party.
func (o Origin) Valid() bool {
	return o == OriginSecurityServer || o == OriginCenter
}

// ProcessingStatus is the aggregate status of a processing. Requests mirror
// it in their denormalized ProcessingStatus field.
type ProcessingStatus string

const (
	// StatusNew is a transient in-memory pre-state; a persisted processing
	// is never observed in it.
	StatusNew ProcessingStatus = "new"

	StatusWaiting              ProcessingStatus = "waiting"
	StatusSubmittedForApproval ProcessingStatus = "submitted_for_approval"
	StatusExecuting            ProcessingStatus = "executing"
	StatusApproved             ProcessingStatus = "approved"
	StatusDeclined             ProcessingStatus = "declined"
	StatusRevoked              ProcessingStatus = "revoked"
)

// Terminal reports whether the processing reached a final state. Terminal
// processings are retained for audit and never reopened.
func (s ProcessingStatus) Terminal() bool {
	return s == StatusApproved || s == StatusDeclined || s == StatusRevoked
}

// Revocable reports whether a processing in this state may still be revoked.
// Once execution begins the operation runs to completion.
func (s ProcessingStatus) Revocable() bool {
	return s == StatusNew || s == StatusWaiting || s == StatusSubmittedForApproval
}

// TargetKey identifies the logical target of an operation. All mutating work
// for one key is serialized; distinct keys never block each other.
type TargetKey struct {
	Server domain.SecurityServerID
	Client domain.ClientID
	Kind   RequestKind
}

func (k TargetKey) String() string {
	return k.Server.String() + "|" + k.Client.String() + "|" + string(k.Kind)
}

// Request is a durable record of one submitted administrative intent.
// Append-only except for the processing link, the denormalized status and
// the superseded marker.
type Request struct {
	ID               uuid.UUID
	Kind             RequestKind
	SecurityServerID domain.SecurityServerID
	ClientID         domain.ClientID
	Origin           Origin
	Comment          string
	// CertFingerprint carries the authentication certificate fingerprint for
	// the auth-cert kinds. Certificate parsing happens upstream.
	CertFingerprint string
	CreatedAt       time.Time

	// ProcessingID is set once the request is attached to a processing.
	ProcessingID uuid.UUID
	// ProcessingStatus mirrors the owning processing's status. It is updated
	// in the same transaction as every processing state change so external
	// readers never see the two disagree.
	ProcessingStatus ProcessingStatus

	// RevokesRequestID marks a deletion-kind request created by revocation,
	// pointing at the registration request it compensates.
	RevokesRequestID uuid.UUID
	// SupersededByID points a revoked registration request at its
	// compensating deletion request.
	SupersededByID uuid.UUID
}

// NewRequest builds an unattached request. Attaching it to a processing is a
// separate step.
func NewRequest(kind RequestKind, server domain.SecurityServerID, client domain.ClientID, origin Origin, comment string, createdAt time.Time) *Request {
	return &Request{
		ID:               uuid.New(),
		Kind:             kind,
		SecurityServerID: server,
		ClientID:         client,
		Origin:           origin,
		Comment:          comment,
		CreatedAt:        createdAt,
	}
}

// TargetKey returns the serialization key of the request's target.
func (r *Request) TargetKey() TargetKey {
	return TargetKey{Server: r.SecurityServerID, Client: r.ClientID, Kind: r.Kind}
}

// Clone returns a deep copy so stores can hand out values without aliasing.
func (r *Request) Clone() *Request {
	c := *r
	return &c
}

// Processing is the state machine owning up to two requests for one target.
type Processing struct {
	ID        uuid.UUID
	Kind      RequestKind
	Status    ProcessingStatus
	Requests  []*Request
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProcessing builds an empty processing in the transient NEW state.
func NewProcessing(kind RequestKind, now time.Time) *Processing {
	return &Processing{
		ID:        uuid.New(),
		Kind:      kind,
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy including attached requests.
func (p *Processing) Clone() *Processing {
	c := *p
	c.Requests = make([]*Request, len(p.Requests))
	for i, r := range p.Requests {
		c.Requests[i] = r.Clone()
	}
	return &c
}

// TargetKey returns the serialization key of the processing's target. Only
// valid once at least one request is attached.
func (p *Processing) TargetKey() TargetKey {
	if len(p.Requests) == 0 {
		return TargetKey{Kind: p.Kind}
	}
	return p.Requests[0].TargetKey()
}

// RequestFrom returns the attached request with the given origin, or nil.
func (p *Processing) RequestFrom(origin Origin) *Request {
	for _, r := range p.Requests {
		if r.Origin == origin {
			return r
		}
	}
	return nil
}

// AddRequest attaches a request, advancing NEW to WAITING on the first
// request and WAITING to SUBMITTED_FOR_APPROVAL on the second concurring
// one. A second request from the same origin is a resubmission, not a
// concurrence, and is rejected referencing the earlier request. On any
// error the processing is left unchanged.
func (p *Processing) AddRequest(req *Request, now time.Time) error {
	if req.Kind != p.Kind {
		return dErrors.Newf(dErrors.CodeInvalidInput, "request kind %s does not match processing kind %s", req.Kind, p.Kind)
	}
	if len(p.Requests) > 0 {
		first := p.Requests[0]
		if req.SecurityServerID != first.SecurityServerID || req.ClientID != first.ClientID {
			return dErrors.Newf(dErrors.CodeInvalidInput, "request target %s does not match processing target %s", req.TargetKey(), p.TargetKey())
		}
	}

	switch p.Status {
	case StatusNew:
		p.attach(req)
		p.setStatus(StatusWaiting, now)
		return nil
	case StatusWaiting:
		if err := compareRequestData(p.Requests[0], req); err != nil {
			return err
		}
		p.attach(req)
		p.setStatus(StatusSubmittedForApproval, now)
		return nil
	default:
		return dErrors.Newf(dErrors.CodeInvalidState, "processing %s is %s and accepts no further requests", p.ID, p.Status)
	}
}

// compareRequestData enforces the two-party concurrence rule: a genuine
// concurrence needs one request from each origin.
func compareRequestData(first, second *Request) error {
	if first.Origin == second.Origin {
		return dErrors.Newf(dErrors.CodeDuplicateRequest,
			"request from origin %s already submitted as %s at %s",
			first.Origin, first.ID, first.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// BeginExecution transitions SUBMITTED_FOR_APPROVAL to EXECUTING and returns
// the authoritative request: the one submitted by the security server. Field
// level differences between the two concurring submissions are resolved by
// always executing the security server's payload.
func (p *Processing) BeginExecution(now time.Time) (*Request, error) {
	if p.Status != StatusSubmittedForApproval {
		return nil, dErrors.Newf(dErrors.CodeInvalidState, "cannot approve processing %s in state %s", p.ID, p.Status)
	}
	authoritative := p.RequestFrom(OriginSecurityServer)
	if authoritative == nil {
		return nil, dErrors.Newf(dErrors.CodeIntegrityViolation, "processing %s has no security server request", p.ID)
	}
	p.setStatus(StatusExecuting, now)
	return authoritative, nil
}

// Authoritative returns the security-server-submitted request of a
// processing already in EXECUTING, for manual retry after a crash.
func (p *Processing) Authoritative() (*Request, error) {
	if p.Status != StatusExecuting {
		return nil, dErrors.Newf(dErrors.CodeInvalidState, "processing %s is %s, not executing", p.ID, p.Status)
	}
	authoritative := p.RequestFrom(OriginSecurityServer)
	if authoritative == nil {
		return nil, dErrors.Newf(dErrors.CodeIntegrityViolation, "processing %s has no security server request", p.ID)
	}
	return authoritative, nil
}

// CompleteExecution transitions EXECUTING to the terminal APPROVED state.
func (p *Processing) CompleteExecution(now time.Time) error {
	if p.Status != StatusExecuting {
		return dErrors.Newf(dErrors.CodeInvalidState, "cannot complete processing %s in state %s", p.ID, p.Status)
	}
	p.setStatus(StatusApproved, now)
	return nil
}

// Decline transitions SUBMITTED_FOR_APPROVAL to the terminal DECLINED state.
// No handler runs.
func (p *Processing) Decline(now time.Time) error {
	if p.Status != StatusSubmittedForApproval {
		return dErrors.Newf(dErrors.CodeInvalidState, "cannot decline processing %s in state %s", p.ID, p.Status)
	}
	p.setStatus(StatusDeclined, now)
	return nil
}

// Revoke transitions any revocable state to the terminal REVOKED state.
func (p *Processing) Revoke(now time.Time) error {
	if !p.Status.Revocable() {
		return dErrors.Newf(dErrors.CodeInvalidState, "cannot revoke processing %s in state %s", p.ID, p.Status)
	}
	p.setStatus(StatusRevoked, now)
	return nil
}

func (p *Processing) attach(req *Request) {
	req.ProcessingID = p.ID
	req.ProcessingStatus = p.Status
	p.Requests = append(p.Requests, req)
}

// setStatus is the single place the aggregate status changes. Every attached
// request's denormalized status moves with it; stores persist both in the
// same transaction.
func (p *Processing) setStatus(status ProcessingStatus, now time.Time) {
	p.Status = status
	p.UpdatedAt = now
	for _, r := range p.Requests {
		r.ProcessingStatus = status
	}
}
