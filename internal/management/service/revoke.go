package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"centreg/internal/audit"
	"centreg/internal/management/models"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/requestcontext"
)

// Revoke withdraws a not-yet-executed request on behalf of the party that
// submitted it. The owning processing moves to REVOKED, and for registration
// kinds a compensating deletion request is submitted under its own target so
// any partially propagated registration gets formally undone. The returned
// id is the compensating request's, or uuid.Nil when the kind has none.
func (s *Service) Revoke(ctx context.Context, requestID uuid.UUID, origin models.Origin) (uuid.UUID, error) {
	ctx, span := s.tracer.Start(ctx, "management.Revoke")
	defer span.End()

	if !origin.Valid() {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown origin %q", origin)
	}

	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return uuid.Nil, err
	}
	if req.Origin != origin {
		return uuid.Nil, dErrors.Newf(dErrors.CodeUnauthorized,
			"request %s was submitted by %s and cannot be revoked by %s",
			req.ID, req.Origin, origin)
	}

	var compensatingID uuid.UUID
	err = s.store.ExecuteTarget(ctx, req.TargetKey(), func(ctx context.Context) error {
		if err := s.store.RunInTx(ctx, func(ctx context.Context) error {
			p, err := s.store.GetProcessing(ctx, req.ProcessingID)
			if err != nil {
				return err
			}
			if err := p.Revoke(requestcontext.Now(ctx)); err != nil {
				return err
			}
			return s.store.SaveProcessing(ctx, p)
		}); err != nil {
			return err
		}

		kind, ok := req.Kind.Compensating()
		if !ok {
			return nil
		}
		// The compensating submission takes the deletion kind's own target
		// lock while this target's lock is held. Registration locks before
		// deletion everywhere, so the nesting never deadlocks.
		id, err := s.Submit(ctx, Submission{
			Kind:             kind,
			SecurityServerID: req.SecurityServerID,
			ClientID:         req.ClientID,
			Origin:           origin,
			Comment:          fmt.Sprintf("revokes request %s", req.ID),
			CertFingerprint:  req.CertFingerprint,
			revokes:          req.ID,
		})
		if err != nil {
			return err
		}
		compensatingID = id

		// Re-read under the lock: the revocation above moved the stored
		// request's denormalized status, which the snapshot predates.
		return s.store.RunInTx(ctx, func(ctx context.Context) error {
			stored, err := s.store.GetRequest(ctx, req.ID)
			if err != nil {
				return err
			}
			stored.SupersededByID = id
			return s.store.SaveRequest(ctx, stored)
		})
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.observeDecision(models.StatusRevoked)
	s.logger.InfoContext(ctx, "management request revoked",
		"request_id", req.ID,
		"kind", req.Kind,
		"origin", origin,
		"compensating_request_id", compensatingID,
	)
	s.emitAudit(ctx, audit.Event{
		Action:           audit.ActionProcessingRevoked,
		Kind:             string(req.Kind),
		Origin:           string(origin),
		SecurityServerID: req.SecurityServerID.String(),
		ClientID:         req.ClientID.String(),
		RequestID:        req.ID.String(),
		ProcessingID:     req.ProcessingID.String(),
		Status:           string(models.StatusRevoked),
	})
	return compensatingID, nil
}
