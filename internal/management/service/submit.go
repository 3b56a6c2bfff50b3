package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"centreg/internal/audit"
	"centreg/internal/management/models"
	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/platform/sentinel"
	"centreg/pkg/requestcontext"
)

// Submission is the transport-agnostic inbound boundary: one administrative
// intent from one trust party.
type Submission struct {
	Kind             models.RequestKind
	SecurityServerID domain.SecurityServerID
	ClientID         domain.ClientID
	Origin           models.Origin
	Comment          string
	CertFingerprint  string

	// revokes marks a compensating deletion submission created by Revoke.
	revokes uuid.UUID
}

func (sub Submission) validate() error {
	if !sub.Kind.Valid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown request kind %q", sub.Kind)
	}
	if !sub.Origin.Valid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown origin %q", sub.Origin)
	}
	if sub.SecurityServerID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "security server id is required")
	}
	if sub.ClientID.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "client id is required")
	}
	switch sub.Kind {
	case models.KindAuthCertRegistration, models.KindAuthCertDeletion:
		if sub.CertFingerprint == "" {
			return dErrors.New(dErrors.CodeInvalidInput, "certificate fingerprint is required")
		}
	}
	return nil
}

func (sub Submission) targetKey() models.TargetKey {
	return models.TargetKey{Server: sub.SecurityServerID, Client: sub.ClientID, Kind: sub.Kind}
}

// Submit accepts one administrative request. Under the target's
// serialization scope it validates the submission against committed state
// and the currently open processing, then either opens a new processing or
// merges the request into the pending one. All validation happens before
// any mutation, so a rejected submission leaves no trace.
func (s *Service) Submit(ctx context.Context, sub Submission) (uuid.UUID, error) {
	ctx, span := s.tracer.Start(ctx, "management.Submit")
	defer span.End()

	if err := sub.validate(); err != nil {
		return uuid.Nil, err
	}

	var requestID uuid.UUID
	err := s.store.ExecuteTarget(ctx, sub.targetKey(), func(ctx context.Context) error {
		if err := s.verifyAgainstExistingConnections(ctx, sub); err != nil {
			return err
		}

		open, err := s.findOpen(ctx, sub.targetKey())
		if err != nil {
			return err
		}
		if open != nil {
			if err := s.verifyAgainstSubmittedRequests(open); err != nil {
				return err
			}
		}

		now := requestcontext.Now(ctx)
		req := models.NewRequest(sub.Kind, sub.SecurityServerID, sub.ClientID, sub.Origin, sub.Comment, now)
		req.CertFingerprint = sub.CertFingerprint
		req.RevokesRequestID = sub.revokes

		if err := s.store.RunInTx(ctx, func(ctx context.Context) error {
			if open == nil {
				processing := models.NewProcessing(sub.Kind, now)
				if err := processing.AddRequest(req, now); err != nil {
					return err
				}
				return s.store.CreateProcessing(ctx, processing)
			}
			if err := open.AddRequest(req, now); err != nil {
				return err
			}
			return s.store.SaveProcessing(ctx, open)
		}); err != nil {
			return err
		}

		requestID = req.ID
		s.logger.InfoContext(ctx, "management request accepted",
			"request_id", req.ID,
			"kind", req.Kind,
			"origin", req.Origin,
			"security_server_id", req.SecurityServerID.String(),
			"client_id", req.ClientID.String(),
			"processing_id", req.ProcessingID,
			"processing_status", req.ProcessingStatus,
		)
		s.observeSubmission(sub.Kind, sub.Origin)
		s.emitAudit(ctx, audit.Event{
			Action:           audit.ActionRequestSubmitted,
			Kind:             string(req.Kind),
			Origin:           string(req.Origin),
			SecurityServerID: req.SecurityServerID.String(),
			ClientID:         req.ClientID.String(),
			RequestID:        req.ID.String(),
			ProcessingID:     req.ProcessingID.String(),
			Status:           string(req.ProcessingStatus),
		})
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return requestID, nil
}

// findOpen translates the store's not-found fact into "no open processing"
// and lets the integrity violation surface loudly.
func (s *Service) findOpen(ctx context.Context, key models.TargetKey) (*models.Processing, error) {
	open, err := s.store.FindOpenProcessing(ctx, key)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeIntegrityViolation) {
			if s.metrics != nil {
				s.metrics.IntegrityViolations.Inc()
			}
			s.logger.ErrorContext(ctx, "open processing invariant violated",
				"target", key.String(),
				"error", err,
			)
		}
		return nil, err
	}
	return open, nil
}
