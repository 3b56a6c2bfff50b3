package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"centreg/internal/management/models"
	dErrors "centreg/pkg/domain-errors"
)

// verifyAgainstSubmittedRequests rejects a third party when the open
// processing already holds a matched pair awaiting a decision. The pending
// pair is named so callers can see what they collided with.
func (s *Service) verifyAgainstSubmittedRequests(open *models.Processing) error {
	if open.Status != models.StatusSubmittedForApproval {
		return nil
	}
	first := open.Requests[0]
	return dErrors.Newf(dErrors.CodeDuplicateSubmission,
		"target already has a request pair pending approval (request %s submitted at %s)",
		first.ID, first.CreatedAt.Format(time.RFC3339))
}

// verifyAgainstExistingConnections checks the submission against committed
// registry state, so requests that could never execute are refused up front.
func (s *Service) verifyAgainstExistingConnections(ctx context.Context, sub Submission) error {
	switch sub.Kind {
	case models.KindClientRegistration:
		connected, err := s.registry.HasClient(ctx, sub.SecurityServerID, sub.ClientID)
		if err != nil {
			return err
		}
		if connected {
			return dErrors.Newf(dErrors.CodeConflict,
				"client %s is already registered on server %s",
				sub.ClientID, sub.SecurityServerID)
		}
	case models.KindClientDeletion:
		// A compensating deletion undoes a registration that may never have
		// executed, so it skips the presence check.
		if sub.revokes != uuid.Nil {
			return nil
		}
		// Deleting an absent connection is refused up front rather than
		// approved as a no-op.
		connected, err := s.registry.HasClient(ctx, sub.SecurityServerID, sub.ClientID)
		if err != nil {
			return err
		}
		if !connected {
			return dErrors.Newf(dErrors.CodeConflict,
				"client %s is not registered on server %s",
				sub.ClientID, sub.SecurityServerID)
		}
	case models.KindOwnerChange:
		return s.verifyOwnerChange(ctx, sub)
	}
	return nil
}

func (s *Service) verifyOwnerChange(ctx context.Context, sub Submission) error {
	if sub.ClientID.IsSubsystem() {
		return dErrors.New(dErrors.CodeConflict, "a subsystem cannot own a security server")
	}

	server, err := s.registry.ResolveServer(ctx, sub.SecurityServerID)
	if err != nil {
		return err
	}
	if _, err := s.registry.ResolveMember(ctx, sub.ClientID.Member()); err != nil {
		return err
	}

	if !server.HasClient(sub.ClientID) {
		return dErrors.Newf(dErrors.CodeConflict,
			"member %s is not a registered client of server %s",
			sub.ClientID, sub.SecurityServerID)
	}
	if server.Owner == sub.ClientID.Member() {
		return dErrors.Newf(dErrors.CodeConflict,
			"member %s already owns server %s", sub.ClientID, sub.SecurityServerID)
	}

	// The server keeps its code after the transfer, so the resulting
	// identity must not collide with a server the new owner already runs.
	proposed := sub.ClientID.Member().ServerID(sub.SecurityServerID.ServerCode)
	exists, err := s.registry.ServerExists(ctx, proposed)
	if err != nil {
		return err
	}
	if exists {
		return dErrors.Newf(dErrors.CodeConflict,
			"owner change would collide with existing server %s", proposed)
	}
	return nil
}
