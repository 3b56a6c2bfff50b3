package service

import (
	"context"

	"centreg/internal/management/models"
	"centreg/internal/registry"
	"centreg/pkg/domain"
)

// executorFunc applies the registry side effect of one approved request.
// Executors run inside the approval transaction and must be idempotent: a
// retried execution after a crash replays them against already-applied
// state.
type executorFunc func(ctx context.Context, req *models.Request) error

func (s *Service) buildExecutors() map[models.RequestKind]executorFunc {
	return map[models.RequestKind]executorFunc{
		models.KindClientRegistration:   s.executeClientRegistration,
		models.KindClientDeletion:       s.executeClientDeletion,
		models.KindOwnerChange:          s.executeOwnerChange,
		models.KindAuthCertRegistration: s.executeAuthCertRegistration,
		models.KindAuthCertDeletion:     s.executeAuthCertDeletion,
	}
}

func (s *Service) executeClientRegistration(ctx context.Context, req *models.Request) error {
	if _, err := s.registry.ResolveServer(ctx, req.SecurityServerID); err != nil {
		return err
	}
	if _, err := s.registry.ResolveClient(ctx, req.ClientID); err != nil {
		return err
	}
	return s.registry.AttachClient(ctx, req.SecurityServerID, req.ClientID)
}

func (s *Service) executeClientDeletion(ctx context.Context, req *models.Request) error {
	if _, err := s.registry.ResolveServer(ctx, req.SecurityServerID); err != nil {
		return err
	}
	// Detaching an already-absent client is a no-op, so replays succeed.
	return s.registry.DetachClient(ctx, req.SecurityServerID, req.ClientID)
}

// executeOwnerChange transfers the server to the new owner and keeps the
// owners group membership consistent on both sides: the new owner joins,
// and the previous owner leaves only if this was its last server.
func (s *Service) executeOwnerChange(ctx context.Context, req *models.Request) error {
	server, err := s.registry.ResolveServer(ctx, req.SecurityServerID)
	if err != nil {
		return err
	}
	newOwner := req.ClientID.Member()
	// The member was present at submit time but may have been deregistered
	// since; the transfer must not install a dangling owner.
	if _, err := s.registry.ResolveMember(ctx, newOwner); err != nil {
		return err
	}
	previousOwner := server.Owner
	if previousOwner == newOwner {
		// Replay after a crash mid-approval: the transfer already happened.
		return nil
	}

	// The new owner stops being a regular client of the server it now owns.
	if err := s.registry.DetachClient(ctx, req.SecurityServerID, req.ClientID); err != nil {
		return err
	}
	if err := s.registry.TransferOwnership(ctx, req.SecurityServerID, newOwner); err != nil {
		return err
	}
	if err := s.groups.AddGroupMember(ctx, registry.OwnersGroupCode, domain.MemberClientID(newOwner)); err != nil {
		return err
	}

	owned, err := s.registry.CountOwnedServers(ctx, previousOwner)
	if err != nil {
		return err
	}
	if owned == 0 {
		if err := s.groups.RemoveGroupMember(ctx, registry.OwnersGroupCode, domain.MemberClientID(previousOwner)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) executeAuthCertRegistration(ctx context.Context, req *models.Request) error {
	if _, err := s.registry.ResolveServer(ctx, req.SecurityServerID); err != nil {
		return err
	}
	return s.registry.AddAuthCert(ctx, req.SecurityServerID, req.CertFingerprint)
}

func (s *Service) executeAuthCertDeletion(ctx context.Context, req *models.Request) error {
	if _, err := s.registry.ResolveServer(ctx, req.SecurityServerID); err != nil {
		return err
	}
	return s.registry.RemoveAuthCert(ctx, req.SecurityServerID, req.CertFingerprint)
}
