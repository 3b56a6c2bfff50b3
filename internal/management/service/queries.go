package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"centreg/internal/management/models"
	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/platform/sentinel"
)

// GetProcessing returns one processing with its attached requests.
func (s *Service) GetProcessing(ctx context.Context, id uuid.UUID) (*models.Processing, error) {
	p, err := s.store.GetProcessing(ctx, id)
	if err != nil {
		return nil, notFound(err, "processing", id)
	}
	return p, nil
}

// GetRequest returns one request.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	r, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return nil, notFound(err, "request", id)
	}
	return r, nil
}

// notFound translates the store's sentinel into a coded error, keeping the
// chain intact for errors.Is.
func notFound(err error, what string, id uuid.UUID) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("%s %s not found", what, id))
	}
	return err
}

// OpenProcessing returns the open processing for a target, or
// sentinel.ErrNotFound when the target has none.
func (s *Service) OpenProcessing(ctx context.Context, key models.TargetKey) (*models.Processing, error) {
	return s.store.FindOpenProcessing(ctx, key)
}

// ListRequests returns the full request history of a server/client pair
// across kinds, oldest first.
func (s *Service) ListRequests(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) ([]*models.Request, error) {
	return s.store.ListRequests(ctx, server, client)
}

// RevokingRequest returns the latest compensating request recorded for the
// pair, or sentinel.ErrNotFound.
func (s *Service) RevokingRequest(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) (*models.Request, error) {
	return s.store.FindRevokingRequest(ctx, server, client)
}

// Decision reports the processing's decision outcome. Terminal outcomes are
// served from the cache when one is configured; a miss or a still-open
// processing falls through to the store.
func (s *Service) Decision(ctx context.Context, processingID uuid.UUID) (models.ProcessingStatus, error) {
	if s.decisions != nil {
		status, err := s.decisions.GetDecision(ctx, processingID)
		if err == nil {
			return status, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "decision cache read failed",
				"processing_id", processingID,
				"error", err,
			)
		}
	}

	p, err := s.store.GetProcessing(ctx, processingID)
	if err != nil {
		return "", notFound(err, "processing", processingID)
	}
	if p.Status.Terminal() {
		s.cacheDecision(ctx, p)
	}
	return p.Status, nil
}
