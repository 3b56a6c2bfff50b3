package service

import (
	"context"

	"github.com/google/uuid"

	"centreg/internal/audit"
	"centreg/internal/management/models"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/requestcontext"
)

// Approve executes an agreed operation. The transition to EXECUTING is
// committed on its own before the side effect runs, so a handler failure or
// crash leaves a durable EXECUTING record that Resume can pick up instead of
// silently re-opening the decision.
func (s *Service) Approve(ctx context.Context, processingID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "management.Approve")
	defer span.End()

	p, err := s.GetProcessing(ctx, processingID)
	if err != nil {
		return err
	}

	return s.store.ExecuteTarget(ctx, p.TargetKey(), func(ctx context.Context) error {
		start := requestcontext.Now(ctx)

		var authoritative *models.Request
		if err := s.store.RunInTx(ctx, func(ctx context.Context) error {
			p, err = s.store.GetProcessing(ctx, processingID)
			if err != nil {
				return err
			}
			authoritative, err = p.BeginExecution(requestcontext.Now(ctx))
			if err != nil {
				return err
			}
			return s.store.SaveProcessing(ctx, p)
		}); err != nil {
			return err
		}

		if err := s.execute(ctx, p, authoritative); err != nil {
			return err
		}

		if s.metrics != nil {
			s.metrics.ObserveExecution(start)
		}
		s.observeDecision(models.StatusApproved)
		s.cacheDecision(ctx, p)
		s.logger.InfoContext(ctx, "management request approved",
			"processing_id", p.ID,
			"kind", p.Kind,
			"target", p.TargetKey().String(),
		)
		s.emitAudit(ctx, audit.Event{
			Action:           audit.ActionProcessingApproved,
			Kind:             string(p.Kind),
			Origin:           string(authoritative.Origin),
			SecurityServerID: authoritative.SecurityServerID.String(),
			ClientID:         authoritative.ClientID.String(),
			RequestID:        authoritative.ID.String(),
			ProcessingID:     p.ID.String(),
			Status:           string(p.Status),
		})
		return nil
	})
}

// execute runs the kind handler and the transition to APPROVED as one
// atomic unit, leaving the processing EXECUTING if either fails.
func (s *Service) execute(ctx context.Context, p *models.Processing, authoritative *models.Request) error {
	executor, ok := s.executors[p.Kind]
	if !ok {
		return dErrors.Newf(dErrors.CodeIntegrityViolation, "no executor for request kind %s", p.Kind)
	}
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		if err := executor(ctx, authoritative); err != nil {
			return err
		}
		if err := p.CompleteExecution(requestcontext.Now(ctx)); err != nil {
			return err
		}
		return s.store.SaveProcessing(ctx, p)
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.ExecutionFailures.Inc()
		}
		s.logger.ErrorContext(ctx, "management request execution failed",
			"processing_id", p.ID,
			"kind", p.Kind,
			"error", err,
		)
		s.emitAudit(ctx, audit.Event{
			Action:           audit.ActionExecutionFailed,
			Kind:             string(p.Kind),
			SecurityServerID: authoritative.SecurityServerID.String(),
			ClientID:         authoritative.ClientID.String(),
			RequestID:        authoritative.ID.String(),
			ProcessingID:     p.ID.String(),
			Status:           string(models.StatusExecuting),
			Reason:           err.Error(),
		})
		return dErrors.Wrap(err, dErrors.CodeExecutionFailure, "executing "+string(p.Kind))
	}
	return nil
}

// Decline rejects an agreed operation without running its handler.
func (s *Service) Decline(ctx context.Context, processingID uuid.UUID, reason string) error {
	ctx, span := s.tracer.Start(ctx, "management.Decline")
	defer span.End()

	p, err := s.GetProcessing(ctx, processingID)
	if err != nil {
		return err
	}

	return s.store.ExecuteTarget(ctx, p.TargetKey(), func(ctx context.Context) error {
		if err := s.store.RunInTx(ctx, func(ctx context.Context) error {
			p, err = s.store.GetProcessing(ctx, processingID)
			if err != nil {
				return err
			}
			if err := p.Decline(requestcontext.Now(ctx)); err != nil {
				return err
			}
			return s.store.SaveProcessing(ctx, p)
		}); err != nil {
			return err
		}

		s.observeDecision(models.StatusDeclined)
		s.cacheDecision(ctx, p)
		s.logger.InfoContext(ctx, "management request declined",
			"processing_id", p.ID,
			"kind", p.Kind,
			"reason", reason,
		)
		s.emitAudit(ctx, audit.Event{
			Action:       audit.ActionProcessingDeclined,
			Kind:         string(p.Kind),
			ProcessingID: p.ID.String(),
			Status:       string(p.Status),
			Reason:       reason,
		})
		return nil
	})
}

// Resume retries a processing stranded in EXECUTING after a handler failure
// or a crash between the two approval phases. The handler replays against
// whatever partial state the failed attempt left behind, which is why every
// executor is idempotent.
func (s *Service) Resume(ctx context.Context, processingID uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "management.Resume")
	defer span.End()

	p, err := s.GetProcessing(ctx, processingID)
	if err != nil {
		return err
	}

	return s.store.ExecuteTarget(ctx, p.TargetKey(), func(ctx context.Context) error {
		start := requestcontext.Now(ctx)

		p, err = s.store.GetProcessing(ctx, processingID)
		if err != nil {
			return err
		}
		authoritative, err := p.Authoritative()
		if err != nil {
			return err
		}

		if err := s.execute(ctx, p, authoritative); err != nil {
			return err
		}

		if s.metrics != nil {
			s.metrics.ObserveExecution(start)
		}
		s.observeDecision(models.StatusApproved)
		s.cacheDecision(ctx, p)
		s.logger.InfoContext(ctx, "management request execution resumed",
			"processing_id", p.ID,
			"kind", p.Kind,
		)
		s.emitAudit(ctx, audit.Event{
			Action:           audit.ActionExecutionResumed,
			Kind:             string(p.Kind),
			SecurityServerID: authoritative.SecurityServerID.String(),
			ClientID:         authoritative.ClientID.String(),
			RequestID:        authoritative.ID.String(),
			ProcessingID:     p.ID.String(),
			Status:           string(p.Status),
		})
		return nil
	})
}
