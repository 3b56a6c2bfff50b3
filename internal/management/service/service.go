//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ProcessingStore,Registry,GroupStore,AuditPublisher,DecisionCache

// Package service implements the management request reconciliation engine:
// it correlates submissions arriving independently from the security server
// and the central operator, enforces the two-party concurrence protocol and
// executes the agreed operation exactly once.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"centreg/internal/audit"
	mgmtmetrics "centreg/internal/management/metrics"
	"centreg/internal/management/models"
	"centreg/internal/registry"
	"centreg/pkg/domain"
	"centreg/pkg/requestcontext"
)

// ProcessingStore persists requests and processings. ExecuteTarget runs fn
// under the per-target serialization scope; RunInTx is an atomic unit within
// it. Registry mutations join the same transaction through context.
type ProcessingStore interface {
	ExecuteTarget(ctx context.Context, key models.TargetKey, fn func(ctx context.Context) error) error
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateProcessing(ctx context.Context, p *models.Processing) error
	SaveProcessing(ctx context.Context, p *models.Processing) error
	SaveRequest(ctx context.Context, r *models.Request) error
	FindOpenProcessing(ctx context.Context, key models.TargetKey) (*models.Processing, error)
	GetProcessing(ctx context.Context, id uuid.UUID) (*models.Processing, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error)
	ListRequests(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) ([]*models.Request, error)
	FindRevokingRequest(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) (*models.Request, error)
}

// Registry is the durable member/client/server state execution handlers
// mutate. Mutating operations must be idempotent and join the caller's
// transaction when one is carried in context.
type Registry interface {
	ResolveMember(ctx context.Context, id domain.MemberID) (*registry.Member, error)
	ResolveClient(ctx context.Context, id domain.ClientID) (*registry.Client, error)
	ResolveServer(ctx context.Context, id domain.SecurityServerID) (*registry.SecurityServer, error)
	ServerExists(ctx context.Context, id domain.SecurityServerID) (bool, error)
	HasClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) (bool, error)
	AttachClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) error
	DetachClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) error
	TransferOwnership(ctx context.Context, server domain.SecurityServerID, newOwner domain.MemberID) error
	AddAuthCert(ctx context.Context, server domain.SecurityServerID, fingerprint string) error
	RemoveAuthCert(ctx context.Context, server domain.SecurityServerID, fingerprint string) error
	CountOwnedServers(ctx context.Context, member domain.MemberID) (int, error)
}

// GroupStore maintains global group memberships, notably the security
// server owners group. Add and remove are idempotent set operations.
type GroupStore interface {
	AddGroupMember(ctx context.Context, group string, client domain.ClientID) error
	RemoveGroupMember(ctx context.Context, group string, client domain.ClientID) error
}

// AuditPublisher records management decisions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// DecisionCache caches terminal decisions for the reporting path.
type DecisionCache interface {
	PutDecision(ctx context.Context, processingID uuid.UUID, status models.ProcessingStatus) error
	GetDecision(ctx context.Context, processingID uuid.UUID) (models.ProcessingStatus, error)
}

// Service orchestrates submission, reconciliation, decision and execution of
// management requests.
type Service struct {
	store     ProcessingStore
	registry  Registry
	groups    GroupStore
	logger    *slog.Logger
	metrics   *mgmtmetrics.Metrics
	audit     AuditPublisher
	decisions DecisionCache
	tracer    trace.Tracer
	executors map[models.RequestKind]executorFunc
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *mgmtmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithDecisionCache(cache DecisionCache) Option {
	return func(s *Service) {
		s.decisions = cache
	}
}

// New constructs a Service.
func New(store ProcessingStore, reg Registry, groups GroupStore, opts ...Option) *Service {
	s := &Service{
		store:    store,
		registry: reg,
		groups:   groups,
		logger:   slog.New(slog.DiscardHandler),
		tracer:   otel.Tracer("centreg/management"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.executors = s.buildExecutors()
	return s
}

func (s *Service) observeSubmission(kind models.RequestKind, origin models.Origin) {
	if s.metrics != nil {
		s.metrics.ObserveSubmission(string(kind), string(origin))
	}
}

func (s *Service) observeDecision(outcome models.ProcessingStatus) {
	if s.metrics != nil {
		s.metrics.ObserveDecision(string(outcome))
	}
}

// emitAudit publishes the event, filling correlation fields from context.
// Audit failures are logged, not propagated: the decision is already
// durable, and the log sink keeps a fallback record.
func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	event.Timestamp = requestcontext.Now(ctx)
	event.Operator = requestcontext.Operator(ctx)
	event.CorrelationID = requestcontext.RequestID(ctx)
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "audit emit failed",
			"action", event.Action,
			"processing_id", event.ProcessingID,
			"error", err,
		)
	}
}

// cacheDecision records a terminal decision, best effort.
func (s *Service) cacheDecision(ctx context.Context, p *models.Processing) {
	if s.decisions == nil {
		return
	}
	if err := s.decisions.PutDecision(ctx, p.ID, p.Status); err != nil {
		s.logger.WarnContext(ctx, "decision cache write failed",
			"processing_id", p.ID,
			"error", err,
		)
	}
}
