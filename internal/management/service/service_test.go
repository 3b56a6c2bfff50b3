package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"centreg/internal/management/models"
	"centreg/internal/management/store"
	"centreg/internal/registry"
	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/platform/sentinel"
	"centreg/pkg/requestcontext"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc      *Service
	store    *store.MemoryStore
	registry *registry.MemoryStore
	ctx      context.Context

	server    domain.SecurityServerID
	owner     domain.MemberID
	client    domain.ClientID
	subsystem domain.ClientID
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	ctx := requestcontext.WithTime(context.Background(), testNow)

	server, err := domain.NewSecurityServerID("FED", "GOV", "1001", "SS1")
	require.NoError(t, err)
	client, err := domain.NewClientID("FED", "COM", "2002")
	require.NoError(t, err)
	subsystem, err := domain.NewSubsystemID("FED", "COM", "2002", "billing")
	require.NoError(t, err)

	reg := registry.NewMemoryStore()
	require.NoError(t, reg.AddMember(ctx, registry.Member{ID: server.Owner(), Name: "Gov Agency"}))
	require.NoError(t, reg.AddMember(ctx, registry.Member{ID: client.Member(), Name: "Acme"}))
	require.NoError(t, reg.AddClient(ctx, registry.Client{ID: client}))
	require.NoError(t, reg.AddClient(ctx, registry.Client{ID: subsystem}))
	require.NoError(t, reg.AddServer(ctx, server, testNow))

	st := store.NewMemoryStore()
	return &fixture{
		svc:       New(st, reg, reg, opts...),
		store:     st,
		registry:  reg,
		ctx:       ctx,
		server:    server,
		owner:     server.Owner(),
		client:    client,
		subsystem: subsystem,
	}
}

func (f *fixture) submission(kind models.RequestKind, origin models.Origin) Submission {
	return Submission{
		Kind:             kind,
		SecurityServerID: f.server,
		ClientID:         f.subsystem,
		Origin:           origin,
	}
}

// submitPair submits concurring requests from both parties and returns the
// processing, now awaiting a decision.
func (f *fixture) submitPair(t *testing.T, kind models.RequestKind) *models.Processing {
	t.Helper()
	_, err := f.svc.Submit(f.ctx, f.submission(kind, models.OriginSecurityServer))
	require.NoError(t, err)
	_, err = f.svc.Submit(f.ctx, f.submission(kind, models.OriginCenter))
	require.NoError(t, err)

	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: kind})
	require.NoError(t, err)
	require.Equal(t, models.StatusSubmittedForApproval, p.Status)
	return p
}

func TestSubmitOpensProcessing(t *testing.T) {
	f := newFixture(t)

	id, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: models.KindClientRegistration})
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, p.Status)
	require.Len(t, p.Requests, 1)
	assert.Equal(t, id, p.Requests[0].ID)
	assert.Equal(t, models.StatusWaiting, p.Requests[0].ProcessingStatus)
}

func TestSubmitConcurrencePairsRequests(t *testing.T) {
	f := newFixture(t)

	p := f.submitPair(t, models.KindClientRegistration)
	require.Len(t, p.Requests, 2)
	assert.NotNil(t, p.RequestFrom(models.OriginSecurityServer))
	assert.NotNil(t, p.RequestFrom(models.OriginCenter))
	for _, r := range p.Requests {
		assert.Equal(t, models.StatusSubmittedForApproval, r.ProcessingStatus)
	}
}

func TestSubmitSameOriginIsRejected(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
	require.NoError(t, err)

	_, err = f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeDuplicateRequest))
	assert.Contains(t, err.Error(), first.String())

	// The rejected submission left nothing behind.
	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: models.KindClientRegistration})
	require.NoError(t, err)
	assert.Len(t, p.Requests, 1)
}

func TestSubmitWhilePairPendingIsRejected(t *testing.T) {
	f := newFixture(t)
	f.submitPair(t, models.KindClientRegistration)

	for _, origin := range []models.Origin{models.OriginSecurityServer, models.OriginCenter} {
		_, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, origin))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeDuplicateSubmission))
	}
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		mod  func(*Submission)
	}{
		{"unknown kind", func(s *Submission) { s.Kind = "bulk_import" }},
		{"unknown origin", func(s *Submission) { s.Origin = "partner" }},
		{"zero server", func(s *Submission) { s.SecurityServerID = domain.SecurityServerID{} }},
		{"zero client", func(s *Submission) { s.ClientID = domain.ClientID{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := f.submission(models.KindClientRegistration, models.OriginSecurityServer)
			tt.mod(&sub)
			_, err := f.svc.Submit(f.ctx, sub)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}

	t.Run("auth cert without fingerprint", func(t *testing.T) {
		sub := f.submission(models.KindAuthCertRegistration, models.OriginSecurityServer)
		_, err := f.svc.Submit(f.ctx, sub)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestSubmitRegistrationForConnectedClient(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.registry.AttachClient(f.ctx, f.server, f.subsystem))

	_, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestSubmitDeletionForAbsentConnection(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(f.ctx, f.submission(models.KindClientDeletion, models.OriginSecurityServer))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestApproveExecutesClientRegistration(t *testing.T) {
	f := newFixture(t)
	p := f.submitPair(t, models.KindClientRegistration)

	require.NoError(t, f.svc.Approve(f.ctx, p.ID))

	got, err := f.svc.GetProcessing(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	for _, r := range got.Requests {
		assert.Equal(t, models.StatusApproved, r.ProcessingStatus)
	}

	connected, err := f.registry.HasClient(f.ctx, f.server, f.subsystem)
	require.NoError(t, err)
	assert.True(t, connected)

	// The target is free for a new round.
	_, err = f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: models.KindClientRegistration})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	// A decision is final.
	err = f.svc.Approve(f.ctx, p.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func TestApproveExecutesSecurityServerPayload(t *testing.T) {
	f := newFixture(t)

	sub := f.submission(models.KindAuthCertRegistration, models.OriginSecurityServer)
	sub.CertFingerprint = "aa:bb:cc"
	_, err := f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)

	// The operator's copy carries a stale fingerprint; the security
	// server's submission is the one executed.
	sub = f.submission(models.KindAuthCertRegistration, models.OriginCenter)
	sub.CertFingerprint = "dd:ee:ff"
	_, err = f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)

	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: models.KindAuthCertRegistration})
	require.NoError(t, err)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))

	server, err := f.registry.ResolveServer(f.ctx, f.server)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa:bb:cc"}, server.AuthCerts)
}

func TestApproveBeforeConcurrence(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
	require.NoError(t, err)
	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: models.KindClientRegistration})
	require.NoError(t, err)

	err = f.svc.Approve(f.ctx, p.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func TestApproveFailureLeavesExecuting(t *testing.T) {
	f := newFixture(t)

	// A client unknown to the registry makes the execution handler fail
	// after the decision was recorded.
	unknown, err := domain.NewSubsystemID("FED", "COM", "2002", "ghost")
	require.NoError(t, err)
	sub := Submission{Kind: models.KindClientRegistration, SecurityServerID: f.server, ClientID: unknown, Origin: models.OriginSecurityServer}
	_, err = f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)
	sub.Origin = models.OriginCenter
	_, err = f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)

	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: unknown, Kind: models.KindClientRegistration})
	require.NoError(t, err)

	err = f.svc.Approve(f.ctx, p.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeExecutionFailure))

	got, err := f.svc.GetProcessing(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusExecuting, got.Status)

	// Once the cause is fixed, Resume finishes the stranded execution.
	require.NoError(t, f.registry.AddClient(f.ctx, registry.Client{ID: unknown}))
	require.NoError(t, f.svc.Resume(f.ctx, p.ID))

	got, err = f.svc.GetProcessing(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	connected, err := f.registry.HasClient(f.ctx, f.server, unknown)
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestResumeRequiresExecuting(t *testing.T) {
	f := newFixture(t)
	p := f.submitPair(t, models.KindClientRegistration)

	err := f.svc.Resume(f.ctx, p.ID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func TestDeclineRunsNoHandler(t *testing.T) {
	f := newFixture(t)
	p := f.submitPair(t, models.KindClientRegistration)

	require.NoError(t, f.svc.Decline(f.ctx, p.ID, "certificate mismatch"))

	got, err := f.svc.GetProcessing(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, got.Status)

	connected, err := f.registry.HasClient(f.ctx, f.server, f.subsystem)
	require.NoError(t, err)
	assert.False(t, connected)

	err = f.svc.Decline(f.ctx, p.ID, "again")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func TestRevokeSubmitsCompensatingDeletion(t *testing.T) {
	f := newFixture(t)

	regID, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
	require.NoError(t, err)

	compID, err := f.svc.Revoke(f.ctx, regID, models.OriginSecurityServer)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, compID)

	reg, err := f.svc.GetRequest(f.ctx, regID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRevoked, reg.ProcessingStatus)
	assert.Equal(t, compID, reg.SupersededByID)

	comp, err := f.svc.GetRequest(f.ctx, compID)
	require.NoError(t, err)
	assert.Equal(t, models.KindClientDeletion, comp.Kind)
	assert.Equal(t, regID, comp.RevokesRequestID)
	assert.Equal(t, models.StatusWaiting, comp.ProcessingStatus)

	revoking, err := f.svc.RevokingRequest(f.ctx, f.server, f.subsystem)
	require.NoError(t, err)
	assert.Equal(t, compID, revoking.ID)

	// The registration target is free again.
	_, err = f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: models.KindClientRegistration})
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRevokeSupersededMarkerKeepsRevokedStatus(t *testing.T) {
	f := newFixture(t)
	p := f.submitPair(t, models.KindClientRegistration)

	target := p.Requests[0]
	compID, err := f.svc.Revoke(f.ctx, target.ID, target.Origin)
	require.NoError(t, err)

	// The superseded marker is written after the processing moved to
	// revoked; it must not resurrect the pre-revocation snapshot of the
	// stored request.
	for _, req := range p.Requests {
		got, err := f.svc.GetRequest(f.ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRevoked, got.ProcessingStatus)
	}
	got, err := f.svc.GetRequest(f.ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, compID, got.SupersededByID)
}

func TestRevokeByOtherParty(t *testing.T) {
	f := newFixture(t)

	regID, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
	require.NoError(t, err)

	_, err = f.svc.Revoke(f.ctx, regID, models.OriginCenter)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestRevokeAfterDecision(t *testing.T) {
	f := newFixture(t)
	p := f.submitPair(t, models.KindClientRegistration)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))

	_, err := f.svc.Revoke(f.ctx, p.Requests[0].ID, p.Requests[0].Origin)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func TestRevokeDeletionHasNoCompensation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.registry.AttachClient(f.ctx, f.server, f.subsystem))

	delID, err := f.svc.Submit(f.ctx, f.submission(models.KindClientDeletion, models.OriginSecurityServer))
	require.NoError(t, err)

	compID, err := f.svc.Revoke(f.ctx, delID, models.OriginSecurityServer)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, compID)
}

func TestOwnerChange(t *testing.T) {
	f := newFixture(t)
	// Acme is a registered client of the server and will take it over.
	require.NoError(t, f.registry.AttachClient(f.ctx, f.server, f.client))

	sub := Submission{Kind: models.KindOwnerChange, SecurityServerID: f.server, ClientID: f.client, Origin: models.OriginSecurityServer}
	_, err := f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)
	sub.Origin = models.OriginCenter
	_, err = f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)

	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.client, Kind: models.KindOwnerChange})
	require.NoError(t, err)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))

	server, err := f.registry.ResolveServer(f.ctx, f.server)
	require.NoError(t, err)
	assert.Equal(t, f.client.Member(), server.Owner)
	assert.False(t, server.HasClient(f.client), "new owner must not stay a regular client")

	members, err := f.registry.GroupMembers(f.ctx, registry.OwnersGroupCode)
	require.NoError(t, err)
	assert.Contains(t, members, domain.MemberClientID(f.client.Member()))
	assert.NotContains(t, members, domain.MemberClientID(f.owner), "previous owner lost its only server")
}

func TestOwnerChangePreviousOwnerKeepsGroupWithOtherServers(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.registry.AttachClient(f.ctx, f.server, f.client))

	second := f.owner.ServerID("SS2")
	require.NoError(t, f.registry.AddServer(f.ctx, second, testNow))

	sub := Submission{Kind: models.KindOwnerChange, SecurityServerID: f.server, ClientID: f.client, Origin: models.OriginSecurityServer}
	_, err := f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)
	sub.Origin = models.OriginCenter
	_, err = f.svc.Submit(f.ctx, sub)
	require.NoError(t, err)

	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.client, Kind: models.KindOwnerChange})
	require.NoError(t, err)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))

	members, err := f.registry.GroupMembers(f.ctx, registry.OwnersGroupCode)
	require.NoError(t, err)
	assert.Contains(t, members, domain.MemberClientID(f.owner))
}

func TestOwnerChangeRejections(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.registry.AttachClient(f.ctx, f.server, f.client))

	ownerAsClient := domain.MemberClientID(f.owner)
	require.NoError(t, f.registry.AddClient(f.ctx, registry.Client{ID: ownerAsClient}))
	require.NoError(t, f.registry.AttachClient(f.ctx, f.server, ownerAsClient))

	// A server already operated by Acme under the same code makes the
	// post-transfer identity collide.
	colliding := f.client.Member().ServerID(f.server.ServerCode)
	require.NoError(t, f.registry.AddServer(f.ctx, colliding, testNow))

	stranger, err := domain.NewClientID("FED", "COM", "9999")
	require.NoError(t, err)
	require.NoError(t, f.registry.AddMember(f.ctx, registry.Member{ID: stranger.Member(), Name: "Stranger"}))

	tests := []struct {
		name   string
		client domain.ClientID
	}{
		{"subsystem cannot own", f.subsystem},
		{"not a client of the server", stranger},
		{"already the owner", ownerAsClient},
		{"identity collision", f.client},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Submit(f.ctx, Submission{
				Kind:             models.KindOwnerChange,
				SecurityServerID: f.server,
				ClientID:         tt.client,
				Origin:           models.OriginSecurityServer,
			})
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict), "got %v", err)
		})
	}
}

func TestAuthCertLifecycle(t *testing.T) {
	f := newFixture(t)

	submitCertPair := func(kind models.RequestKind) *models.Processing {
		t.Helper()
		sub := f.submission(kind, models.OriginSecurityServer)
		sub.CertFingerprint = "aa:bb:cc"
		_, err := f.svc.Submit(f.ctx, sub)
		require.NoError(t, err)
		sub.Origin = models.OriginCenter
		_, err = f.svc.Submit(f.ctx, sub)
		require.NoError(t, err)
		p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: kind})
		require.NoError(t, err)
		return p
	}

	p := submitCertPair(models.KindAuthCertRegistration)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))
	server, err := f.registry.ResolveServer(f.ctx, f.server)
	require.NoError(t, err)
	assert.Contains(t, server.AuthCerts, "aa:bb:cc")

	p = submitCertPair(models.KindAuthCertDeletion)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))
	server, err = f.registry.ResolveServer(f.ctx, f.server)
	require.NoError(t, err)
	assert.NotContains(t, server.AuthCerts, "aa:bb:cc")
}

func TestConcurrentSubmissionsKeepOneRequest(t *testing.T) {
	f := newFixture(t)

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	accepted := 0
	for range 8 {
		g.Go(func() error {
			_, err := f.svc.Submit(f.ctx, f.submission(models.KindClientRegistration, models.OriginSecurityServer))
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return nil
			}
			if dErrors.HasCode(err, dErrors.CodeDuplicateRequest) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, accepted)

	p, err := f.svc.OpenProcessing(f.ctx, models.TargetKey{Server: f.server, Client: f.subsystem, Kind: models.KindClientRegistration})
	require.NoError(t, err)
	assert.Len(t, p.Requests, 1)
}

func TestListRequestsOrdersHistory(t *testing.T) {
	f := newFixture(t)
	p := f.submitPair(t, models.KindClientRegistration)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))

	requests, err := f.svc.ListRequests(f.ctx, f.server, f.subsystem)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	for _, r := range requests {
		assert.Equal(t, models.StatusApproved, r.ProcessingStatus)
	}
}

type mapDecisionCache struct {
	mu        sync.Mutex
	decisions map[uuid.UUID]models.ProcessingStatus
	reads     int
}

func (c *mapDecisionCache) PutDecision(ctx context.Context, id uuid.UUID, status models.ProcessingStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.decisions == nil {
		c.decisions = make(map[uuid.UUID]models.ProcessingStatus)
	}
	c.decisions[id] = status
	return nil
}

func (c *mapDecisionCache) GetDecision(ctx context.Context, id uuid.UUID) (models.ProcessingStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	status, ok := c.decisions[id]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return status, nil
}

func TestDecisionServedFromCache(t *testing.T) {
	cache := &mapDecisionCache{}
	f := newFixture(t, WithDecisionCache(cache))

	p := f.submitPair(t, models.KindClientRegistration)
	require.NoError(t, f.svc.Approve(f.ctx, p.ID))

	status, err := f.svc.Decision(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, status)
	assert.Equal(t, models.StatusApproved, cache.decisions[p.ID])

	_, err = f.svc.Decision(f.ctx, uuid.New())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
