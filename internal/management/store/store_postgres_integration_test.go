//go:build integration

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"centreg/internal/management/models"
	"centreg/pkg/domain"
	"centreg/pkg/platform/sentinel"
	"centreg/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
	ctx   context.Context
	now   time.Time

	server domain.SecurityServerID
	client domain.ClientID
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T(), Schema)
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(s.T(), s.pg.Truncate(s.ctx, "management_requests", "request_processings"))

	var err error
	s.server, err = domain.NewSecurityServerID("FED", "GOV", "1001", "SS1")
	require.NoError(s.T(), err)
	s.client, err = domain.NewSubsystemID("FED", "COM", "2002", "billing")
	require.NoError(s.T(), err)
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) newProcessing(origin models.Origin) *models.Processing {
	p := models.NewProcessing(models.KindClientRegistration, s.now)
	req := models.NewRequest(models.KindClientRegistration, s.server, s.client, origin, "", s.now)
	require.NoError(s.T(), p.AddRequest(req, s.now))
	return p
}

func (s *PostgresStoreSuite) key() models.TargetKey {
	return models.TargetKey{Server: s.server, Client: s.client, Kind: models.KindClientRegistration}
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	p := s.newProcessing(models.OriginSecurityServer)
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, p))

	got, err := s.store.FindOpenProcessing(s.ctx, s.key())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), p.ID, got.ID)
	assert.Equal(s.T(), models.StatusWaiting, got.Status)
	require.Len(s.T(), got.Requests, 1)
	assert.Equal(s.T(), p.Requests[0].ID, got.Requests[0].ID)
	assert.True(s.T(), got.CreatedAt.Equal(s.now))
}

func (s *PostgresStoreSuite) TestDenormalizedStatusMovesWithProcessing() {
	p := s.newProcessing(models.OriginSecurityServer)
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, p))

	second := models.NewRequest(models.KindClientRegistration, s.server, s.client, models.OriginCenter, "", s.now)
	require.NoError(s.T(), p.AddRequest(second, s.now))
	require.NoError(s.T(), s.store.SaveProcessing(s.ctx, p))

	for _, req := range p.Requests {
		got, err := s.store.GetRequest(s.ctx, req.ID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), models.StatusSubmittedForApproval, got.ProcessingStatus)
	}
}

func (s *PostgresStoreSuite) TestOpenProcessingUniquePerTarget() {
	first := s.newProcessing(models.OriginSecurityServer)
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, first))

	// The partial unique index guards the one-open-processing invariant at
	// the storage layer too.
	second := s.newProcessing(models.OriginCenter)
	err := s.store.CreateProcessing(s.ctx, second)
	require.Error(s.T(), err)
}

func (s *PostgresStoreSuite) TestTerminalProcessingFreesTarget() {
	p := s.newProcessing(models.OriginSecurityServer)
	require.NoError(s.T(), p.Revoke(s.now))
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, p))

	_, err := s.store.FindOpenProcessing(s.ctx, s.key())
	assert.ErrorIs(s.T(), err, sentinel.ErrNotFound)

	// A new round may open for the same target.
	next := s.newProcessing(models.OriginSecurityServer)
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, next))
}

func (s *PostgresStoreSuite) TestRunInTxRollsBackOnError() {
	p := s.newProcessing(models.OriginSecurityServer)

	err := s.store.ExecuteTarget(s.ctx, s.key(), func(ctx context.Context) error {
		return s.store.RunInTx(ctx, func(ctx context.Context) error {
			if err := s.store.CreateProcessing(ctx, p); err != nil {
				return err
			}
			return assert.AnError
		})
	})
	require.ErrorIs(s.T(), err, assert.AnError)

	_, err = s.store.GetProcessing(s.ctx, p.ID)
	assert.ErrorIs(s.T(), err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestTwoPhaseCommitLeavesExecutingVisible() {
	p := s.newProcessing(models.OriginSecurityServer)
	second := models.NewRequest(models.KindClientRegistration, s.server, s.client, models.OriginCenter, "", s.now)
	require.NoError(s.T(), p.AddRequest(second, s.now))
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, p))

	err := s.store.ExecuteTarget(s.ctx, s.key(), func(ctx context.Context) error {
		// Phase one commits the transition to executing.
		if err := s.store.RunInTx(ctx, func(ctx context.Context) error {
			if _, err := p.BeginExecution(s.now); err != nil {
				return err
			}
			return s.store.SaveProcessing(ctx, p)
		}); err != nil {
			return err
		}
		// Phase two fails and rolls back; phase one must survive.
		return s.store.RunInTx(ctx, func(ctx context.Context) error {
			if err := p.CompleteExecution(s.now); err != nil {
				return err
			}
			if err := s.store.SaveProcessing(ctx, p); err != nil {
				return err
			}
			return assert.AnError
		})
	})
	require.ErrorIs(s.T(), err, assert.AnError)

	got, err := s.store.GetProcessing(s.ctx, p.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusExecuting, got.Status)
}

func (s *PostgresStoreSuite) TestExecuteTargetSerializes() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.store.ExecuteTarget(s.ctx, s.key(), func(ctx context.Context) error {
				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()

				time.Sleep(50 * time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(s.T(), 1, maxSeen)
}

func (s *PostgresStoreSuite) TestSupersededMarkerRoundTrip() {
	p := s.newProcessing(models.OriginSecurityServer)
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, p))

	req := p.Requests[0]
	req.SupersededByID = uuid.New()
	require.NoError(s.T(), s.store.SaveRequest(s.ctx, req))

	got, err := s.store.GetRequest(s.ctx, req.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), req.SupersededByID, got.SupersededByID)
}

func (s *PostgresStoreSuite) TestFindRevokingRequest() {
	p := models.NewProcessing(models.KindClientDeletion, s.now)
	req := models.NewRequest(models.KindClientDeletion, s.server, s.client, models.OriginSecurityServer, "", s.now)
	req.RevokesRequestID = uuid.New()
	require.NoError(s.T(), p.AddRequest(req, s.now))
	require.NoError(s.T(), s.store.CreateProcessing(s.ctx, p))

	got, err := s.store.FindRevokingRequest(s.ctx, s.server, s.client)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), req.ID, got.ID)
	assert.Equal(s.T(), req.RevokesRequestID, got.RevokesRequestID)
}
