// Package store persists management requests and their processings. Both
// implementations expose the same two-level contract: ExecuteTarget gives a
// per-target critical section and RunInTx an atomic unit within it, so the
// service can commit "mark executing" separately from "execute and approve".
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"centreg/internal/management/models"
	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/platform/sentinel"
)

// MemoryStore keeps processings and requests in memory, handing out deep
// copies so callers never alias stored state.
type MemoryStore struct {
	mu          sync.RWMutex
	processings map[uuid.UUID]*models.Processing
	requests    map[uuid.UUID]*models.Request
	byTarget    map[models.TargetKey][]uuid.UUID

	lockMu sync.Mutex
	locks  map[models.TargetKey]*sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		processings: make(map[uuid.UUID]*models.Processing),
		requests:    make(map[uuid.UUID]*models.Request),
		byTarget:    make(map[models.TargetKey][]uuid.UUID),
		locks:       make(map[models.TargetKey]*sync.Mutex),
	}
}

// ExecuteTarget serializes fn against every other mutation of the same
// target. Locks are per exact key, so unrelated targets never block each
// other and the revocation path may nest a compensating submission for the
// deletion kind while holding the registration kind's lock.
func (s *MemoryStore) ExecuteTarget(ctx context.Context, key models.TargetKey, fn func(ctx context.Context) error) error {
	lock := s.targetLock(key)
	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

// RunInTx exists for interface parity with the Postgres store. In-memory
// mutations are applied directly; the service validates before it mutates,
// so failed operations leave the store untouched.
func (s *MemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *MemoryStore) targetLock(key models.TargetKey) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func (s *MemoryStore) CreateProcessing(ctx context.Context, p *models.Processing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.processings[p.ID]; ok {
		return sentinel.ErrConflict
	}
	s.storeLocked(p.Clone())
	return nil
}

func (s *MemoryStore) SaveProcessing(ctx context.Context, p *models.Processing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.processings[p.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.storeLocked(p.Clone())
	return nil
}

// storeLocked indexes the processing and its requests. The request map
// points into the stored processing clone so the denormalized status can
// never disagree between the two views.
func (s *MemoryStore) storeLocked(p *models.Processing) {
	s.processings[p.ID] = p
	key := p.TargetKey()
	if !containsID(s.byTarget[key], p.ID) {
		s.byTarget[key] = append(s.byTarget[key], p.ID)
	}
	for _, r := range p.Requests {
		s.requests[r.ID] = r
	}
}

func (s *MemoryStore) SaveRequest(ctx context.Context, r *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.requests[r.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	*stored = *r.Clone()
	return nil
}

// FindOpenProcessing returns the unique non-terminal processing for the
// target, sentinel.ErrNotFound when there is none, and an integrity
// violation when more than one exists. The store never creates the latter
// condition itself; the check exists to fail loudly if it ever occurs.
func (s *MemoryStore) FindOpenProcessing(ctx context.Context, key models.TargetKey) (*models.Processing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var open *models.Processing
	for _, id := range s.byTarget[key] {
		p := s.processings[id]
		if p.Status.Terminal() {
			continue
		}
		if open != nil {
			return nil, dErrors.Newf(dErrors.CodeIntegrityViolation, "multiple open processings for target %s", key)
		}
		open = p
	}
	if open == nil {
		return nil, sentinel.ErrNotFound
	}
	return open.Clone(), nil
}

func (s *MemoryStore) GetProcessing(ctx context.Context, id uuid.UUID) (*models.Processing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.processings[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p.Clone(), nil
}

func (s *MemoryStore) GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return r.Clone(), nil
}

// ListRequests returns every request ever submitted for the (server,
// client) pair, oldest first.
func (s *MemoryStore) ListRequests(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) ([]*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var requests []*models.Request
	for _, r := range s.requests {
		if r.SecurityServerID == server && r.ClientID == client {
			requests = append(requests, r.Clone())
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		if requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].ID.String() < requests[j].ID.String()
		}
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

// FindRevokingRequest returns the most recent compensating deletion request
// for the (server, client) pair, or sentinel.ErrNotFound.
func (s *MemoryStore) FindRevokingRequest(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *models.Request
	for _, r := range s.requests {
		if r.RevokesRequestID == uuid.Nil {
			continue
		}
		if r.SecurityServerID != server || r.ClientID != client {
			continue
		}
		if found == nil || r.CreatedAt.After(found.CreatedAt) {
			found = r
		}
	}
	if found == nil {
		return nil, sentinel.ErrNotFound
	}
	return found.Clone(), nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
