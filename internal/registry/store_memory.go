package registry

import (
	"context"
	"sort"
	"sync"
	"time"

	"centreg/pkg/domain"
	"centreg/pkg/platform/sentinel"
)

// MemoryStore is the in-memory registry. All mutating operations are
// idempotent set operations so execution handlers can be retried safely.
type MemoryStore struct {
	mu      sync.RWMutex
	members map[domain.MemberID]*Member
	clients map[domain.ClientID]*Client
	servers map[domain.SecurityServerID]*serverState
	groups  map[string]map[domain.ClientID]struct{}
}

type serverState struct {
	owner     domain.MemberID
	clients   map[domain.ClientID]struct{}
	certs     map[string]struct{}
	createdAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members: make(map[domain.MemberID]*Member),
		clients: make(map[domain.ClientID]*Client),
		servers: make(map[domain.SecurityServerID]*serverState),
		groups:  make(map[string]map[domain.ClientID]struct{}),
	}
}

// AddMember seeds a member record.
func (s *MemoryStore) AddMember(ctx context.Context, member Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := member
	s.members[member.ID] = &m
	return nil
}

// AddClient seeds a client record.
func (s *MemoryStore) AddClient(ctx context.Context, client Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := client
	s.clients[client.ID] = &c
	return nil
}

// AddServer seeds a security server owned by its identifier's member. The
// owner is also added to the owners group, mirroring server registration.
func (s *MemoryStore) AddServer(ctx context.Context, id domain.SecurityServerID, createdAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.servers[id]; ok {
		return nil
	}
	s.servers[id] = &serverState{
		owner:     id.Owner(),
		clients:   make(map[domain.ClientID]struct{}),
		certs:     make(map[string]struct{}),
		createdAt: createdAt,
	}
	s.addGroupMemberLocked(OwnersGroupCode, domain.MemberClientID(id.Owner()))
	return nil
}

func (s *MemoryStore) ResolveMember(ctx context.Context, id domain.MemberID) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (s *MemoryStore) ResolveClient(ctx context.Context, id domain.ClientID) (*Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *MemoryStore) ResolveServer(ctx context.Context, id domain.SecurityServerID) (*SecurityServer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.servers[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return snapshotServer(id, state), nil
}

func (s *MemoryStore) ServerExists(ctx context.Context, id domain.SecurityServerID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.servers[id]
	return ok, nil
}

func (s *MemoryStore) HasClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.servers[server]
	if !ok {
		return false, nil
	}
	_, ok = state.clients[client]
	return ok, nil
}

func (s *MemoryStore) AttachClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.servers[server]
	if !ok {
		return sentinel.ErrNotFound
	}
	state.clients[client] = struct{}{}
	return nil
}

func (s *MemoryStore) DetachClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.servers[server]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(state.clients, client)
	return nil
}

func (s *MemoryStore) TransferOwnership(ctx context.Context, server domain.SecurityServerID, newOwner domain.MemberID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.servers[server]
	if !ok {
		return sentinel.ErrNotFound
	}
	state.owner = newOwner
	return nil
}

func (s *MemoryStore) AddAuthCert(ctx context.Context, server domain.SecurityServerID, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.servers[server]
	if !ok {
		return sentinel.ErrNotFound
	}
	state.certs[fingerprint] = struct{}{}
	return nil
}

func (s *MemoryStore) RemoveAuthCert(ctx context.Context, server domain.SecurityServerID, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.servers[server]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(state.certs, fingerprint)
	return nil
}

// CountOwnedServers counts servers currently owned by the member, including
// servers whose ownership was transferred to it.
func (s *MemoryStore) CountOwnedServers(ctx context.Context, member domain.MemberID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, state := range s.servers {
		if state.owner == member {
			count++
		}
	}
	return count, nil
}

// AddGroupMember adds a client to a global group. Idempotent.
func (s *MemoryStore) AddGroupMember(ctx context.Context, group string, client domain.ClientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addGroupMemberLocked(group, client)
	return nil
}

// RemoveGroupMember removes a client from a global group. Idempotent.
func (s *MemoryStore) RemoveGroupMember(ctx context.Context, group string, client domain.ClientID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if members, ok := s.groups[group]; ok {
		delete(members, client)
	}
	return nil
}

// GroupMembers returns the members of a group in canonical order.
func (s *MemoryStore) GroupMembers(ctx context.Context, group string) ([]domain.ClientID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]domain.ClientID, 0, len(s.groups[group]))
	for m := range s.groups[group] {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].String() < members[j].String() })
	return members, nil
}

func (s *MemoryStore) addGroupMemberLocked(group string, client domain.ClientID) {
	if s.groups[group] == nil {
		s.groups[group] = make(map[domain.ClientID]struct{})
	}
	s.groups[group][client] = struct{}{}
}

func snapshotServer(id domain.SecurityServerID, state *serverState) *SecurityServer {
	server := &SecurityServer{
		ID:        id,
		Owner:     state.owner,
		Clients:   make([]domain.ClientID, 0, len(state.clients)),
		AuthCerts: make([]string, 0, len(state.certs)),
		CreatedAt: state.createdAt,
	}
	for c := range state.clients {
		server.Clients = append(server.Clients, c)
	}
	sort.Slice(server.Clients, func(i, j int) bool { return server.Clients[i].String() < server.Clients[j].String() })
	for f := range state.certs {
		server.AuthCerts = append(server.AuthCerts, f)
	}
	sort.Strings(server.AuthCerts)
	return server
}
