// Package registry holds the durable member, client and security server
// state that approved management requests mutate, plus the global group
// memberships (notably the security server owners group).
package registry

import (
	"time"

	"centreg/pkg/domain"
)

// OwnersGroupCode is the well-known global group holding every member that
// owns at least one security server.
const OwnersGroupCode = "security-server-owners"

// Member is a registered organizational member.
type Member struct {
	ID        domain.MemberID
	Name      string
	CreatedAt time.Time
}

// Client is a registered client identity: a member or one of its subsystems.
type Client struct {
	ID        domain.ClientID
	CreatedAt time.Time
}

// SecurityServer is a registered security server with its attached clients
// and authentication certificate fingerprints.
type SecurityServer struct {
	ID        domain.SecurityServerID
	Owner     domain.MemberID
	Clients   []domain.ClientID
	AuthCerts []string
	CreatedAt time.Time
}

// HasClient reports whether the client is attached to the server.
func (s *SecurityServer) HasClient(client domain.ClientID) bool {
	for _, c := range s.Clients {
		if c == client {
			return true
		}
	}
	return false
}
