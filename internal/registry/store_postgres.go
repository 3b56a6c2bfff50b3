package registry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"centreg/pkg/domain"
	"centreg/pkg/platform/sentinel"
	"centreg/pkg/platform/tx"
)

// PostgresStore persists the registry in PostgreSQL. All methods join a
// caller transaction carried in context so registry mutations commit
// atomically with the owning processing transition.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) q(ctx context.Context) tx.Querier {
	return tx.Resolve(ctx, s.db)
}

func (s *PostgresStore) AddMember(ctx context.Context, member Member) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO members (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, member.ID.String(), member.Name, member.CreatedAt)
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddClient(ctx context.Context, client Client) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO clients (id, created_at)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, client.ID.String(), client.CreatedAt)
	if err != nil {
		return fmt.Errorf("add client: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddServer(ctx context.Context, id domain.SecurityServerID, createdAt time.Time) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO security_servers (id, owner, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, id.String(), id.Owner().String(), createdAt)
	if err != nil {
		return fmt.Errorf("add server: %w", err)
	}
	return s.AddGroupMember(ctx, OwnersGroupCode, domain.MemberClientID(id.Owner()))
}

func (s *PostgresStore) ResolveMember(ctx context.Context, id domain.MemberID) (*Member, error) {
	member := Member{ID: id}
	err := s.q(ctx).QueryRowContext(ctx, `
		SELECT name, created_at FROM members WHERE id = $1
	`, id.String()).Scan(&member.Name, &member.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	return &member, nil
}

func (s *PostgresStore) ResolveClient(ctx context.Context, id domain.ClientID) (*Client, error) {
	client := Client{ID: id}
	err := s.q(ctx).QueryRowContext(ctx, `
		SELECT created_at FROM clients WHERE id = $1
	`, id.String()).Scan(&client.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	return &client, nil
}

func (s *PostgresStore) ResolveServer(ctx context.Context, id domain.SecurityServerID) (*SecurityServer, error) {
	server := SecurityServer{ID: id}
	var owner string
	err := s.q(ctx).QueryRowContext(ctx, `
		SELECT owner, created_at FROM security_servers WHERE id = $1
	`, id.String()).Scan(&owner, &server.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve server: %w", err)
	}
	ownerID, err := domain.ParseClientID(owner)
	if err != nil {
		return nil, fmt.Errorf("resolve server: malformed owner %q: %w", owner, err)
	}
	server.Owner = ownerID.Member()

	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT client_id FROM server_clients WHERE server_id = $1 ORDER BY client_id
	`, id.String())
	if err != nil {
		return nil, fmt.Errorf("resolve server clients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan server client: %w", err)
		}
		clientID, err := domain.ParseClientID(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed server client %q: %w", raw, err)
		}
		server.Clients = append(server.Clients, clientID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate server clients: %w", err)
	}

	certRows, err := s.q(ctx).QueryContext(ctx, `
		SELECT fingerprint FROM server_auth_certs WHERE server_id = $1 ORDER BY fingerprint
	`, id.String())
	if err != nil {
		return nil, fmt.Errorf("resolve server certs: %w", err)
	}
	defer certRows.Close()
	for certRows.Next() {
		var fingerprint string
		if err := certRows.Scan(&fingerprint); err != nil {
			return nil, fmt.Errorf("scan server cert: %w", err)
		}
		server.AuthCerts = append(server.AuthCerts, fingerprint)
	}
	if err := certRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate server certs: %w", err)
	}
	return &server, nil
}

func (s *PostgresStore) ServerExists(ctx context.Context, id domain.SecurityServerID) (bool, error) {
	var exists bool
	err := s.q(ctx).QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM security_servers WHERE id = $1)
	`, id.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check server exists: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) HasClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) (bool, error) {
	var exists bool
	err := s.q(ctx).QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM server_clients WHERE server_id = $1 AND client_id = $2)
	`, server.String(), client.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check server client: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) AttachClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) error {
	if err := s.requireServer(ctx, server); err != nil {
		return err
	}
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO server_clients (server_id, client_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, server.String(), client.String())
	if err != nil {
		return fmt.Errorf("attach client: %w", err)
	}
	return nil
}

func (s *PostgresStore) DetachClient(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) error {
	if err := s.requireServer(ctx, server); err != nil {
		return err
	}
	_, err := s.q(ctx).ExecContext(ctx, `
		DELETE FROM server_clients WHERE server_id = $1 AND client_id = $2
	`, server.String(), client.String())
	if err != nil {
		return fmt.Errorf("detach client: %w", err)
	}
	return nil
}

func (s *PostgresStore) TransferOwnership(ctx context.Context, server domain.SecurityServerID, newOwner domain.MemberID) error {
	result, err := s.q(ctx).ExecContext(ctx, `
		UPDATE security_servers SET owner = $2 WHERE id = $1
	`, server.String(), newOwner.String())
	if err != nil {
		return fmt.Errorf("transfer ownership: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("transfer ownership: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AddAuthCert(ctx context.Context, server domain.SecurityServerID, fingerprint string) error {
	if err := s.requireServer(ctx, server); err != nil {
		return err
	}
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO server_auth_certs (server_id, fingerprint)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, server.String(), fingerprint)
	if err != nil {
		return fmt.Errorf("add auth cert: %w", err)
	}
	return nil
}

func (s *PostgresStore) RemoveAuthCert(ctx context.Context, server domain.SecurityServerID, fingerprint string) error {
	if err := s.requireServer(ctx, server); err != nil {
		return err
	}
	_, err := s.q(ctx).ExecContext(ctx, `
		DELETE FROM server_auth_certs WHERE server_id = $1 AND fingerprint = $2
	`, server.String(), fingerprint)
	if err != nil {
		return fmt.Errorf("remove auth cert: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountOwnedServers(ctx context.Context, member domain.MemberID) (int, error) {
	var count int
	err := s.q(ctx).QueryRowContext(ctx, `
		SELECT COUNT(*) FROM security_servers WHERE owner = $1
	`, member.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count owned servers: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) AddGroupMember(ctx context.Context, group string, client domain.ClientID) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO global_group_members (group_code, client_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, group, client.String())
	if err != nil {
		return fmt.Errorf("add group member: %w", err)
	}
	return nil
}

func (s *PostgresStore) RemoveGroupMember(ctx context.Context, group string, client domain.ClientID) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		DELETE FROM global_group_members WHERE group_code = $1 AND client_id = $2
	`, group, client.String())
	if err != nil {
		return fmt.Errorf("remove group member: %w", err)
	}
	return nil
}

func (s *PostgresStore) GroupMembers(ctx context.Context, group string) ([]domain.ClientID, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT client_id FROM global_group_members WHERE group_code = $1 ORDER BY client_id
	`, group)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	defer rows.Close()
	var members []domain.ClientID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan group member: %w", err)
		}
		id, err := domain.ParseClientID(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed group member %q: %w", raw, err)
		}
		members = append(members, id)
	}
	return members, rows.Err()
}

func (s *PostgresStore) requireServer(ctx context.Context, server domain.SecurityServerID) error {
	exists, err := s.ServerExists(ctx, server)
	if err != nil {
		return err
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	return nil
}
