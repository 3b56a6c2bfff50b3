package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"centreg/internal/management/models"
	"centreg/pkg/domain"
	dErrors "centreg/pkg/domain-errors"
	"centreg/pkg/platform/sentinel"
	"centreg/pkg/platform/tx"
)

// PostgresStore persists processings and requests in PostgreSQL.
//
// ExecuteTarget takes a session advisory lock keyed on the target, pinned to
// a dedicated connection; RunInTx opens transactions on that same connection
// so the "mark executing" commit and the "execute and approve" commit are
// separate units while the target stays locked throughout.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type targetConnKey struct{}

func (s *PostgresStore) ExecuteTarget(ctx context.Context, key models.TargetKey, fn func(ctx context.Context) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	lockID := targetLockID(key)
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockID); err != nil {
		return fmt.Errorf("lock target %s: %w", key, err)
	}
	defer func() {
		// Unlock even when ctx is already cancelled; conn.Close would also
		// release the session lock, but an explicit unlock keeps the pooled
		// connection reusable.
		_, _ = conn.ExecContext(context.WithoutCancel(ctx), `SELECT pg_advisory_unlock($1)`, lockID)
	}()

	return fn(context.WithValue(ctx, targetConnKey{}, conn))
}

func (s *PostgresStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	var (
		sqlTx *sql.Tx
		err   error
	)
	if conn, ok := ctx.Value(targetConnKey{}).(*sql.Conn); ok {
		sqlTx, err = conn.BeginTx(ctx, nil)
	} else {
		sqlTx, err = s.db.BeginTx(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx.WithTx(ctx, sqlTx)); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// targetLockID folds the target key into the 64-bit advisory lock space.
func targetLockID(key models.TargetKey) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key.String()))
	return int64(h.Sum64())
}

func (s *PostgresStore) q(ctx context.Context) tx.Querier {
	if sqlTx, ok := tx.From(ctx); ok {
		return sqlTx
	}
	if conn, ok := ctx.Value(targetConnKey{}).(*sql.Conn); ok {
		return connQuerier{conn}
	}
	return s.db
}

// connQuerier adapts *sql.Conn to the shared Querier interface.
type connQuerier struct {
	conn *sql.Conn
}

func (c connQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.conn.ExecContext(ctx, query, args...)
}

func (c connQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.conn.QueryContext(ctx, query, args...)
}

func (c connQuerier) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return c.conn.QueryRowContext(ctx, query, args...)
}

var terminalStatuses = []string{
	string(models.StatusApproved),
	string(models.StatusDeclined),
	string(models.StatusRevoked),
}

func (s *PostgresStore) CreateProcessing(ctx context.Context, p *models.Processing) error {
	key := p.TargetKey()
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO request_processings (id, kind, status, security_server, client, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, string(p.Kind), string(p.Status), key.Server.String(), key.Client.String(), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert processing: %w", err)
	}
	return s.upsertRequests(ctx, p)
}

func (s *PostgresStore) SaveProcessing(ctx context.Context, p *models.Processing) error {
	result, err := s.q(ctx).ExecContext(ctx, `
		UPDATE request_processings SET status = $2, updated_at = $3 WHERE id = $1
	`, p.ID, string(p.Status), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update processing: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update processing: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return s.upsertRequests(ctx, p)
}

// upsertRequests writes every attached request, including the denormalized
// processing status, in the caller's transaction. This is the write-through
// step that keeps request and processing views agreeing.
func (s *PostgresStore) upsertRequests(ctx context.Context, p *models.Processing) error {
	for _, r := range p.Requests {
		if err := s.upsertRequest(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) upsertRequest(ctx context.Context, r *models.Request) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO management_requests
			(id, kind, security_server, client, origin, comment, cert_fingerprint,
			 created_at, processing_id, processing_status, revokes_request_id, superseded_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			processing_id = EXCLUDED.processing_id,
			processing_status = EXCLUDED.processing_status,
			superseded_by_id = EXCLUDED.superseded_by_id
	`, r.ID, string(r.Kind), r.SecurityServerID.String(), r.ClientID.String(),
		string(r.Origin), r.Comment, r.CertFingerprint, r.CreatedAt,
		nullUUID(r.ProcessingID), string(r.ProcessingStatus),
		nullUUID(r.RevokesRequestID), nullUUID(r.SupersededByID))
	if err != nil {
		return fmt.Errorf("upsert request: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveRequest(ctx context.Context, r *models.Request) error {
	return s.upsertRequest(ctx, r)
}

func (s *PostgresStore) FindOpenProcessing(ctx context.Context, key models.TargetKey) (*models.Processing, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT id FROM request_processings
		WHERE security_server = $1 AND client = $2 AND kind = $3
		  AND status <> ALL ($4)
	`, key.Server.String(), key.Client.String(), string(key.Kind), pq.Array(terminalStatuses))
	if err != nil {
		return nil, fmt.Errorf("find open processing: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan open processing: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate open processings: %w", err)
	}
	switch len(ids) {
	case 0:
		return nil, sentinel.ErrNotFound
	case 1:
		return s.GetProcessing(ctx, ids[0])
	default:
		return nil, dErrors.Newf(dErrors.CodeIntegrityViolation, "multiple open processings for target %s", key)
	}
}

func (s *PostgresStore) GetProcessing(ctx context.Context, id uuid.UUID) (*models.Processing, error) {
	p := models.Processing{ID: id}
	var kind, status string
	err := s.q(ctx).QueryRowContext(ctx, `
		SELECT kind, status, created_at, updated_at FROM request_processings WHERE id = $1
	`, id).Scan(&kind, &status, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get processing: %w", err)
	}
	p.Kind = models.RequestKind(kind)
	p.Status = models.ProcessingStatus(status)

	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT id, kind, security_server, client, origin, comment, cert_fingerprint,
		       created_at, processing_id, processing_status, revokes_request_id, superseded_by_id
		FROM management_requests
		WHERE processing_id = $1
		ORDER BY created_at, id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get processing requests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		p.Requests = append(p.Requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processing requests: %w", err)
	}
	return &p, nil
}

func (s *PostgresStore) GetRequest(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT id, kind, security_server, client, origin, comment, cert_fingerprint,
		       created_at, processing_id, processing_status, revokes_request_id, superseded_by_id
		FROM management_requests
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get request: %w", err)
		}
		return nil, sentinel.ErrNotFound
	}
	return scanRequest(rows)
}

func (s *PostgresStore) ListRequests(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) ([]*models.Request, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT id, kind, security_server, client, origin, comment, cert_fingerprint,
		       created_at, processing_id, processing_status, revokes_request_id, superseded_by_id
		FROM management_requests
		WHERE security_server = $1 AND client = $2
		ORDER BY created_at, id
	`, server.String(), client.String())
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	var requests []*models.Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *PostgresStore) FindRevokingRequest(ctx context.Context, server domain.SecurityServerID, client domain.ClientID) (*models.Request, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT id, kind, security_server, client, origin, comment, cert_fingerprint,
		       created_at, processing_id, processing_status, revokes_request_id, superseded_by_id
		FROM management_requests
		WHERE security_server = $1 AND client = $2 AND revokes_request_id IS NOT NULL
		ORDER BY created_at DESC, id
		LIMIT 1
	`, server.String(), client.String())
	if err != nil {
		return nil, fmt.Errorf("find revoking request: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("find revoking request: %w", err)
		}
		return nil, sentinel.ErrNotFound
	}
	return scanRequest(rows)
}

func scanRequest(rows *sql.Rows) (*models.Request, error) {
	var (
		r                     models.Request
		kind, server, client  string
		origin, status        string
		processingID, revokes sql.Null[uuid.UUID]
		supersededBy          sql.Null[uuid.UUID]
		createdAt             time.Time
	)
	if err := rows.Scan(&r.ID, &kind, &server, &client, &origin, &r.Comment, &r.CertFingerprint,
		&createdAt, &processingID, &status, &revokes, &supersededBy); err != nil {
		return nil, fmt.Errorf("scan request: %w", err)
	}
	serverID, err := domain.ParseSecurityServerID(server)
	if err != nil {
		return nil, fmt.Errorf("malformed request server %q: %w", server, err)
	}
	clientID, err := domain.ParseClientID(client)
	if err != nil {
		return nil, fmt.Errorf("malformed request client %q: %w", client, err)
	}
	r.Kind = models.RequestKind(kind)
	r.SecurityServerID = serverID
	r.ClientID = clientID
	r.Origin = models.Origin(origin)
	r.ProcessingStatus = models.ProcessingStatus(status)
	r.CreatedAt = createdAt
	if processingID.Valid {
		r.ProcessingID = processingID.V
	}
	if revokes.Valid {
		r.RevokesRequestID = revokes.V
	}
	if supersededBy.Valid {
		r.SupersededByID = supersededBy.V
	}
	return &r, nil
}

func nullUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
