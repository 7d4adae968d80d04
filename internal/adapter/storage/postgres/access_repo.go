package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-events/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccessGrantRepo implements ports.AccessGrantRepository. A partial unique
// index on (subject, resource) WHERE active makes Grant race-safe.
type AccessGrantRepo struct {
	pool Pool
}

// NewAccessGrantRepo creates a new AccessGrantRepo.
func NewAccessGrantRepo(pool Pool) *AccessGrantRepo {
	return &AccessGrantRepo{pool: pool}
}

// GetActive fetches the active grant for the pair, or nil.
func (r *AccessGrantRepo) GetActive(ctx context.Context, subject, resource string) (*domain.AccessGrant, error) {
	query := `SELECT id, subject, resource, grant_type, expires_at, active, created_at, revoked_at
		FROM access_grants WHERE subject = $1 AND resource = $2 AND active`

	g := &domain.AccessGrant{}
	err := r.pool.QueryRow(ctx, query, subject, resource).Scan(
		&g.ID, &g.Subject, &g.Resource, &g.GrantType, &g.ExpiresAt,
		&g.Active, &g.CreatedAt, &g.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access grant: %w", err)
	}
	return g, nil
}

// Grant inserts the pair unless an active grant already exists. Returns false
// for the idempotent no-op case.
func (r *AccessGrantRepo) Grant(ctx context.Context, g *domain.AccessGrant) (bool, error) {
	query := `INSERT INTO access_grants (id, subject, resource, grant_type, expires_at, active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6)
		ON CONFLICT (subject, resource) WHERE active DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		g.ID, g.Subject, g.Resource, g.GrantType, g.ExpiresAt, g.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert access grant: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Revoke deactivates the active grant for the pair. Absent or already-revoked
// pairs are a no-op.
func (r *AccessGrantRepo) Revoke(ctx context.Context, subject, resource string, at time.Time) error {
	query := `UPDATE access_grants SET active = FALSE, revoked_at = $1
		WHERE subject = $2 AND resource = $3 AND active`

	_, err := r.pool.Exec(ctx, query, at, subject, resource)
	if err != nil {
		return fmt.Errorf("revoke access grant: %w", err)
	}
	return nil
}

// CountActive returns the number of active grants.
func (r *AccessGrantRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM access_grants WHERE active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count access grants: %w", err)
	}
	return count, nil
}
