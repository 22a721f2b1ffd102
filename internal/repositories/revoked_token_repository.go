package repositories

import (
	"context"
	"time"
)

// RevokedTokenRepository stores logged-out access token ids until the
// tokens would have expired on their own.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type revokedTokenRepo struct {
	db DB
}

func NewRevokedTokenRepository(db DB) RevokedTokenRepository {
	return &revokedTokenRepo{db: db}
}

func (r *revokedTokenRepo) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO revoked_tokens (token_id, expires_at, revoked_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (token_id) DO NOTHING
    `, tokenID, expiresAt)
	return err
}

func (r *revokedTokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id=$1)`, tokenID,
	).Scan(&revoked)
	return revoked, err
}

func (r *revokedTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
