package repositories

import (
	"context"

	"github.com/google/uuid"
)

type PropertyViewRepository interface {
	Create(ctx context.Context, propertyID uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type propertyViewRepo struct {
	db DB
}

func NewPropertyViewRepository(db DB) PropertyViewRepository {
	return &propertyViewRepo{db: db}
}

func (r *propertyViewRepo) Create(ctx context.Context, propertyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO property_views (id, property_id, viewed_at) VALUES ($1, $2, NOW())
    `, uuid.New(), propertyID)
	return err
}

func (r *propertyViewRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM property_views`).Scan(&n)
	return n, err
}
