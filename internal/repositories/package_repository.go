package repositories

import (
	"context"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

type PackageRepository interface {
	Create(ctx context.Context, p *models.SubscriptionPackage) error
	ListActive(ctx context.Context) ([]*models.SubscriptionPackage, error)
}

type packageRepo struct {
	db DB
}

func NewPackageRepository(db DB) PackageRepository {
	return &packageRepo{db: db}
}

func (r *packageRepo) Create(ctx context.Context, p *models.SubscriptionPackage) error {
	if p.Features == nil {
		p.Features = []string{}
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO subscription_packages (
            id, name, price, duration_days, max_listings, features, is_active, display_order, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW())
        ON CONFLICT (name) DO NOTHING
    `, p.ID, p.Name, p.Price, p.DurationDays, p.MaxListings, p.Features, p.IsActive, p.DisplayOrder)
	return err
}

func (r *packageRepo) ListActive(ctx context.Context) ([]*models.SubscriptionPackage, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, price, duration_days, max_listings, features, is_active, display_order, created_at
        FROM subscription_packages
        WHERE is_active = TRUE
        ORDER BY display_order
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SubscriptionPackage
	for rows.Next() {
		var p models.SubscriptionPackage
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.DurationDays, &p.MaxListings,
			&p.Features, &p.IsActive, &p.DisplayOrder, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
