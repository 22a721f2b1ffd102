package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.Profile, error)

	UpdateIfVersion(ctx context.Context, p *models.Profile, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Profile) error) error
}

type profileRepo struct {
	db   DB
	byID rowLoader[*models.Profile]
}

func NewProfileRepository(db DB) ProfileRepository {
	return &profileRepo{
		db:   db,
		byID: rowLoader[*models.Profile]{db: db, query: baseSelectProfile() + " WHERE id=$1", scan: scanProfile},
	}
}

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO profiles (
            id, user_id, email, company_name, full_name, phone, logo_url, bio,
            is_active, created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW(), 1)
    `,
		p.ID, p.UserID, p.Email, p.CompanyName, p.FullName, p.Phone, p.LogoURL, p.Bio, p.IsActive,
	)
	return err
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return r.byID.load(ctx, id)
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return scanProfile(r.db.QueryRow(ctx, baseSelectProfile()+" WHERE user_id=$1", userID))
}

func (r *profileRepo) ListByRole(ctx context.Context, role models.Role) ([]*models.Profile, error) {
	rows, err := r.db.Query(ctx, baseSelectProfile()+`
        WHERE user_id IN (SELECT user_id FROM user_roles WHERE role=$1)
        ORDER BY created_at DESC
    `, role.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profileRepo) UpdateIfVersion(ctx context.Context, p *models.Profile, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE profiles SET
            company_name=$1, full_name=$2, phone=$3, logo_url=$4, bio=$5, is_active=$6,
            updated_at=NOW(), row_version=row_version+1
        WHERE id=$7 AND row_version=$8
    `,
		p.CompanyName, p.FullName, p.Phone, p.LogoURL, p.Bio, p.IsActive,
		p.ID, expected,
	)
}

func (r *profileRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Profile) error) error {
	return UpdateVersioned(ctx, id, r.byID.load, r.UpdateIfVersion, mutate)
}

func baseSelectProfile() string {
	return `
        SELECT
            id, user_id, email, company_name, full_name, phone, logo_url, bio,
            is_active, created_at, updated_at, row_version
        FROM profiles
    `
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Email,
		&p.CompanyName,
		&p.FullName,
		&p.Phone,
		&p.LogoURL,
		&p.Bio,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
