package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type RoleRepository interface {
	Assign(ctx context.Context, userID uuid.UUID, role models.Role) error
	ListByUser(ctx context.Context, userID uuid.UUID) (models.RoleSet, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
}

type roleRepo struct {
	db DB
}

func NewRoleRepository(db DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) Assign(ctx context.Context, userID uuid.UUID, role models.Role) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO user_roles (id, user_id, role) VALUES ($1, $2, $3)
        ON CONFLICT (user_id, role) DO NOTHING
    `, uuid.New(), userID, role.String())
	return err
}

// ListByUser skips unknown role names with a warning rather than failing the
// caller's login.
func (r *roleRepo) ListByUser(ctx context.Context, userID uuid.UUID) (models.RoleSet, error) {
	rows, err := r.db.Query(ctx, `SELECT role FROM user_roles WHERE user_id=$1`, userID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var set models.RoleSet
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return 0, err
		}
		role, err := models.ParseRole(name)
		if err != nil {
			utils.Logger.WithError(err).Warnf("Ignoring unknown role for user %s", userID)
			continue
		}
		set = set.With(role)
	}
	return set, rows.Err()
}

func (r *roleRepo) CountByRole(ctx context.Context, role models.Role) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_roles WHERE role=$1`, role.String()).Scan(&n)
	return n, err
}
