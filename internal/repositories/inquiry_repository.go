package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

type InquiryRepository interface {
	Create(ctx context.Context, i *models.Inquiry) error
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Inquiry, error)
	Count(ctx context.Context) (int, error)
}

type inquiryRepo struct {
	db DB
}

func NewInquiryRepository(db DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, i *models.Inquiry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO inquiries (id, property_id, name, email, phone, message, created_at)
        VALUES ($1,$2,$3,$4,$5,$6, NOW())
    `, i.ID, i.PropertyID, i.Name, i.Email, i.Phone, i.Message)
	return err
}

func (r *inquiryRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Inquiry, error) {
	rows, err := r.db.Query(ctx, `
        SELECT i.id, i.property_id, i.name, i.email, i.phone, i.message, i.created_at,
               pr.title, pr.location
        FROM inquiries i
        JOIN properties pr ON pr.id = i.property_id
        WHERE pr.dealer_id = $1
        ORDER BY i.created_at DESC
    `, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Inquiry
	for rows.Next() {
		var i models.Inquiry
		if err := rows.Scan(
			&i.ID, &i.PropertyID, &i.Name, &i.Email, &i.Phone, &i.Message, &i.CreatedAt,
			&i.PropertyTitle, &i.PropertyLocation,
		); err != nil {
			return nil, err
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

func (r *inquiryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&n)
	return n, err
}
