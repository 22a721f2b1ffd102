package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

// PropertyFilter narrows the public listing query. Zero values impose no
// constraint.
type PropertyFilter struct {
	ListingType string
	City        string
	MinPrice    *float64
	MaxPrice    *float64
	Search      string

	// Near restricts results to a radius around a point; applied by the
	// service after the query since it needs great-circle distance.
	Near *GeoRadius
}

type GeoRadius struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
}

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	ListActive(ctx context.Context, f PropertyFilter) ([]*models.Property, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Property, error)
	ListAll(ctx context.Context) ([]*models.Property, error)

	UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) error
	Delete(ctx context.Context, id uuid.UUID) error

	IncrementInquiries(ctx context.Context, id uuid.UUID) error
	AppendImage(ctx context.Context, id uuid.UUID, key string) error
	RollupViews(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db   DB
	byID rowLoader[*models.Property]
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{
		db:   db,
		byID: rowLoader[*models.Property]{db: db, query: baseSelectProperty() + " WHERE pr.id=$1", scan: scanProperty},
	}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	if p.Images == nil {
		p.Images = []string{}
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO properties (
            id, dealer_id, title, description, price, listing_type, property_type,
            location, city, area, latitude, longitude, bedrooms, bathrooms,
            images, is_active, is_featured,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17, NOW(), NOW(), 1)
    `,
		p.ID,
		p.DealerID,
		p.Title,
		p.Description,
		p.Price,
		string(p.ListingType),
		p.PropertyType,
		p.Location,
		p.City,
		p.Area,
		p.Latitude,
		p.Longitude,
		p.Bedrooms,
		p.Bathrooms,
		p.Images,
		p.IsActive,
		p.IsFeatured,
	)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return r.byID.load(ctx, id)
}

func (r *propertyRepo) ListActive(ctx context.Context, f PropertyFilter) ([]*models.Property, error) {
	sql, args := buildActiveListingQuery(f)
	return r.queryList(ctx, sql, args...)
}

// likeEscaper makes user search text match literally inside ILIKE.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildActiveListingQuery composes the listing query; kept separate so the
// clause building can be tested without a database.
func buildActiveListingQuery(f PropertyFilter) (string, []any) {
	var (
		where = []string{"pr.is_active = TRUE"}
		args  []any
	)
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.ListingType != "" {
		add("pr.listing_type = $%d", f.ListingType)
	}
	if f.City != "" {
		add("pr.city = $%d", f.City)
	}
	if f.MinPrice != nil {
		add("pr.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("pr.price <= $%d", *f.MaxPrice)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+likeEscaper.Replace(s)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			`(pr.title ILIKE $%[1]d ESCAPE '\' OR pr.location ILIKE $%[1]d ESCAPE '\' OR pr.area ILIKE $%[1]d ESCAPE '\')`, n))
	}
	sql := baseSelectProperty() + " WHERE " + strings.Join(where, " AND ") + " ORDER BY pr.created_at DESC"
	return sql, args
}

func (r *propertyRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Property, error) {
	return r.queryList(ctx, baseSelectProperty()+" WHERE pr.dealer_id=$1 ORDER BY pr.created_at DESC", dealerID)
}

func (r *propertyRepo) ListAll(ctx context.Context) ([]*models.Property, error) {
	return r.queryList(ctx, baseSelectProperty()+" ORDER BY pr.created_at DESC")
}

func (r *propertyRepo) queryList(ctx context.Context, sql string, args ...any) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertyRepo) UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE properties SET
            title=$1, description=$2, price=$3, listing_type=$4, property_type=$5,
            location=$6, city=$7, area=$8, latitude=$9, longitude=$10,
            bedrooms=$11, bathrooms=$12, images=$13, is_active=$14, is_featured=$15,
            updated_at=NOW(), row_version=row_version+1
        WHERE id=$16 AND row_version=$17
    `,
		p.Title, p.Description, p.Price, string(p.ListingType), p.PropertyType,
		p.Location, p.City, p.Area, p.Latitude, p.Longitude,
		p.Bedrooms, p.Bathrooms, p.Images, p.IsActive, p.IsFeatured,
		p.ID, expected,
	)
}

func (r *propertyRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) error {
	return UpdateVersioned(ctx, id, r.byID.load, r.UpdateIfVersion, mutate)
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepo) IncrementInquiries(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        UPDATE properties SET inquiries_count = inquiries_count + 1 WHERE id=$1
    `, id)
	return err
}

func (r *propertyRepo) AppendImage(ctx context.Context, id uuid.UUID, key string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE properties
        SET images = array_append(images, $2), updated_at=NOW(), row_version=row_version+1
        WHERE id=$1
    `, id, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RollupViews recomputes views_count from the raw view log and reports how
// many listings changed.
func (r *propertyRepo) RollupViews(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE properties pr SET views_count = v.cnt
        FROM (
            SELECT property_id, COUNT(*)::int AS cnt
            FROM property_views GROUP BY property_id
        ) v
        WHERE v.property_id = pr.id AND pr.views_count <> v.cnt
    `)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *propertyRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n)
	return n, err
}

func baseSelectProperty() string {
	return `
        SELECT
            pr.id, pr.dealer_id, pr.title, pr.description, pr.price,
            pr.listing_type, pr.property_type, pr.location, pr.city, pr.area,
            pr.latitude, pr.longitude, pr.bedrooms, pr.bathrooms, pr.images,
            pr.is_active, pr.is_featured, pr.views_count, pr.inquiries_count,
            pr.created_at, pr.updated_at, pr.row_version,
            pf.company_name, pf.full_name, pf.phone, pf.email
        FROM properties pr
        LEFT JOIN profiles pf ON pf.id = pr.dealer_id
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var (
		p           models.Property
		listingType string
		dealer      models.DealerSummary
	)
	err := row.Scan(
		&p.ID,
		&p.DealerID,
		&p.Title,
		&p.Description,
		&p.Price,
		&listingType,
		&p.PropertyType,
		&p.Location,
		&p.City,
		&p.Area,
		&p.Latitude,
		&p.Longitude,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Images,
		&p.IsActive,
		&p.IsFeatured,
		&p.ViewsCount,
		&p.InquiriesCount,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.RowVersion,
		&dealer.CompanyName,
		&dealer.FullName,
		&dealer.Phone,
		&dealer.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.ListingType = models.ListingType(listingType)
	if dealer.CompanyName != nil || dealer.FullName != nil || dealer.Phone != nil || dealer.Email != nil {
		p.Dealer = &dealer
	}
	return &p, nil
}
