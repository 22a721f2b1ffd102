package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

func init() {
	utils.PasswordCost = 4
}

/* ------------------------------------------------------------------
   Users / profiles / roles
------------------------------------------------------------------ */

type fakeUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*models.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[uuid.UUID]*models.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	cp.Email = strings.ToLower(cp.Email)
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

type fakeProfiles struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*models.Profile
	roles *fakeRoles
}

func newFakeProfiles(roles *fakeRoles) *fakeProfiles {
	return &fakeProfiles{byID: map[uuid.UUID]*models.Profile{}, roles: roles}
}

func (f *fakeProfiles) Create(_ context.Context, p *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	cp.RowVersion = 1
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProfiles) ListByRole(ctx context.Context, role models.Role) ([]*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Profile
	for _, p := range f.byID {
		set, _ := f.roles.ListByUser(ctx, p.UserID)
		if set.Has(role) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProfiles) UpdateIfVersion(_ context.Context, p *models.Profile, expected int64) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.byID[p.ID]
	if !ok || cur.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cp := *p
	cp.RowVersion = expected + 1
	f.byID[p.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeProfiles) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Profile) error) error {
	return repositories.UpdateVersioned(ctx, id, f.GetByID, f.UpdateIfVersion, mutate)
}

type fakeRoles struct {
	mu    sync.Mutex
	roles map[uuid.UUID]models.RoleSet
}

func newFakeRoles() *fakeRoles { return &fakeRoles{roles: map[uuid.UUID]models.RoleSet{}} }

func (f *fakeRoles) Assign(_ context.Context, userID uuid.UUID, role models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[userID] = f.roles[userID].With(role)
	return nil
}

func (f *fakeRoles) ListByUser(_ context.Context, userID uuid.UUID) (models.RoleSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roles[userID], nil
}

func (f *fakeRoles) CountByRole(_ context.Context, role models.Role) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.roles {
		if s.Has(role) {
			n++
		}
	}
	return n, nil
}

/* ------------------------------------------------------------------
   Properties
------------------------------------------------------------------ */

type fakeProperties struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*models.Property
	order []uuid.UUID
}

func newFakeProperties() *fakeProperties {
	return &fakeProperties{byID: map[uuid.UUID]*models.Property{}}
}

func (f *fakeProperties) Create(_ context.Context, p *models.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	cp.RowVersion = 1
	f.byID[p.ID] = &cp
	f.order = append([]uuid.UUID{p.ID}, f.order...)
	return nil
}

func (f *fakeProperties) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProperties) list(keep func(*models.Property) bool) []*models.Property {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Property
	for _, id := range f.order {
		if p, ok := f.byID[id]; ok && keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

func (f *fakeProperties) ListActive(_ context.Context, flt repositories.PropertyFilter) ([]*models.Property, error) {
	return f.list(func(p *models.Property) bool {
		if !p.IsActive {
			return false
		}
		if flt.ListingType != "" && string(p.ListingType) != flt.ListingType {
			return false
		}
		return true
	}), nil
}

func (f *fakeProperties) ListByDealer(_ context.Context, dealerID uuid.UUID) ([]*models.Property, error) {
	return f.list(func(p *models.Property) bool { return p.DealerID == dealerID }), nil
}

func (f *fakeProperties) ListAll(_ context.Context) ([]*models.Property, error) {
	return f.list(func(*models.Property) bool { return true }), nil
}

func (f *fakeProperties) UpdateIfVersion(_ context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.byID[p.ID]
	if !ok || cur.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cp := *p
	cp.RowVersion = expected + 1
	f.byID[p.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeProperties) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) error {
	return repositories.UpdateVersioned(ctx, id, f.GetByID, f.UpdateIfVersion, mutate)
}

func (f *fakeProperties) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProperties) IncrementInquiries(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byID[id]; ok {
		p.InquiriesCount++
	}
	return nil
}

func (f *fakeProperties) AppendImage(_ context.Context, id uuid.UUID, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byID[id]; ok {
		p.Images = append(p.Images, key)
	}
	return nil
}

func (f *fakeProperties) RollupViews(context.Context) (int64, error) { return 0, nil }

func (f *fakeProperties) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID), nil
}

/* ------------------------------------------------------------------
   Inquiries / views / packages
------------------------------------------------------------------ */

type fakeInquiries struct {
	mu    sync.Mutex
	items []*models.Inquiry
	props *fakeProperties
}

func (f *fakeInquiries) Create(_ context.Context, i *models.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *i
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeInquiries) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Inquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Inquiry
	for _, i := range f.items {
		p, _ := f.props.GetByID(ctx, i.PropertyID)
		if p != nil && p.DealerID == dealerID {
			cp := *i
			cp.PropertyTitle = p.Title
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeInquiries) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items), nil
}

type fakeViews struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (f *fakeViews) Create(_ context.Context, propertyID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, propertyID)
	return nil
}

func (f *fakeViews) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ids), nil
}

func (f *fakeViews) logged() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uuid.UUID(nil), f.ids...)
}

type fakeRevokedTokens struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	err    error
}

func newFakeRevokedTokens() *fakeRevokedTokens {
	return &fakeRevokedTokens{tokens: map[string]time.Time{}}
}

func (f *fakeRevokedTokens) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.tokens[tokenID]; !ok {
		f.tokens[tokenID] = expiresAt
	}
	return nil
}

func (f *fakeRevokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.tokens[tokenID]
	return ok, nil
}

func (f *fakeRevokedTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, exp := range f.tokens {
		if exp.Before(now) {
			delete(f.tokens, id)
			n++
		}
	}
	return n, nil
}

/* ------------------------------------------------------------------
   Fixture
------------------------------------------------------------------ */

type fixture struct {
	users     *fakeUsers
	profiles  *fakeProfiles
	roles     *fakeRoles
	props     *fakeProperties
	inquiries *fakeInquiries
	views     *fakeViews
	revoked   *fakeRevokedTokens
	jwt       JWTService
	key       *rsa.PrivateKey

	auth     AuthService
	property *PropertyService
}

func newFixture(t *testing.T, geocoder Geocoder) *fixture {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &fixture{
		users:   newFakeUsers(),
		roles:   newFakeRoles(),
		props:   newFakeProperties(),
		views:   &fakeViews{},
		revoked: newFakeRevokedTokens(),
		key:     key,
	}
	f.profiles = newFakeProfiles(f.roles)
	f.inquiries = &fakeInquiries{props: f.props}
	f.jwt = NewJWTService(key, time.Hour, f.revoked)
	f.auth = NewAuthService(f.users, f.profiles, f.roles, f.jwt)
	f.property = NewPropertyService(f.props, f.profiles, geocoder)
	return f
}

// dealer registers a dealer and returns its actor and profile.
func (f *fixture) dealer(t *testing.T, email string) (Actor, *models.Profile) {
	t.Helper()
	ctx := context.Background()
	resp, err := f.auth.Register(ctx, registerReq(email))
	require.NoError(t, err)
	prof, err := f.profiles.GetByUserID(ctx, resp.User.UserID)
	require.NoError(t, err)
	return Actor{UserID: resp.User.UserID, Roles: models.NewRoleSet(models.RoleDealer)}, prof
}

func (f *fixture) superadmin() Actor {
	id := uuid.New()
	_ = f.roles.Assign(context.Background(), id, models.RoleSuperadmin)
	return Actor{UserID: id, Roles: models.NewRoleSet(models.RoleSuperadmin)}
}
