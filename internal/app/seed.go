package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// Repos bundles the repositories shared by seeding and the API.
type Repos struct {
	Users      repositories.UserRepository
	Profiles   repositories.ProfileRepository
	Roles      repositories.RoleRepository
	Properties repositories.PropertyRepository
	Packages   repositories.PackageRepository

	RevokedTokens repositories.RevokedTokenRepository
}

// NewRepos builds every repository over one connection pool.
func NewRepos(db repositories.DB) Repos {
	return Repos{
		Users:      repositories.NewUserRepository(db),
		Profiles:   repositories.NewProfileRepository(db),
		Roles:      repositories.NewRoleRepository(db),
		Properties: repositories.NewPropertyRepository(db),
		Packages:   repositories.NewPackageRepository(db),

		RevokedTokens: repositories.NewRevokedTokenRepository(db),
	}
}

type seedAccount struct {
	email    string
	password string
	role     models.Role
	company  string
	fullName string
	phone    string
	bio      string
}

var seedAccounts = []seedAccount{
	{"superadmin@emap.pk", "superadmin123", models.RoleSuperadmin, "MapEstate Admin", "Super Admin", "+92-300-0000000", ""},
	{"dealer1@emap.pk", "dealer123", models.RoleDealer, "Ahmad Properties", "Ahmad Khan", "+92-321-1234567",
		"Leading real estate dealer in Gujranwala with 10+ years experience."},
	{"dealer2@emap.pk", "dealer123", models.RoleDealer, "Royal Estate Agency", "Bilal Sheikh", "+92-333-9876543",
		"Premium properties in Royal Palm City Gujranwala."},
}

var seedPackages = []models.SubscriptionPackage{
	{Name: "Free", Price: 0, DurationDays: 30, MaxListings: 5, DisplayOrder: 1,
		Features: []string{"5 Listings", "Basic Analytics", "Email Support"}},
	{Name: "Premium", Price: 4999, DurationDays: 30, MaxListings: 25, DisplayOrder: 2,
		Features: []string{"25 Listings", "Advanced Analytics", "Featured Listings", "Priority Support", "WhatsApp Integration"}},
	{Name: "Enterprise", Price: 14999, DurationDays: 30, MaxListings: 100, DisplayOrder: 3,
		Features: []string{"100 Listings", "Full Analytics", "All Featured", "Dedicated Support", "Custom Branding", "API Access"}},
}

type seedListing struct {
	title, description, propertyType string
	listingType                      models.ListingType
	price                            float64
	area, location                   string
	bedrooms, bathrooms              int
	lat, lng                         float64
	featured                         bool
}

// seedListings is keyed by dealer email.
var seedListings = map[string][]seedListing{
	"dealer1@emap.pk": {
		{"5 Marla House in Block A", "Beautiful 5 marla house with modern design, 3 bedrooms, attached bathrooms.", "house",
			models.ListingBuy, 8500000, "5 Marla", "Block A, Royal Palm City", 3, 3, 32.1940, 74.1870, true},
		{"10 Marla Plot in Block B", "Prime location 10 marla residential plot. Ready for construction.", "plot",
			models.ListingBuy, 4500000, "10 Marla", "Block B, Royal Palm City", 0, 0, 32.1935, 74.1885, false},
		{"3 Bed Apartment for Rent", "Fully furnished 3 bedroom apartment near main market.", "apartment",
			models.ListingRent, 45000, "1500 sqft", "Main Boulevard, Gujranwala", 3, 2, 32.1877, 74.1861, false},
	},
	"dealer2@emap.pk": {
		{"1 Kanal Luxury Villa", "Stunning 1 kanal villa with swimming pool, garden, and smart home features.", "house",
			models.ListingBuy, 35000000, "1 Kanal", "Block C, Royal Palm City", 5, 6, 32.1950, 74.1900, true},
		{"Commercial Shop for Rent", "Ground floor commercial shop in busy market area. Great footfall.", "commercial",
			models.ListingRent, 80000, "400 sqft", "Commercial Block, Royal Palm City", 0, 1, 32.1925, 74.1895, false},
	},
}

// SeedAllTestData creates the superadmin, two demo dealers, the
// subscription packages and a handful of listings. Accounts that already
// exist are left alone, and listings are only added for newly created
// dealers, so running it twice is harmless.
func SeedAllTestData(ctx context.Context, r Repos) error {
	for _, acct := range seedAccounts {
		profile, created, err := seedAccountIfNeeded(ctx, r, acct)
		if err != nil {
			return fmt.Errorf("seed account %s: %w", acct.email, err)
		}
		if !created {
			utils.Logger.Infof("Seed account %s already present; skipping.", acct.email)
			continue
		}
		for _, l := range seedListings[acct.email] {
			if err := r.Properties.Create(ctx, l.toProperty(profile.ID)); err != nil {
				return fmt.Errorf("seed listing %q: %w", l.title, err)
			}
		}
	}

	for i := range seedPackages {
		pkg := seedPackages[i]
		pkg.ID = uuid.New()
		pkg.IsActive = true
		if err := r.Packages.Create(ctx, &pkg); err != nil {
			return fmt.Errorf("seed package %s: %w", pkg.Name, err)
		}
	}

	utils.Logger.Info("plotmap-service: Seeding completed successfully.")
	return nil
}

func seedAccountIfNeeded(ctx context.Context, r Repos, acct seedAccount) (*models.Profile, bool, error) {
	existing, err := r.Users.GetByEmail(ctx, acct.email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return nil, false, nil
	}

	hash, err := utils.HashPassword(acct.password)
	if err != nil {
		return nil, false, err
	}
	user := &models.User{ID: uuid.New(), Email: acct.email, PasswordHash: hash}
	if err := r.Users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	profile := &models.Profile{
		ID:          uuid.New(),
		UserID:      user.ID,
		Email:       acct.email,
		CompanyName: utils.StrPtr(acct.company),
		FullName:    utils.StrPtr(acct.fullName),
		Phone:       utils.StrPtr(acct.phone),
		Bio:         utils.NilIfBlank(&acct.bio),
		IsActive:    true,
	}
	if err := r.Profiles.Create(ctx, profile); err != nil {
		return nil, false, err
	}
	if err := r.Roles.Assign(ctx, user.ID, acct.role); err != nil {
		return nil, false, err
	}
	return profile, true, nil
}

func (l seedListing) toProperty(dealerID uuid.UUID) *models.Property {
	return &models.Property{
		ID:           uuid.New(),
		DealerID:     dealerID,
		Title:        l.title,
		Description:  utils.StrPtr(l.description),
		Price:        l.price,
		ListingType:  l.listingType,
		PropertyType: l.propertyType,
		Location:     utils.StrPtr(l.location),
		City:         utils.StrPtr("Gujranwala"),
		Area:         utils.StrPtr(l.area),
		Latitude:     utils.Ptr(l.lat),
		Longitude:    utils.Ptr(l.lng),
		Bedrooms:     l.bedrooms,
		Bathrooms:    l.bathrooms,
		Images:       []string{},
		IsActive:     true,
		IsFeatured:   l.featured,
	}
}
