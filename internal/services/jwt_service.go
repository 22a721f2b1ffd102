package services

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/middleware"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	GenerateAccessToken(userID uuid.UUID, roles models.RoleSet) (token string, expiresAt time.Time, err error)

	// Revoke blacklists a token id until it would have expired anyway.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// PruneRevoked drops blacklist entries whose tokens have expired and
	// reports how many were removed.
	PruneRevoked(ctx context.Context) (int64, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	privateKey  *rsa.PrivateKey
	tokenExpiry time.Duration
	revoked     repositories.RevokedTokenRepository
	now         func() time.Time
}

func NewJWTService(
	privateKey *rsa.PrivateKey,
	tokenExpiry time.Duration,
	revoked repositories.RevokedTokenRepository,
) JWTService {
	return &jwtService{
		privateKey:  privateKey,
		tokenExpiry: tokenExpiry,
		revoked:     revoked,
		now:         time.Now,
	}
}

func (j *jwtService) GenerateAccessToken(userID uuid.UUID, roles models.RoleSet) (string, time.Time, error) {
	now := j.now()
	exp := now.Add(j.tokenExpiry)
	claims := jwt.MapClaims{
		"iss":   middleware.TokenIssuer,
		"sub":   userID.String(),
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
		"jti":   uuid.NewString(),
		"roles": roles.Strings(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(j.privateKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

func (j *jwtService) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	return j.revoked.Revoke(ctx, tokenID, expiresAt)
}

func (j *jwtService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return j.revoked.IsRevoked(ctx, tokenID)
}

func (j *jwtService) PruneRevoked(ctx context.Context) (int64, error) {
	n, err := j.revoked.DeleteExpired(ctx, j.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		utils.Logger.Debugf("Pruned %d expired revoked tokens", n)
	}
	return n, nil
}
