package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

// TokenIssuer identifies the service that issues access tokens.
const TokenIssuer = "RoyalPalmCity"

// Claims is the validated content of an access token.
type Claims struct {
	Subject   string
	TokenID   string
	ExpiresAt time.Time
	Roles     models.RoleSet
}

// RevocationChecker reports whether a token id has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

var (
	ErrTokenRevoked = errors.New("token revoked")
)

// ValidateToken checks the signature and the standard claims, then
// decodes the role list. Any deviation returns a descriptive error.
func ValidateToken(ctx context.Context, tokenString string, publicKey *rsa.PublicKey, revoked RevocationChecker) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("missing expiration claim")
	}
	expiresAt := time.Unix(int64(exp), 0)
	if expiresAt.Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}

	iss, ok := claims["iss"].(string)
	if !ok {
		return nil, errors.New("missing issuer claim")
	}
	if iss != TokenIssuer {
		return nil, errors.New("invalid token issuer")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("missing subject")
	}

	jti, _ := claims["jti"].(string)
	if jti != "" && revoked != nil {
		isRevoked, err := revoked.IsRevoked(ctx, jti)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if isRevoked {
			return nil, ErrTokenRevoked
		}
	}

	var names []string
	if raw, ok := claims["roles"].([]any); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				names = append(names, s)
			}
		}
	}
	roles, err := models.ParseRoleSet(names)
	if err != nil {
		return nil, err
	}

	return &Claims{Subject: sub, TokenID: jti, ExpiresAt: expiresAt, Roles: roles}, nil
}
