package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID = contextKey("userID")
	ContextKeyClaims = contextKey("claims")
)

// AuthMiddleware – for protected endpoints. If the bearer token is missing
// or invalid, returns 401.
func AuthMiddleware(pub *rsa.PublicKey, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			claims, vErr := ValidateToken(r.Context(), tokenStr, pub, revoked)
			if vErr != nil {
				respondInvalidToken(w, vErr)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// OptionalAuthMiddleware is identical to AuthMiddleware except that it lets
// the request through if *no* token is present.
func OptionalAuthMiddleware(pub *rsa.PublicKey, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, _ := extractAccessToken(r) // ignore error here
			if tokenStr == "" {
				next.ServeHTTP(w, r) // unauthenticated – allowed
				return
			}

			claims, vErr := ValidateToken(r.Context(), tokenStr, pub, revoked)
			if vErr != nil {
				respondInvalidToken(w, vErr)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// RequireRole must sit behind AuthMiddleware. It answers 403 unless the
// token carries role.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RolesFromContext(r.Context()).Has(role) {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeForbidden, "Requires "+role.String()+" role", nil,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func respondInvalidToken(w http.ResponseWriter, vErr error) {
	if errors.Is(vErr, jwt.ErrTokenExpired) {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
		)
		return
	}
	utils.RespondErrorWithCode(
		w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
	)
}

func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}

func withClaims(ctx context.Context, c *Claims) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUserID, c.Subject)
	return context.WithValue(ctx, ContextKeyClaims, c)
}

// ClaimsFromContext returns the validated claims, or nil for anonymous
// requests.
func ClaimsFromContext(ctx context.Context) *Claims {
	c, _ := ctx.Value(ContextKeyClaims).(*Claims)
	return c
}

// UserIDFromContext parses the subject of the validated token.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	s, ok := ctx.Value(ContextKeyUserID).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func RolesFromContext(ctx context.Context) models.RoleSet {
	if c := ClaimsFromContext(ctx); c != nil {
		return c.Roles
	}
	return 0
}

// WithClaims is used by tests and internal callers that already hold
// validated claims.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return withClaims(ctx, c)
}
