package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

type revokedSet map[string]bool

func (r revokedSet) IsRevoked(_ context.Context, id string) (bool, error) { return r[id], nil }

type brokenRevocations struct{}

func (brokenRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	k, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return k
}

func sign(t *testing.T, k *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k)
	require.NoError(t, err)
	return s
}

func baseClaims(sub string, roles ...string) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":   TokenIssuer,
		"sub":   sub,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
		"jti":   "tok-1",
		"roles": roles,
	}
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_, _ = w.Write([]byte(id.String()))
}

func serve(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware(t *testing.T) {
	key := newKey(t)
	other := newKey(t)
	uid := uuid.New()
	h := AuthMiddleware(&key.PublicKey, revokedSet{"revoked": true})(http.HandlerFunc(echoUser))

	t.Run("valid", func(t *testing.T) {
		rr := serve(h, sign(t, key, baseClaims(uid.String(), "dealer")))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, uid.String(), rr.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		rr := serve(h, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		rr := serve(h, sign(t, other, baseClaims(uid.String())))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "unauthorized")
	})

	t.Run("expired", func(t *testing.T) {
		c := baseClaims(uid.String())
		c["exp"] = time.Now().Add(-time.Minute).Unix()
		rr := serve(h, sign(t, key, c))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "token_expired")
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := baseClaims(uid.String())
		c["iss"] = "someone-else"
		rr := serve(h, sign(t, key, c))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("revoked", func(t *testing.T) {
		c := baseClaims(uid.String())
		c["jti"] = "revoked"
		rr := serve(h, sign(t, key, c))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		rr := serve(h, sign(t, key, baseClaims(uid.String(), "wizard")))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	key := newKey(t)
	h := OptionalAuthMiddleware(&key.PublicKey, nil)(http.HandlerFunc(echoUser))

	assert.Equal(t, http.StatusNoContent, serve(h, "").Code)
	assert.Equal(t, http.StatusOK, serve(h, sign(t, key, baseClaims(uuid.NewString()))).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "garbage").Code)
}

func TestRequireRole(t *testing.T) {
	key := newKey(t)
	auth := AuthMiddleware(&key.PublicKey, nil)
	h := auth(RequireRole(models.RoleSuperadmin)(http.HandlerFunc(echoUser)))

	assert.Equal(t, http.StatusForbidden, serve(h, sign(t, key, baseClaims(uuid.NewString(), "dealer"))).Code)
	assert.Equal(t, http.StatusOK, serve(h, sign(t, key, baseClaims(uuid.NewString(), "dealer", "superadmin"))).Code)
}

func TestValidateTokenDecodesRoles(t *testing.T) {
	key := newKey(t)
	c, err := ValidateToken(context.Background(), sign(t, key, baseClaims("abc", "dealer", "superadmin")), &key.PublicKey, nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", c.Subject)
	assert.Equal(t, "tok-1", c.TokenID)
	assert.True(t, c.Roles.IsDealer())
	assert.True(t, c.Roles.IsSuperadmin())
}

func TestRevocationLookupFailureRejectsToken(t *testing.T) {
	key := newKey(t)
	token := sign(t, key, baseClaims(uuid.NewString(), "dealer"))

	_, err := ValidateToken(context.Background(), token, &key.PublicKey, brokenRevocations{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check revocation")

	h := AuthMiddleware(&key.PublicKey, brokenRevocations{})(http.HandlerFunc(echoUser))
	assert.Equal(t, http.StatusUnauthorized, serve(h, token).Code)
}
