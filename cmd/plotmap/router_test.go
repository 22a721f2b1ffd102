package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AliHaider728/royal-palm-map-clone/internal/controllers"
	"github.com/AliHaider728/royal-palm-map-clone/internal/middleware"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// headerAuth trusts an X-Roles header; an absent header is a 401.
func headerAuth(optional bool) mw {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h, ok := r.Header["X-Roles"]
			if !ok {
				if optional {
					next.ServeHTTP(w, r)
					return
				}
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "missing token", nil)
				return
			}
			var roles models.RoleSet
			for _, n := range strings.Split(strings.Join(h, ","), ",") {
				if role, err := models.ParseRole(strings.TrimSpace(n)); err == nil {
					roles = roles.With(role)
				}
			}
			ctx := middleware.WithClaims(r.Context(), &middleware.Claims{
				Subject:   uuid.NewString(),
				TokenID:   "t",
				ExpiresAt: time.Now().Add(time.Hour),
				Roles:     roles,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testRouter() http.Handler {
	return newRouter(handlers{
		health:   controllers.NewHealthController(okPinger{}),
		property: controllers.NewPropertyController(nil, nil, nil),
		admin:    controllers.NewAdminController(nil),
		dealer:   controllers.NewDealerController(nil, nil, nil),
	}, headerAuth(false), headerAuth(true))
}

func call(h http.Handler, method, path, roles string) int {
	req := httptest.NewRequest(method, path, nil)
	if roles != "-" {
		req.Header.Set("X-Roles", roles)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr.Code
}

func TestRouterHealthIsPublic(t *testing.T) {
	assert.Equal(t, http.StatusOK, call(testRouter(), http.MethodGet, "/health", "-"))
}

func TestRouterRoleGates(t *testing.T) {
	r := testRouter()
	bad := "/api/v1/admin/dealers/not-a-uuid/status"

	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPatch, bad, "-"))
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodPatch, bad, "dealer"))
	// reaches the handler, which rejects the id
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPatch, bad, "superadmin"))

	assert.Equal(t, http.StatusForbidden, call(r, http.MethodGet, "/api/v1/dealer/stats", "superadmin"))
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPost, "/api/v1/properties", "-"))
}

func TestRouterSamePathDifferentAuth(t *testing.T) {
	r := testRouter()

	// GET is public, PATCH and DELETE need a token
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodGet, "/api/v1/properties/x", "-"))
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodPatch, "/api/v1/properties/x", "-"))
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodDelete, "/api/v1/properties/x", "-"))
	assert.Equal(t, http.StatusMethodNotAllowed, call(r, http.MethodPut, "/api/v1/properties/x", "-"))
}
