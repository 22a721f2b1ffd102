package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AliHaider728/royal-palm-map-clone/internal/controllers"
	"github.com/AliHaider728/royal-palm-map-clone/internal/middleware"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/routes"
)

type handlers struct {
	health   *controllers.HealthController
	maps     *controllers.MapController
	auth     *controllers.AuthController
	property *controllers.PropertyController
	dealer   *controllers.DealerController
	inquiry  *controllers.InquiryController
	packages *controllers.PackageController
	admin    *controllers.AdminController
}

type mw = func(http.Handler) http.Handler

// newRouter registers every endpoint. Routes sharing a path but differing
// in auth are wrapped per handler rather than split into subrouters.
func newRouter(h handlers, requireAuth, optionalAuth mw) *mux.Router {
	router := mux.NewRouter()

	public := func(f http.HandlerFunc) http.Handler { return f }
	optional := func(f http.HandlerFunc) http.Handler { return optionalAuth(f) }
	secured := func(f http.HandlerFunc) http.Handler { return requireAuth(f) }
	dealer := func(f http.HandlerFunc) http.Handler {
		return requireAuth(middleware.RequireRole(models.RoleDealer)(f))
	}
	admin := func(f http.HandlerFunc) http.Handler {
		return requireAuth(middleware.RequireRole(models.RoleSuperadmin)(f))
	}

	// Public routes
	router.Handle(routes.Health, public(h.health.HealthCheckHandler)).Methods(http.MethodGet)
	router.Handle(routes.Map, public(h.maps.GetMapHandler)).Methods(http.MethodGet)
	router.Handle(routes.MapSidebar, public(h.maps.GetSidebarHandler)).Methods(http.MethodGet)
	router.Handle(routes.MapSelect, public(h.maps.SelectHandler)).Methods(http.MethodPost)
	router.Handle(routes.AuthRegister, public(h.auth.RegisterHandler)).Methods(http.MethodPost)
	router.Handle(routes.AuthLogin, public(h.auth.LoginHandler)).Methods(http.MethodPost)
	router.Handle(routes.Properties, public(h.property.ListHandler)).Methods(http.MethodGet)
	router.Handle(routes.Property, optional(h.property.GetHandler)).Methods(http.MethodGet)
	router.Handle(routes.PropertyViews, public(h.property.LogViewHandler)).Methods(http.MethodPost)
	router.Handle(routes.Inquiries, public(h.inquiry.CreateHandler)).Methods(http.MethodPost)
	router.Handle(routes.Packages, public(h.packages.ListHandler)).Methods(http.MethodGet)

	// Any signed-in user
	router.Handle(routes.AuthLogout, secured(h.auth.LogoutHandler)).Methods(http.MethodPost)
	router.Handle(routes.AuthMe, secured(h.auth.MeHandler)).Methods(http.MethodGet)
	router.Handle(routes.Property, secured(h.property.UpdateHandler)).Methods(http.MethodPatch)
	router.Handle(routes.Property, secured(h.property.DeleteHandler)).Methods(http.MethodDelete)
	router.Handle(routes.PropertyImages, secured(h.property.ImageUploadHandler)).Methods(http.MethodPost)

	// Dealers
	router.Handle(routes.Properties, dealer(h.property.CreateHandler)).Methods(http.MethodPost)
	router.Handle(routes.DealerProperties, dealer(h.dealer.ListPropertiesHandler)).Methods(http.MethodGet)
	router.Handle(routes.DealerInquiries, dealer(h.dealer.ListInquiriesHandler)).Methods(http.MethodGet)
	router.Handle(routes.DealerStats, dealer(h.dealer.StatsHandler)).Methods(http.MethodGet)

	// Superadmin
	router.Handle(routes.AdminDealers, admin(h.admin.ListDealersHandler)).Methods(http.MethodGet)
	router.Handle(routes.AdminDealerStatus, admin(h.admin.SetDealerStatusHandler)).Methods(http.MethodPatch)
	router.Handle(routes.AdminProperties, admin(h.admin.ListPropertiesHandler)).Methods(http.MethodGet)
	router.Handle(routes.AdminStats, admin(h.admin.StatsHandler)).Methods(http.MethodGet)

	return router
}
