package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/AliHaider728/royal-palm-map-clone/internal/middleware"
	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// actorFromRequest builds the service-layer caller from the auth context.
func actorFromRequest(r *http.Request) (services.Actor, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return services.Actor{}, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "No userID in context",
		}
	}
	return services.Actor{UserID: userID, Roles: middleware.RolesFromContext(r.Context())}, nil
}

// optionalActor is nil for anonymous requests.
func optionalActor(r *http.Request) *services.Actor {
	a, err := actorFromRequest(r)
	if err != nil {
		return nil
	}
	return &a
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid id format",
			Err:        err,
		}
	}
	return id, nil
}
