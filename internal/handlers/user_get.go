package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/models"
)

//go:generate mockgen -source=user_get.go -destination=user_get_mock.go -package=handlers

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserResponse, error)
}

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.UserResponse, error)
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags user
// @Produce json
// @Success 200 {array} models.UserResponse
// @Failure 500 {string} string "Internal server error"
// @Router /user/get [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user.
// A missing user is answered with null.
// @Summary Get user by id
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse "User, or null"
// @Failure 500 {string} string "Internal server error"
// @Router /user/get/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
