package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/services"
)

//go:generate mockgen -source=user_delete.go -destination=user_delete_mock.go -package=handlers

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler deleting a user and its stats.
// @Summary Delete user by id
// @Description Deletes the user and every stats record it owns
// @Tags user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {string} string "The user has been deleted"
// @Failure 500 {string} string "Internal server error"
// @Router /user/delete/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusOK, msgUserNotFound)
			return
		}

		err := svc.Delete(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeJSON(w, http.StatusOK, msgUserNotFound)
		case err != nil:
			writeInternalError(w, err)
		default:
			writeJSON(w, http.StatusOK, msgUserDeleted)
		}
	}
}
