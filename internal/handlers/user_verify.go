package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/sbilibin2017/gw-player-stats/internal/services"
)

//go:generate mockgen -source=user_verify.go -destination=user_verify_mock.go -package=handlers

// UserVerifier defines the interface that the verification service must implement.
type UserVerifier interface {
	Verify(ctx context.Context, username, password string) (*models.UserResponse, error)
}

// NewVerifyUserHandler returns an HTTP handler for credential verification.
// Unknown usernames, wrong passwords and incomplete bodies get the same answer.
// @Summary Verify credentials
// @Description Returns the user when the password matches, otherwise "User NOT verified"
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.CredentialsRequest true "Credentials"
// @Success 200 {object} models.UserResponse "Verified user, or an error message string"
// @Failure 500 {string} string "Internal server error"
// @Router /user/verify [post]
func NewVerifyUserHandler(svc UserVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r) {
			writeJSON(w, http.StatusOK, msgDataMustBeJSON)
			return
		}

		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.complete() {
			writeJSON(w, http.StatusOK, msgUserNotVerified)
			return
		}

		user, err := svc.Verify(r.Context(), *req.Username, *req.Password)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeJSON(w, http.StatusOK, msgUserNotVerified)
		case err != nil:
			writeInternalError(w, err)
		default:
			writeJSON(w, http.StatusOK, user)
		}
	}
}
