package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/sbilibin2017/gw-player-stats/internal/services"
)

//go:generate mockgen -source=user_add.go -destination=user_add_mock.go -package=handlers

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username, password string) (*models.UserResponse, error)
}

// CredentialsRequest represents the JSON body for user registration and verification
// swagger:model CredentialsRequest
type CredentialsRequest struct {
	// Username
	// required: true
	// default: alice
	Username *string `json:"username"`

	// Password
	// required: true
	// default: pw1
	Password *string `json:"password"`
}

func (req CredentialsRequest) complete() bool {
	return req.Username != nil && req.Password != nil
}

// NewAddUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user with a unique username. The password is stored as a bcrypt digest.
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.CredentialsRequest true "Credentials"
// @Success 200 {object} models.UserResponse "Created user, or an error message string"
// @Failure 500 {string} string "Internal server error"
// @Router /user/add [post]
func NewAddUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r) {
			writeJSON(w, http.StatusOK, msgDataMustBeJSON)
			return
		}

		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusOK, msgInvalidJSON)
			return
		}
		if !req.complete() {
			writeJSON(w, http.StatusOK, msgCredentialsMissing)
			return
		}

		user, err := svc.Create(r.Context(), *req.Username, *req.Password)
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeJSON(w, http.StatusOK, msgUsernameTaken)
		case err != nil:
			writeInternalError(w, err)
		default:
			writeJSON(w, http.StatusOK, user)
		}
	}
}
