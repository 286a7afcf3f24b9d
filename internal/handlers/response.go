package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-player-stats/internal/logger"
)

// Response messages. Handled outcomes are JSON strings sent with 200 OK.
const (
	msgDataMustBeJSON     = "Error: Data must be json"
	msgInvalidJSON        = "Error: Invalid json body"
	msgCredentialsMissing = "Error: username and password are required"
	msgUsernameTaken      = "Error: The username is already registered."
	msgUserNotVerified    = "User NOT verified"
	msgUserDeleted        = "The user has been deleted"
	msgUserNotFound       = "Error: The user does not exist."
	msgUserIDMissing      = "Error: user_id is required"
	msgStatsUpdated       = "Stats have been updated"
	msgStatsDeleted       = "The stats have been deleted"
	msgStatsNotFound      = "Error: The stats do not exist."
	msgInternalError      = "Internal server error"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeJSON(w, http.StatusInternalServerError, msgInternalError)
}

// isJSON reports whether the request declares a JSON body.
// Parameters such as charset are allowed.
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
