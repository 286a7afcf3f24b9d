package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/sbilibin2017/gw-player-stats/internal/services"
)

//go:generate mockgen -source=stats_add.go -destination=stats_add_mock.go -package=handlers

// StatsCreator defines the interface that the service must implement.
type StatsCreator interface {
	Create(ctx context.Context, wins, losses int, userID int64) (*models.StatsResponse, error)
}

// StatsRequest represents the JSON body for creating or updating stats.
// Absent fields are nil.
// swagger:model StatsRequest
type StatsRequest struct {
	// Games won
	// default: 3
	Wins *int `json:"wins"`

	// Games lost
	// default: 1
	Losses *int `json:"losses"`

	// Owning user ID
	// default: 1
	UserID *int64 `json:"user_id"`
}

// NewAddStatsHandler returns an HTTP handler creating a stats record.
// @Summary Add stats
// @Description Creates a win/loss record. Absent wins and losses default to 0.
// @Tags stats
// @Accept json
// @Produce json
// @Param request body handlers.StatsRequest true "Stats"
// @Success 200 {object} models.StatsResponse "Created stats, or an error message string"
// @Failure 500 {string} string "Internal server error"
// @Router /stats/add [post]
func NewAddStatsHandler(svc StatsCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r) {
			writeJSON(w, http.StatusOK, msgDataMustBeJSON)
			return
		}

		var req StatsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusOK, msgInvalidJSON)
			return
		}
		if req.UserID == nil {
			writeJSON(w, http.StatusOK, msgUserIDMissing)
			return
		}

		var wins, losses int
		if req.Wins != nil {
			wins = *req.Wins
		}
		if req.Losses != nil {
			losses = *req.Losses
		}

		stats, err := svc.Create(r.Context(), wins, losses, *req.UserID)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeJSON(w, http.StatusOK, msgUserNotFound)
		case err != nil:
			writeInternalError(w, err)
		default:
			writeJSON(w, http.StatusOK, stats)
		}
	}
}
