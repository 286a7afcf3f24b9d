package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/sbilibin2017/gw-player-stats/internal/services"
)

//go:generate mockgen -source=stats_update.go -destination=stats_update_mock.go -package=handlers

// StatsUpdater defines the interface that the service must implement.
type StatsUpdater interface {
	Update(ctx context.Context, id int64, patch models.StatsPatch) error
}

// NewUpdateStatsHandler returns an HTTP handler for partial stats updates.
// Only fields present in the body are changed.
// @Summary Update stats by id
// @Tags stats
// @Accept json
// @Produce json
// @Param id path int true "Stats ID"
// @Param request body handlers.StatsRequest true "Fields to change"
// @Success 200 {string} string "Stats have been updated"
// @Failure 500 {string} string "Internal server error"
// @Router /stats/update/{id} [put]
// @Router /stats/update/{id} [patch]
func NewUpdateStatsHandler(svc StatsUpdater) http.HandlerFunc {
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

		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusOK, msgStatsNotFound)
			return
		}

		patch := models.StatsPatch{
			Wins:   req.Wins,
			Losses: req.Losses,
			UserID: req.UserID,
		}

		err := svc.Update(r.Context(), id, patch)
		switch {
		case errors.Is(err, services.ErrStatsNotFound):
			writeJSON(w, http.StatusOK, msgStatsNotFound)
		case errors.Is(err, services.ErrUserNotFound):
			writeJSON(w, http.StatusOK, msgUserNotFound)
		case err != nil:
			writeInternalError(w, err)
		default:
			writeJSON(w, http.StatusOK, msgStatsUpdated)
		}
	}
}
