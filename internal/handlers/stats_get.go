package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/models"
)

//go:generate mockgen -source=stats_get.go -destination=stats_get_mock.go -package=handlers

// StatsGetter defines the interface that the service must implement.
type StatsGetter interface {
	Get(ctx context.Context, id int64) ([]models.StatsResponse, error)
}

// NewGetStatsHandler returns an HTTP handler fetching stats by id.
// The answer is always an array.
// @Summary Get stats by id
// @Tags stats
// @Produce json
// @Param id path int true "Stats ID"
// @Success 200 {array} models.StatsResponse
// @Failure 500 {string} string "Internal server error"
// @Router /stats/get/{id} [get]
func NewGetStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusOK, []models.StatsResponse{})
			return
		}

		stats, err := svc.Get(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
