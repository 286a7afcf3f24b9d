package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-player-stats/internal/services"
)

//go:generate mockgen -source=stats_delete.go -destination=stats_delete_mock.go -package=handlers

// StatsDeleter defines the interface that the service must implement.
type StatsDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteStatsHandler returns an HTTP handler deleting a stats record.
// @Summary Delete stats by id
// @Tags stats
// @Produce json
// @Param id path int true "Stats ID"
// @Success 200 {string} string "The stats have been deleted"
// @Failure 500 {string} string "Internal server error"
// @Router /stats/delete/{id} [delete]
func NewDeleteStatsHandler(svc StatsDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusOK, msgStatsNotFound)
			return
		}

		err := svc.Delete(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrStatsNotFound):
			writeJSON(w, http.StatusOK, msgStatsNotFound)
		case err != nil:
			writeInternalError(w, err)
		default:
			writeJSON(w, http.StatusOK, msgStatsDeleted)
		}
	}
}
