package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-player-stats/internal/logger"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
)

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=services

// ErrStatsNotFound is returned when no stats row has the requested id.
var ErrStatsNotFound = errors.New("stats do not exist")

// StatsWriter defines write operations for stats.
type StatsWriter interface {
	Save(ctx context.Context, wins, losses int, userID int64) (*models.StatsDB, error)
	Update(ctx context.Context, id int64, patch models.StatsPatch) (*models.StatsDB, error)
	DeleteByID(ctx context.Context, id int64) (*models.StatsDB, error)
}

// StatsService handles win/loss records.
type StatsService struct {
	reader      StatsReader
	writer      StatsWriter
	cache       UserCache
	kafkaWriter KafkaWriter
}

// NewStatsService creates a new StatsService. cache and kafkaWriter may be nil.
func NewStatsService(reader StatsReader, writer StatsWriter, cache UserCache, kafkaWriter KafkaWriter) *StatsService {
	return &StatsService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a stats row for userID. A user that does not exist yields ErrUserNotFound.
func (s *StatsService) Create(ctx context.Context, wins, losses int, userID int64) (*models.StatsResponse, error) {
	stats, err := s.writer.Save(ctx, wins, losses, userID)
	if errors.Is(err, models.ErrForeignKeyViolation) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to save stats", "userID", userID, "error", err)
		return nil, err
	}

	invalidate(ctx, s.cache, stats.UserID)
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EntityStats, models.OperationCreate, stats.StatsID, stats.UserID))

	resp := models.NewStatsResponse(*stats)
	return &resp, nil
}

// Update overwrites only the fields present in patch.
// An empty patch on an existing row changes nothing and publishes no event.
func (s *StatsService) Update(ctx context.Context, id int64, patch models.StatsPatch) error {
	current, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get stats", "id", id, "error", err)
		return err
	}
	if len(current) == 0 {
		return ErrStatsNotFound
	}
	if patch.IsEmpty() {
		return nil
	}

	updated, err := s.writer.Update(ctx, id, patch)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return ErrStatsNotFound
	case errors.Is(err, models.ErrForeignKeyViolation):
		return ErrUserNotFound
	case err != nil:
		logger.Log.Errorw("failed to update stats", "id", id, "error", err)
		return err
	}

	invalidate(ctx, s.cache, current[0].UserID, updated.UserID)
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EntityStats, models.OperationUpdate, updated.StatsID, updated.UserID))
	return nil
}

// Delete removes the stats row.
func (s *StatsService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.writer.DeleteByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return ErrStatsNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete stats", "id", id, "error", err)
		return err
	}

	invalidate(ctx, s.cache, deleted.UserID)
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EntityStats, models.OperationDelete, deleted.StatsID, deleted.UserID))
	return nil
}

// Get returns the matching stats as a collection, empty when none match.
func (s *StatsService) Get(ctx context.Context, id int64) ([]models.StatsResponse, error) {
	stats, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get stats", "id", id, "error", err)
		return nil, err
	}
	return models.NewStatsResponses(stats), nil
}
