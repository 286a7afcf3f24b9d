package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
)

// StatsReadRepository handles stats read operations
type StatsReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewStatsReadRepository(db *sqlx.DB, txGetter TxGetter) *StatsReadRepository {
	return &StatsReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the stats rows with the given id as a collection.
func (r *StatsReadRepository) GetByID(ctx context.Context, id int64) ([]models.StatsDB, error) {
	const query = `
		SELECT stats_id, wins, losses, user_id
		FROM stats
		WHERE stats_id = $1
	`

	var stats []models.StatsDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &stats, query, id)

	logQuery(query, []any{id}, stats, err)

	return stats, err
}

// ListByUserIDs returns the stats owned by any of the given users, ordered by stats_id.
func (r *StatsReadRepository) ListByUserIDs(ctx context.Context, userIDs []int64) ([]models.StatsDB, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT stats_id, wins, losses, user_id
		FROM stats
		WHERE user_id IN (?)
		ORDER BY stats_id
	`, userIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var stats []models.StatsDB
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &stats, query, args...)

	logQuery(query, args, len(stats), err)

	return stats, err
}

// StatsWriteRepository handles stats write operations
type StatsWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewStatsWriteRepository(db *sqlx.DB, txGetter TxGetter) *StatsWriteRepository {
	return &StatsWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a stats row. The owner is not checked beforehand; a dangling
// user_id yields models.ErrForeignKeyViolation.
func (r *StatsWriteRepository) Save(ctx context.Context, wins, losses int, userID int64) (*models.StatsDB, error) {
	const query = `
		INSERT INTO stats (wins, losses, user_id)
		VALUES ($1, $2, $3)
		RETURNING stats_id, wins, losses, user_id
	`
	args := []any{wins, losses, userID}

	var stats models.StatsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stats, query, args...)

	logQuery(query, args, stats, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &stats, nil
}

// Update overwrites only the fields set in patch and returns the updated row.
// Returns models.ErrNotFound when no row has the id.
func (r *StatsWriteRepository) Update(ctx context.Context, id int64, patch models.StatsPatch) (*models.StatsDB, error) {
	const query = `
		UPDATE stats
		SET wins = COALESCE($1, wins),
		    losses = COALESCE($2, losses),
		    user_id = COALESCE($3, user_id)
		WHERE stats_id = $4
		RETURNING stats_id, wins, losses, user_id
	`
	args := []any{patch.Wins, patch.Losses, patch.UserID, id}

	var stats models.StatsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stats, query, args...)

	logQuery(query, []any{id}, stats, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &stats, nil
}

// DeleteByID removes the row and returns it. Returns models.ErrNotFound when
// no row has the id.
func (r *StatsWriteRepository) DeleteByID(ctx context.Context, id int64) (*models.StatsDB, error) {
	const query = `
		DELETE FROM stats
		WHERE stats_id = $1
		RETURNING stats_id, wins, losses, user_id
	`

	var stats models.StatsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &stats, query, id)

	logQuery(query, []any{id}, stats, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &stats, nil
}
