package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/stretchr/testify/assert"
)

var statsColumns = []string{"stats_id", "wins", "losses", "user_id"}

func TestStatsReadRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("SELECT stats_id, wins, losses, user_id FROM stats WHERE stats_id = $1")

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(statsColumns).AddRow(1, 3, 1, 1))

		stats, err := NewStatsReadRepository(db, nil).GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, []models.StatsDB{{StatsID: 1, Wins: 3, Losses: 1, UserID: 1}}, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(statsColumns))

		stats, err := NewStatsReadRepository(db, nil).GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Empty(t, stats)
	})
}

func TestStatsReadRepository_ListByUserIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("no users skips the query", func(t *testing.T) {
		db, mock := newMockDB(t)

		stats, err := NewStatsReadRepository(db, nil).ListByUserIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Nil(t, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("several users", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM stats WHERE user_id IN (?, ?) ORDER BY stats_id")).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows(statsColumns).
				AddRow(1, 3, 1, 1).
				AddRow(2, 0, 4, 2))

		stats, err := NewStatsReadRepository(db, nil).ListByUserIDs(ctx, []int64{1, 2})
		assert.NoError(t, err)
		assert.Len(t, stats, 2)
		assert.Equal(t, int64(2), stats[1].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStatsWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("INSERT INTO stats (wins, losses, user_id) VALUES ($1, $2, $3)")

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(3, 1, int64(1)).
			WillReturnRows(sqlmock.NewRows(statsColumns).AddRow(1, 3, 1, 1))

		stats, err := NewStatsWriteRepository(db, nil).Save(ctx, 3, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, &models.StatsDB{StatsID: 1, Wins: 3, Losses: 1, UserID: 1}, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(3, 1, int64(42)).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "stats_user_id_fkey"})

		stats, err := NewStatsWriteRepository(db, nil).Save(ctx, 3, 1, 42)
		assert.ErrorIs(t, err, models.ErrForeignKeyViolation)
		assert.Nil(t, stats)
	})
}

func TestStatsWriteRepository_Update(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("UPDATE stats SET wins = COALESCE($1, wins)")

	t.Run("only wins", func(t *testing.T) {
		db, mock := newMockDB(t)
		wins := 7
		mock.ExpectQuery(query).
			WithArgs(7, nil, nil, int64(1)).
			WillReturnRows(sqlmock.NewRows(statsColumns).AddRow(1, 7, 2, 1))

		stats, err := NewStatsWriteRepository(db, nil).Update(ctx, 1, models.StatsPatch{Wins: &wins})
		assert.NoError(t, err)
		assert.Equal(t, &models.StatsDB{StatsID: 1, Wins: 7, Losses: 2, UserID: 1}, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		losses := 1
		mock.ExpectQuery(query).
			WithArgs(nil, 1, nil, int64(5)).
			WillReturnRows(sqlmock.NewRows(statsColumns))

		stats, err := NewStatsWriteRepository(db, nil).Update(ctx, 5, models.StatsPatch{Losses: &losses})
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, stats)
	})
}

func TestStatsWriteRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("DELETE FROM stats WHERE stats_id = $1 RETURNING stats_id, wins, losses, user_id")

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(statsColumns).AddRow(1, 3, 1, 4))

		stats, err := NewStatsWriteRepository(db, nil).DeleteByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), stats.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(statsColumns))

		stats, err := NewStatsWriteRepository(db, nil).DeleteByID(ctx, 1)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, stats)
	})
}
