package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password
		FROM users
		WHERE username = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, username)
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by id.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, password
		FROM users
		ORDER BY id
	`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)

	logQuery(query, nil, len(users), err)

	return users, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns the stored row.
// A taken username yields models.ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, passwordHash)

	logQuery(query, []any{username}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// DeleteByID removes the user and every stats row it owns in one transaction.
// The request transaction is used when bound to ctx; otherwise a new one is
// opened. Returns models.ErrNotFound when no user has the id.
func (r *UserWriteRepository) DeleteByID(ctx context.Context, id int64) error {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return deleteUserCascade(ctx, tx, id)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := deleteUserCascade(ctx, tx, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func deleteUserCascade(ctx context.Context, ex sqlx.ExecerContext, id int64) error {
	const deleteStats = `DELETE FROM stats WHERE user_id = $1`
	const deleteUser = `DELETE FROM users WHERE id = $1`

	res, err := ex.ExecContext(ctx, deleteStats, id)
	logQuery(deleteStats, []any{id}, rowsAffected(res), err)
	if err != nil {
		return err
	}

	res, err = ex.ExecContext(ctx, deleteUser, id)
	n := rowsAffected(res)
	logQuery(deleteUser, []any{id}, n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
