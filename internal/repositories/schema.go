package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema creates the users and stats tables. The foreign key carries no
// ON DELETE clause: owned stats are removed by UserWriteRepository.DeleteByID.
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stats (
		stats_id BIGSERIAL PRIMARY KEY,
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0,
		user_id BIGINT NOT NULL REFERENCES users (id)
	);

	CREATE INDEX IF NOT EXISTS stats_user_id_idx ON stats (user_id);
`

// EnsureSchema creates missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	logQuery(Schema, nil, nil, err)
	return err
}
