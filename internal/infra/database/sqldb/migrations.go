package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	version int
	sql     string
}

var postgresMigrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS todo_status (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

INSERT INTO todo_status (id, name) VALUES
	(1, 'Pending'), (2, 'In Progress'), (3, 'Completed')
ON CONFLICT (id) DO NOTHING;

CREATE TABLE IF NOT EXISTS todos (
	id          UUID PRIMARY KEY,
	user_id     UUID NOT NULL,
	title       TEXT NOT NULL,
	description TEXT,
	notes       TEXT,
	status_id   INTEGER NOT NULL DEFAULT 1 REFERENCES todo_status (id),
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_todos_user_created ON todos (user_id, created_at);

CREATE TABLE IF NOT EXISTS subtasks (
	id         UUID PRIMARY KEY,
	todo_id    UUID NOT NULL REFERENCES todos (id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	weight     INTEGER NOT NULL DEFAULT 1 CHECK (weight BETWEEN 1 AND 5),
	completed  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_subtasks_todo ON subtasks (todo_id);

CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	username   TEXT,
	theme      TEXT NOT NULL DEFAULT 'system',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
}

var sqliteMigrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS todo_status (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);

INSERT OR IGNORE INTO todo_status (id, name) VALUES
	(1, 'Pending'), (2, 'In Progress'), (3, 'Completed');

CREATE TABLE IF NOT EXISTS todos (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT,
	notes       TEXT,
	status_id   INTEGER NOT NULL DEFAULT 1 REFERENCES todo_status (id),
	completed   BOOLEAN NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_todos_user_created ON todos (user_id, created_at);

CREATE TABLE IF NOT EXISTS subtasks (
	id         TEXT PRIMARY KEY,
	todo_id    TEXT NOT NULL REFERENCES todos (id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	weight     INTEGER NOT NULL DEFAULT 1 CHECK (weight BETWEEN 1 AND 5),
	completed  BOOLEAN NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_subtasks_todo ON subtasks (todo_id);

CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	username   TEXT,
	theme      TEXT NOT NULL DEFAULT 'system',
	updated_at TIMESTAMP NOT NULL
);`,
	},
}

// Migrate applies every migration newer than the recorded schema version.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	migrations := postgresMigrations
	if db.DriverName() == DriverSQLite {
		migrations = sqliteMigrations
	}

	if _, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)"); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var current int
	if err := db.GetContext(ctx, &current, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return err
		}
	}
	return nil
}

func apply(ctx context.Context, db *sqlx.DB, m migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration v%d: %w", m.version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.sql); err != nil {
		return fmt.Errorf("applying migration v%d: %w", m.version, err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO schema_version (version) VALUES (?)"), m.version); err != nil {
		return fmt.Errorf("recording migration v%d: %w", m.version, err)
	}
	return tx.Commit()
}
