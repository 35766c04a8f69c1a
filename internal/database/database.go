package database

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sqlx.DB, error) {
	return sqlx.Connect("sqlite", dataSourceName+"?_pragma=foreign_keys(1)&_time_format=sqlite")
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sqlx.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS todos (
		todo_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL REFERENCES users(id),
		description TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS events (
		event_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL REFERENCES users(id),
		event_name TEXT NOT NULL,
		-- Calendar date as a plain YYYY-MM-DD string, never a timestamp.
		event_date TEXT NOT NULL,
		event_time TEXT NOT NULL DEFAULT '',
		emoji TEXT NOT NULL DEFAULT '📌'
	);

	CREATE INDEX IF NOT EXISTS idx_todos_user ON todos(user_id);
	CREATE INDEX IF NOT EXISTS idx_events_user ON events(user_id);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
