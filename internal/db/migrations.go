package db

import "database/sql"

// Migrate creates the schema if it does not exist yet. DDL is the only
// driver-specific SQL in the repo; queries elsewhere use $N placeholders
// and RETURNING, which both drivers accept.
func Migrate(db *sql.DB, driver string) error {
	stmts := sqliteSchema
	if driver == "postgres" {
		stmts = postgresSchema
	}

	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'Todo',
		priority TEXT NOT NULL DEFAULT 'Med',
		project_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (project_id) REFERENCES projects(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project
		ON tasks(project_id, status)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'Todo',
		priority TEXT NOT NULL DEFAULT 'Med',
		project_id INTEGER NOT NULL REFERENCES projects(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project
		ON tasks(project_id, status)`,
}
