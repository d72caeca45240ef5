package db

import (
	"testing"
)

func TestConnectSQLiteMemoryAndMigrate(t *testing.T) {
	database, err := Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer database.Close()

	if err := Migrate(database, "sqlite"); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// migrations are idempotent
	if err := Migrate(database, "sqlite"); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var id int
	err = database.QueryRow(
		`INSERT INTO projects (name) VALUES ($1) RETURNING id`, "inbox",
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert project: %v", err)
	}
	if id == 0 {
		t.Error("expected assigned project id")
	}

	// unique project names
	_, err = database.Exec(`INSERT INTO projects (name) VALUES ($1)`, "inbox")
	if err == nil {
		t.Error("expected unique violation for duplicate project name")
	}

	// tasks get enum defaults from the schema
	var status, priority string
	err = database.QueryRow(
		`INSERT INTO tasks (title, project_id) VALUES ($1, $2) RETURNING status, priority`,
		"first task", id,
	).Scan(&status, &priority)
	if err != nil {
		t.Fatalf("insert task: %v", err)
	}
	if status != "Todo" || priority != "Med" {
		t.Errorf("defaults = %s/%s, want Todo/Med", status, priority)
	}
}

func TestSQLiteForeignKeysEnforced(t *testing.T) {
	database, err := Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer database.Close()

	if err := Migrate(database, "sqlite"); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	_, err = database.Exec(
		`INSERT INTO tasks (title, project_id) VALUES ($1, $2)`, "orphan", 999,
	)
	if err == nil {
		t.Error("expected FK violation for task without project")
	}
}

func TestConnectUnknownDriver(t *testing.T) {
	if _, err := Connect("oracle", ""); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
