// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(context.Background(), db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	if err := Migrate(context.Background(), db, DialectSQLite); err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	if err = Migrate(context.Background(), db, "oracle"); err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}
}

func TestEmbeddedMigrations_BothDialects(t *testing.T) {
	for _, dir := range []string{DialectPostgres, DialectSQLite} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		if err != nil {
			t.Fatal(err)
		}
		if len(files) == 0 {
			t.Errorf("no migrations embedded for %s", dir)
		}
	}
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared&_foreign_keys=1")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = Migrate(context.Background(), db, DialectSQLite); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	for _, table := range []string{"users", "categories", "vault_items", "activity_logs", "user_settings"} {
		var name string
		row := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		if err = row.Scan(&name); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// idempotent
	if err = Migrate(context.Background(), db, DialectSQLite); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}
}
