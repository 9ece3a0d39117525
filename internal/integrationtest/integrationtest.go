// Package integrationtest provides db helpers used in repository and integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/go-petr/pet-atm/pkg/dbpkg"
	"github.com/google/uuid"

	// Drivers used by the helpers.
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// MemorySQLiteSource returns the DSN of a fresh private in-memory sqlite database.
func MemorySQLiteSource() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite&_pragma=foreign_keys(1)", uuid.NewString())
}

// SetupDB returns a migrated in-memory sqlite database that is closed after the test.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(dbpkg.DriverSQLite, MemorySQLiteSource())
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	if err := dbpkg.Migrate(context.Background(), db, dbpkg.DriverSQLite); err != nil {
		t.Fatalf("db migration failed. err: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SetupTX sets up a database transaction to be used in tests.
//
// Once the tests are done it will rollback the transaction.
func SetupTX(t *testing.T) *sql.Tx {
	t.Helper()

	db := SetupDB(t)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("db.Begin() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Fatalf("tx.Rollback() failed: %v", err)
		}
	})

	return tx
}

// SetupPostgres connects to the given postgres database, migrates it and truncates
// all ledger tables after the test.
func SetupPostgres(t *testing.T, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(dbpkg.DriverPostgres, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	if err := dbpkg.Migrate(context.Background(), db, dbpkg.DriverPostgres); err != nil {
		t.Fatalf("db migration failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// Flush flushes all ledger tables without droping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(`TRUNCATE TABLE transactions, device_state, accounts RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}
