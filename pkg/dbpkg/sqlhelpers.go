package dbpkg

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Setup sets up connection with database.
//
// A plain sqlite file path is turned into a DSN with the pragmas the ledger relies on.
func Setup(driver, source string) (*sql.DB, error) {
	if driver == DriverSQLite {
		dsn, err := sqliteDSN(source)
		if err != nil {
			return nil, err
		}
		source = dsn
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// One writer at a time keeps sqlite away from SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func sqliteDSN(source string) (string, error) {
	if strings.HasPrefix(source, "file:") {
		return source, nil
	}

	if err := os.MkdirAll(filepath.Dir(source), 0o755); err != nil {
		return "", fmt.Errorf("mkdir db dir: %w", err)
	}

	return fmt.Sprintf(
		"file:%s?_time_format=sqlite&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)",
		source,
	), nil
}
