package dbpkg

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// ConstraintForeignKey is reported for sqlite foreign key violations, which carry no constraint name.
const ConstraintForeignKey = "foreign_key"

// Constraint returns the name of the constraint violated by err, or "" if err is not a violation.
//
// Postgres reports the name directly. Sqlite named CHECK constraints are reported by name
// and UNIQUE violations are translated to the postgres <table>_<column>_key form.
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return ""
	}

	msg := liteErr.Error()

	if _, rest, ok := strings.Cut(msg, "CHECK constraint failed: "); ok {
		return firstField(rest)
	}

	if _, rest, ok := strings.Cut(msg, "UNIQUE constraint failed: "); ok {
		return strings.ReplaceAll(firstField(rest), ".", "_") + "_key"
	}

	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return ConstraintForeignKey
	}

	return ""
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return strings.TrimRight(fields[0], ",")
}
