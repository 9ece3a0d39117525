package dbpkg

import (
	"fmt"
	"strings"
	"time"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// TimeScanner stores a scanned column into t.
//
// Besides time.Time values it accepts the text forms sqlite returns when the
// declared column type is not known, e.g. for RETURNING clauses.
func TimeScanner(t *time.Time) *TimeDest {
	return &TimeDest{t: t}
}

// TimeDest implements sql.Scanner for TimeScanner.
type TimeDest struct {
	t *time.Time
}

// Scan implements sql.Scanner.
func (d *TimeDest) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d.t = v
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case int64:
		*d.t = time.Unix(v, 0).UTC()
		return nil
	case nil:
		*d.t = time.Time{}
		return nil
	}

	return fmt.Errorf("dbpkg: cannot scan %T into time.Time", src)
}

func (d *TimeDest) parse(s string) error {
	// time.Time.String appends the monotonic clock reading.
	if i := strings.Index(s, " m="); i >= 0 {
		s = s[:i]
	}

	s = strings.TrimSpace(s)

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d.t = t
			return nil
		}
	}

	return fmt.Errorf("dbpkg: cannot parse time %q", s)
}
