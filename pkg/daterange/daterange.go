// Package daterange parses report windows. Every window is half-open:
// Start is included and End is excluded.
package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

const dateLayout = "2006-01-02"

type Range struct {
	Start time.Time
	End   time.Time
}

// Parse accepts RFC 3339 timestamps or plain dates (UTC midnight).
// Missing or malformed bounds and start after end yield domain.ErrInvalidRange.
func Parse(start, end string) (Range, error) {
	s, err := parseBound(start)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start: %v", domain.ErrInvalidRange, err)
	}
	e, err := parseBound(end)
	if err != nil {
		return Range{}, fmt.Errorf("%w: end: %v", domain.ErrInvalidRange, err)
	}
	r := Range{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: both bounds are required", domain.ErrInvalidRange)
	}
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start %s is after end %s", domain.ErrInvalidRange,
			r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
	}
	return nil
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Key is a stable textual form used for cache keys.
func (r Range) Key() string {
	return r.Start.UTC().Format(time.RFC3339Nano) + "_" + r.End.UTC().Format(time.RFC3339Nano)
}

func parseBound(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("value is required")
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date or timestamp", v)
	}
	return t.UTC(), nil
}
