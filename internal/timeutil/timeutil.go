package timeutil

import (
	"sync"
	"time"
)

// Reporting happens against a single business timezone so that the
// "previous day" window is stable regardless of where pods run.
var (
	mu  sync.RWMutex
	loc = time.UTC
)

// SetLocation configures the business timezone by IANA name.
// Unknown names keep the current location and return the error.
func SetLocation(name string) error {
	l, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	mu.Lock()
	loc = l
	mu.Unlock()
	return nil
}

// Location returns the configured business timezone
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return loc
}

// Now returns the current time in the business timezone
func Now() time.Time {
	return time.Now().In(Location())
}

// In converts any time to the business timezone
func In(t time.Time) time.Time {
	return t.In(Location())
}

// StartOfDay returns midnight of t's calendar day in the business timezone
func StartOfDay(t time.Time) time.Time {
	l := Location()
	d := t.In(l)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, l)
}

// ParseDate parses a YYYY-MM-DD string in the business timezone
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Location())
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
