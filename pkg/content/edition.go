package content

import (
	"time"

	"github.com/araddon/dateparse"
)

// Edition is a scheduled publish window. Content delivered through an
// edition carries its id and start/end timestamps.
type Edition struct {
	// ID of the edition.
	ID string `json:"id"`

	// Start of the publish window, ISO 8601.
	Start string `json:"start"`

	// End of the publish window, ISO 8601.
	End string `json:"end"`
}

// StartTime parses the edition start timestamp.
func (e *Edition) StartTime() (time.Time, error) {
	return dateparse.ParseAny(e.Start)
}

// EndTime parses the edition end timestamp.
func (e *Edition) EndTime() (time.Time, error) {
	return dateparse.ParseAny(e.End)
}

// ActiveAt reports whether the edition window covers the given instant.
// Unparseable timestamps count as unbounded on that side.
func (e *Edition) ActiveAt(t time.Time) bool {
	if start, err := e.StartTime(); err == nil && t.Before(start) {
		return false
	}
	if end, err := e.EndTime(); err == nil && t.After(end) {
		return false
	}
	return true
}

// Lifecycle carries the optional expiry business users can attach to a
// content item.
type Lifecycle struct {
	// ExpiryTime is the chosen expiry timestamp, ISO 8601.
	ExpiryTime string `json:"expiryTime"`
}

// Expiry parses the expiry timestamp.
func (l *Lifecycle) Expiry() (time.Time, error) {
	return dateparse.ParseAny(l.ExpiryTime)
}

// ExpiredAt reports whether the item is expired at the given instant.
// An absent or unparseable expiry means the item never expires.
func (l *Lifecycle) ExpiredAt(t time.Time) bool {
	if l.ExpiryTime == "" {
		return false
	}
	expiry, err := l.Expiry()
	if err != nil {
		return false
	}
	return t.After(expiry)
}
