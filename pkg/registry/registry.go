// Package registry is the append-only log of broadcast alerts. Records
// are keyed by (normalized location, radius); the registry never stores
// two records with an equal key.
package registry

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shadowbane/phoenix-aid/pkg/matching"
	"github.com/shadowbane/phoenix-aid/pkg/models"
	"github.com/shadowbane/phoenix-aid/pkg/tabular"
)

const dateLayout = "2006-01-02 15:04:05"

// Candidate is a broadcast request before validation and normalization.
type Candidate struct {
	Location string
	Radius   string
	Message  string
}

// DuplicateKind distinguishes why a broadcast was rejected.
type DuplicateKind int

const (
	// ExactDuplicate means location, radius and message all match an
	// existing record.
	ExactDuplicate DuplicateKind = iota
	// AreaDuplicate means location and radius match an existing record
	// whose message differs.
	AreaDuplicate
)

// DuplicateError rejects a broadcast that collides with a stored
// record. Radius carries the conflicting (normalized) radius so callers
// can report it.
type DuplicateError struct {
	Kind     DuplicateKind
	Location string
	Radius   string
}

func (e *DuplicateError) Error() string {
	if e.Kind == ExactDuplicate {
		return fmt.Sprintf("Identical alert for '%s' (%s km) already exists.", e.Location, e.Radius)
	}
	return fmt.Sprintf("An alert for '%s' within %s km already exists.", e.Location, e.Radius)
}

// ValidationError rejects a broadcast with an empty required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " must not be empty"
}

// Filter returns the records whose location case-insensitively contains
// query, in table order. The empty query matches every record with a
// location; records without one never match.
func Filter(records []models.AlertRecord, query string) []models.AlertRecord {
	if len(records) == 0 {
		return nil
	}

	q := strings.ToLower(query)
	var out []models.AlertRecord
	for _, rec := range records {
		if rec.Location == "" {
			continue
		}
		if strings.Contains(strings.ToLower(rec.Location), q) {
			out = append(out, rec)
		}
	}
	return out
}

// Registry owns the alerts table file. Broadcast serializes its
// read-modify-append under a mutex so two concurrent requests cannot
// both pass the duplicate check and race to the file.
type Registry struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// New creates a Registry over the alerts table at path.
func New(path string) *Registry {
	return &Registry{path: path, now: time.Now}
}

// Query reloads the table and returns the records matching query. The
// table is reloaded on every call; there is no staleness window between
// a successful Broadcast and a Query.
func (r *Registry) Query(query string) ([]models.AlertRecord, error) {
	records, err := tabular.LoadAlerts(r.path)
	if err != nil {
		return nil, err
	}
	return Filter(records, query), nil
}

// Broadcast validates, deduplicates and appends one alert, returning
// the stored record. Exact duplicates win over area duplicates when the
// table somehow contains both.
func (r *Registry) Broadcast(c Candidate) (*models.AlertRecord, error) {
	location := strings.TrimSpace(c.Location)
	message := strings.TrimSpace(c.Message)
	if location == "" {
		return nil, &ValidationError{Field: "location"}
	}
	if message == "" {
		return nil, &ValidationError{Field: "message"}
	}

	locNorm := matching.Normalize(c.Location)
	msgNorm := matching.NormalizeMessage(c.Message)
	radNorm := matching.NormalizeRadius(c.Radius)

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := tabular.LoadAlerts(r.path)
	if err != nil {
		return nil, err
	}

	sameArea := false
	for _, rec := range records {
		if matching.Normalize(rec.Location) != locNorm || strings.TrimSpace(rec.Radius) != radNorm {
			continue
		}
		if matching.NormalizeMessage(rec.Message) == msgNorm {
			return nil, &DuplicateError{Kind: ExactDuplicate, Location: location, Radius: radNorm}
		}
		sameArea = true
	}
	if sameArea {
		return nil, &DuplicateError{Kind: AreaDuplicate, Location: location, Radius: radNorm}
	}

	stored := models.AlertRecord{
		Date:     r.now().Format(dateLayout),
		Location: location,
		Radius:   radNorm,
		Message:  message,
	}
	if err := tabular.AppendAlert(r.path, stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
