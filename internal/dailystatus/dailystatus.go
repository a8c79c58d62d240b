package dailystatus

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"household-backend/internal/store"
)

// Namespace prefixes every per-day key.
const Namespace = "daily_status"

const dateLayout = "2006-01-02"

// Clock supplies the current time. Inject a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return ClockFunc(func() time.Time { return time.Now().In(loc) })
}

// DateKey is a calendar date formatted YYYY-MM-DD.
type DateKey string

// TodayKey returns the calendar date of clock.Now() in the clock's location.
func TodayKey(clock Clock) DateKey {
	return DateKey(clock.Now().Format(dateLayout))
}

// ParseDateKey validates a YYYY-MM-DD string.
func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateKey(s), nil
}

// StorageKey is the persisted key for one day's map.
func StorageKey(day DateKey) string {
	return Namespace + "_" + string(day)
}

// StatusMap maps task id to completion.
type StatusMap map[string]bool

// Tracker reads and writes per-day status maps. Old days are never removed.
type Tracker struct {
	store store.Store
	clock Clock
}

func NewTracker(s store.Store, clock Clock) *Tracker {
	return &Tracker{store: s, clock: clock}
}

// Today is TodayKey on the tracker's clock.
func (t *Tracker) Today() DateKey {
	return TodayKey(t.clock)
}

// Load returns today's map. A missing or unreadable map is empty.
func (t *Tracker) Load(ctx context.Context) (DateKey, StatusMap, error) {
	day := t.Today()
	m, err := t.LoadDay(ctx, day)
	return day, m, err
}

// LoadDay returns the map stored for day, empty when absent.
func (t *Tracker) LoadDay(ctx context.Context, day DateKey) (StatusMap, error) {
	m := StatusMap{}
	if _, err := store.GetJSON(ctx, t.store, StorageKey(day), &m); err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			log.Printf("[DailyStatus] %v, treating %s as empty", err, day)
			return StatusMap{}, nil
		}
		return nil, err
	}
	if m == nil {
		m = StatusMap{}
	}
	return m, nil
}

// SaveDay replaces the whole map for day.
func (t *Tracker) SaveDay(ctx context.Context, day DateKey, m StatusMap) error {
	return store.SetJSON(ctx, t.store, StorageKey(day), m)
}

// Save replaces today's map.
func (t *Tracker) Save(ctx context.Context, m StatusMap) error {
	return t.SaveDay(ctx, t.Today(), m)
}
