package scheduler

import (
	"log"
	"sync"
	"time"

	"household-backend/internal/dailystatus"
)

// RolloverFunc is called with the previous and the new day.
type RolloverFunc func(previous, current dailystatus.DateKey)

// DayWatcher notices when the local calendar day changes.
type DayWatcher struct {
	clock    dailystatus.Clock
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once

	mu        sync.Mutex
	lastDay   dailystatus.DateKey
	callbacks []RolloverFunc
}

// NewDayWatcher creates a new watcher
func NewDayWatcher(clock dailystatus.Clock, interval time.Duration) *DayWatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DayWatcher{
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
		lastDay:  dailystatus.TodayKey(clock),
	}
}

// OnRollover registers fn for every day change.
func (w *DayWatcher) OnRollover(fn RolloverFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Start begins the watcher loop
func (w *DayWatcher) Start() {
	log.Printf("[DayWatcher] Watching for day rollover (interval: %s, today: %s)", w.interval, w.lastDay)

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Check()
			case <-w.stopChan:
				log.Println("[DayWatcher] Stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the watcher
func (w *DayWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
}

// Check compares today's key with the last observed one and reports
// whether the day changed.
func (w *DayWatcher) Check() bool {
	today := dailystatus.TodayKey(w.clock)

	w.mu.Lock()
	previous := w.lastDay
	if today == previous {
		w.mu.Unlock()
		return false
	}
	w.lastDay = today
	callbacks := append([]RolloverFunc(nil), w.callbacks...)
	w.mu.Unlock()

	log.Printf("[DayWatcher] Day rolled over from %s to %s, schedule reset", previous, today)
	for _, fn := range callbacks {
		fn(previous, today)
	}
	return true
}
