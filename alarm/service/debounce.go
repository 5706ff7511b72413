package service

import (
	"context"
	"fmt"
	"time"

	"github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/logger"
)

// FreshnessWindow is the debounce window: an occurrence older than this at
// processing time is treated as a late redelivery and suppressed.
const FreshnessWindow = 5 * time.Second

// Debouncer suppresses stale and duplicate occurrences coming off the
// change feed. Stream (re)connects redeliver existing documents as "added";
// the freshness window keeps those from producing notification storms, and
// the seen set keeps a redelivery inside the window from notifying twice.
type Debouncer struct {
	loggerProvider logger.Provider
	window         time.Duration
	now            func() time.Time
	seen           map[string]time.Time
}

func NewDebouncer(log logger.Provider) *Debouncer {
	return &Debouncer{
		loggerProvider: log,
		window:         FreshnessWindow,
		now:            time.Now,
		seen:           make(map[string]time.Time),
	}
}

// NewDebouncerWithClock is used by tests to pin the processing time.
func NewDebouncerWithClock(log logger.Provider, now func() time.Time) *Debouncer {
	d := NewDebouncer(log)
	d.now = now

	return d
}

// Run forwards fresh, unseen occurrences until the input channel closes or
// ctx is cancelled. The returned channel is closed when the input ends.
func (d *Debouncer) Run(ctx context.Context, in <-chan domain.Occurrence) <-chan domain.Occurrence {
	out := make(chan domain.Occurrence)

	go func() {
		defer close(out)

		for occurrence := range in {
			if !d.Admit(ctx, occurrence) {
				continue
			}

			select {
			case out <- occurrence:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Admit reports whether the occurrence should be forwarded, recording it in
// the seen set when it is. Freshness is a strict comparison: an occurrence
// exactly window old is stale.
func (d *Debouncer) Admit(ctx context.Context, occurrence domain.Occurrence) bool {
	l := d.loggerProvider(ctx)

	now := d.now()

	age := now.Sub(occurrence.Time)
	if age >= d.window {
		l.Debugf("debounce: suppressing stale occurrence for %s (age %s)", occurrence.Email, age)
		return false
	}

	key := seenKey(occurrence)
	if _, ok := d.seen[key]; ok {
		l.Debugf("debounce: suppressing redelivered occurrence for %s", occurrence.Email)
		return false
	}

	// Entries past the window can never be admitted again, the freshness
	// check already rejects them.
	for k, t := range d.seen {
		if now.Sub(t) >= d.window {
			delete(d.seen, k)
		}
	}

	d.seen[key] = occurrence.Time

	return true
}

func seenKey(occurrence domain.Occurrence) string {
	return fmt.Sprintf("%s/%d", occurrence.AccountID, occurrence.Time.UnixNano())
}
