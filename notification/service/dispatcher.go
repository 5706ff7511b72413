package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	alarmDomain "github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/logger"
	"github.com/drowsalert/admin-api/notification/domain"
)

// Notifier is a best-effort side-effect surface (audible cue, platform
// notification). A notifier without its capability reports no error, it
// just does nothing.
type Notifier interface {
	Notify(ctx context.Context, entry domain.Entry) error
}

// Dispatcher formats deduplicated alarm occurrences into notification
// entries, appends them to the in-memory log and fans them out to the
// registered notifiers.
//
// The log is append-only and unbounded: entries are kept for the whole
// session. Appends come from the single pipeline goroutine while reads come
// from request handlers, so access is serialized by a mutex.
type Dispatcher struct {
	loggerProvider logger.Provider
	now            func() time.Time
	notifiers      []Notifier

	mu  sync.Mutex
	log []domain.Entry
}

func NewDispatcher(log logger.Provider, notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{
		loggerProvider: log,
		now:            time.Now,
		notifiers:      notifiers,
	}
}

// Run consumes occurrences until the input channel closes.
func (d *Dispatcher) Run(ctx context.Context, in <-chan alarmDomain.Occurrence) {
	for occurrence := range in {
		d.Dispatch(ctx, occurrence)
	}
}

// Dispatch appends a notification entry for the occurrence and fans it out.
// Notifier failures are logged and swallowed; these are UX signals, not
// control flow.
func (d *Dispatcher) Dispatch(ctx context.Context, occurrence alarmDomain.Occurrence) domain.Entry {
	l := d.loggerProvider(ctx)

	entry := domain.Entry{
		ID:           uuid.New().String(),
		Message:      fmt.Sprintf("Drowsiness alarm reported by %s", occurrence.Email),
		AccountEmail: occurrence.Email,
		ProducedAt:   d.now(),
	}

	d.mu.Lock()
	d.log = append(d.log, entry)
	d.mu.Unlock()

	for _, n := range d.notifiers {
		if err := n.Notify(ctx, entry); err != nil {
			l.Warningf("notification: subscriber failed for %s: %s", entry.AccountEmail, err)
		}
	}

	return entry
}

// Log returns a copy of the notification log in insertion order.
func (d *Dispatcher) Log() []domain.Entry {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries := make([]domain.Entry, len(d.log))
	copy(entries, d.log)

	return entries
}
