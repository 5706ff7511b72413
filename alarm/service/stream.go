package service

import (
	"context"

	"github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/logger"
)

// Stream normalizes change-feed deltas into discrete alarm occurrences.
// The store reports whole-document changes, so only the most recent history
// entry of a delta is treated as the occurrence candidate.
type Stream struct {
	loggerProvider logger.Provider
}

func NewStream(log logger.Provider) *Stream {
	return &Stream{
		loggerProvider: log,
	}
}

// Run consumes deltas until the input channel closes or ctx is cancelled,
// emitting one occurrence candidate per add-or-modify delta. Malformed
// deltas (no history, missing time) are dropped with a log entry and never
// terminate the stream. The returned channel is closed when the input ends.
func (s *Stream) Run(ctx context.Context, deltas <-chan domain.Delta) <-chan domain.Occurrence {
	l := s.loggerProvider(ctx)
	out := make(chan domain.Occurrence)

	go func() {
		defer close(out)

		for delta := range deltas {
			occurrence, ok := s.normalize(l, delta)
			if !ok {
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

func (s *Stream) normalize(l logger.ILogger, delta domain.Delta) (domain.Occurrence, bool) {
	if delta.Kind == domain.DeltaRemoved {
		return domain.Occurrence{}, false
	}

	history := delta.Doc.AlarmHistory
	if len(history) == 0 {
		l.Warningf("alarm stream: delta for %s has no history entries", delta.AccountID)
		return domain.Occurrence{}, false
	}

	last := history[len(history)-1]
	if last.Time.IsZero() {
		l.Warningf("alarm stream: delta for %s has no time on its last entry", delta.AccountID)
		return domain.Occurrence{}, false
	}

	return domain.Occurrence{
		AccountID: delta.AccountID,
		Email:     delta.Doc.Email,
		Time:      last.Time,
	}, true
}
