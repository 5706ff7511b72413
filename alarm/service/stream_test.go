package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/logger"
)

func collectOccurrences(t *testing.T, out <-chan domain.Occurrence) []domain.Occurrence {
	t.Helper()

	var got []domain.Occurrence

	timeout := time.After(time.Second)

	for {
		select {
		case occurrence, ok := <-out:
			if !ok {
				return got
			}

			got = append(got, occurrence)
		case <-timeout:
			t.Fatal("stream output never closed")
		}
	}
}

func TestStream_Run(t *testing.T) {
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(30 * time.Second)

	deltas := make(chan domain.Delta, 8)

	deltas <- domain.Delta{
		Kind:      domain.DeltaAdded,
		AccountID: "uid-1",
		Doc: domain.AlarmDocument{
			Email:        "bob@x.com",
			AlarmHistory: []domain.HistoryEntry{{Time: first}},
		},
	}
	// Whole-document change: only the newest history entry is a candidate.
	deltas <- domain.Delta{
		Kind:      domain.DeltaModified,
		AccountID: "uid-1",
		Doc: domain.AlarmDocument{
			Email:        "bob@x.com",
			AlarmHistory: []domain.HistoryEntry{{Time: first}, {Time: second}},
		},
	}
	deltas <- domain.Delta{
		Kind:      domain.DeltaRemoved,
		AccountID: "uid-1",
	}
	deltas <- domain.Delta{
		Kind:      domain.DeltaAdded,
		AccountID: "uid-2",
		Doc:       domain.AlarmDocument{Email: "empty@x.com"},
	}
	deltas <- domain.Delta{
		Kind:      domain.DeltaAdded,
		AccountID: "uid-3",
		Doc: domain.AlarmDocument{
			Email:        "zero@x.com",
			AlarmHistory: []domain.HistoryEntry{{}},
		},
	}
	close(deltas)

	stream := NewStream(logger.FromContext)

	got := collectOccurrences(t, stream.Run(ctx, deltas))

	assert.Equal(t, []domain.Occurrence{
		{AccountID: "uid-1", Email: "bob@x.com", Time: first},
		{AccountID: "uid-1", Email: "bob@x.com", Time: second},
	}, got)
}

func TestStream_RunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	deltas := make(chan domain.Delta, 1)
	deltas <- domain.Delta{
		Kind:      domain.DeltaAdded,
		AccountID: "uid-1",
		Doc: domain.AlarmDocument{
			Email:        "bob@x.com",
			AlarmHistory: []domain.HistoryEntry{{Time: time.Now()}},
		},
	}

	stream := NewStream(logger.FromContext)
	out := stream.Run(ctx, deltas)

	cancel()

	select {
	case <-out:
	case <-time.After(time.Second):
		t.Fatal("stream did not stop after cancellation")
	}
}
