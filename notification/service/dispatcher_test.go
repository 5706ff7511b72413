package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	alarmDomain "github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/logger"
	"github.com/drowsalert/admin-api/notification/domain"
)

type recordingNotifier struct {
	entries []domain.Entry
	err     error
}

func (n *recordingNotifier) Notify(ctx context.Context, entry domain.Entry) error {
	n.entries = append(n.entries, entry)
	return n.err
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	occurrence := alarmDomain.Occurrence{
		AccountID: "uid-1",
		Email:     "bob@x.com",
		Time:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("appends an entry and fans out", func(t *testing.T) {
		notifier := &recordingNotifier{}
		d := NewDispatcher(logger.FromContext, notifier)

		entry := d.Dispatch(ctx, occurrence)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "Drowsiness alarm reported by bob@x.com", entry.Message)
		assert.Equal(t, "bob@x.com", entry.AccountEmail)

		assert.Equal(t, []domain.Entry{entry}, notifier.entries)
		assert.Equal(t, []domain.Entry{entry}, d.Log())
	})

	t.Run("notifier failure does not lose the entry", func(t *testing.T) {
		failing := &recordingNotifier{err: errors.New("push unavailable")}
		healthy := &recordingNotifier{}
		d := NewDispatcher(logger.FromContext, failing, healthy)

		entry := d.Dispatch(ctx, occurrence)

		assert.Equal(t, []domain.Entry{entry}, d.Log())
		assert.Equal(t, []domain.Entry{entry}, healthy.entries)
	})

	t.Run("log preserves insertion order and returns a copy", func(t *testing.T) {
		d := NewDispatcher(logger.FromContext)

		first := d.Dispatch(ctx, occurrence)
		second := d.Dispatch(ctx, alarmDomain.Occurrence{Email: "carol@x.com"})

		entries := d.Log()
		assert.Equal(t, []domain.Entry{first, second}, entries)

		entries[0].Message = "mutated"
		assert.Equal(t, first, d.Log()[0])
	})
}

func TestDispatcher_Run(t *testing.T) {
	ctx := context.Background()

	d := NewDispatcher(logger.FromContext)

	in := make(chan alarmDomain.Occurrence, 2)
	in <- alarmDomain.Occurrence{Email: "bob@x.com"}
	in <- alarmDomain.Occurrence{Email: "carol@x.com"}
	close(in)

	d.Run(ctx, in)

	entries := d.Log()
	assert.Len(t, entries, 2)
	assert.Equal(t, "bob@x.com", entries[0].AccountEmail)
	assert.Equal(t, "carol@x.com", entries[1].AccountEmail)
}

func TestSoundNotifier_Notify(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer

	n := NewSoundNotifier(&out)

	assert.NoError(t, n.Notify(ctx, domain.Entry{}))
	assert.Equal(t, "\a", out.String())

	// Throttled: a burst rings once.
	assert.NoError(t, n.Notify(ctx, domain.Entry{}))
	assert.Equal(t, "\a", out.String())
}

func TestPushNotifier_NotifyWithoutSender(t *testing.T) {
	ctx := context.Background()

	n := NewPushNotifier(nil, "drowsiness-alarms")

	assert.NoError(t, n.Notify(ctx, domain.Entry{Message: "Drowsiness alarm reported by bob@x.com"}))
}
