package service

import (
	"context"
	"fmt"
	"io"

	"firebase.google.com/go/v4/messaging"
	"golang.org/x/time/rate"

	"github.com/drowsalert/admin-api/notification/domain"
)

// SoundNotifier rings the terminal bell on the given writer. A burst of
// occurrences must not turn into a wall of sound, so rings are throttled.
type SoundNotifier struct {
	out     io.Writer
	limiter *rate.Limiter
}

// NewSoundNotifier allows one ring per interval of the freshness window's
// order; extra rings inside the interval are dropped, not queued.
func NewSoundNotifier(out io.Writer) *SoundNotifier {
	return &SoundNotifier{
		out:     out,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

func (n *SoundNotifier) Notify(ctx context.Context, entry domain.Entry) error {
	if !n.limiter.Allow() {
		return nil
	}

	_, err := fmt.Fprint(n.out, "\a")

	return err
}

// PushSender sends a platform push message. Satisfied by the platform's
// messaging client.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushNotifier forwards entries as platform notifications on a topic the
// admin clients subscribe to. A nil sender means the capability was never
// granted; that is not an error, the entry is still logged upstream.
type PushNotifier struct {
	sender PushSender
	topic  string
}

func NewPushNotifier(sender PushSender, topic string) *PushNotifier {
	return &PushNotifier{
		sender: sender,
		topic:  topic,
	}
}

func (n *PushNotifier) Notify(ctx context.Context, entry domain.Entry) error {
	if n.sender == nil {
		return nil
	}

	message := messaging.Message{
		Topic: n.topic,
		Notification: &messaging.Notification{
			Title: "Drowsiness alarm",
			Body:  entry.Message,
		},
	}

	_, err := n.sender.Send(ctx, &message)

	return err
}
