package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/drowsalert/admin-api/alarm/domain"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/logger"
)

const alarmsCollection = "alarmSounds"

// AlarmsFirestore is used to interact with alarm documents stored on Firestore.
type AlarmsFirestore struct {
	loggerProvider     logger.Provider
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewAlarmsFirestore returns a new AlarmsFirestore instance with given project id.
func NewAlarmsFirestore(ctx context.Context, log logger.Provider, projectID string) (*AlarmsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewAlarmsFirestoreWithClient(
		log,
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewAlarmsFirestoreWithClient returns a new AlarmsFirestore using given client.
func NewAlarmsFirestoreWithClient(log logger.Provider, fun connection.FirestoreFromContextFun) *AlarmsFirestore {
	return &AlarmsFirestore{
		loggerProvider:     log,
		firestoreClientFun: fun,
	}
}

func (d *AlarmsFirestore) alarmsCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(alarmsCollection)
}

// GetAlarmsByEmail returns the alarm documents carrying the given
// denormalized email.
func (d *AlarmsFirestore) GetAlarmsByEmail(ctx context.Context, email string) ([]domain.AlarmDocument, error) {
	docSnaps, err := d.alarmsCollection(ctx).
		Where("email", "==", email).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	docs := make([]domain.AlarmDocument, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var doc domain.AlarmDocument
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// Subscribe opens the change feed over the whole alarm collection and
// returns a channel of typed deltas. Deltas for one document arrive in
// commit order. The channel is closed when ctx is cancelled or the feed
// terminates; releasing the subscription never cancels a delta already being
// processed downstream.
func (d *AlarmsFirestore) Subscribe(ctx context.Context) <-chan domain.Delta {
	l := d.loggerProvider(ctx)
	out := make(chan domain.Delta)

	iter := d.alarmsCollection(ctx).Snapshots(ctx)

	go func() {
		defer close(out)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				if ctx.Err() == nil {
					l.Errorf("alarm feed terminated: %s", err)
				}

				return
			}

			for _, change := range snap.Changes {
				delta, err := toDelta(change)
				if err != nil {
					// Malformed deltas are dropped per-occurrence; the
					// subscription itself stays up.
					l.Warningf("alarm feed: dropping malformed delta for %s: %s", change.Doc.Ref.ID, err)
					continue
				}

				select {
				case out <- delta:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func toDelta(change firestore.DocumentChange) (domain.Delta, error) {
	kind := domain.DeltaAdded

	switch change.Kind {
	case firestore.DocumentModified:
		kind = domain.DeltaModified
	case firestore.DocumentRemoved:
		return domain.Delta{
			Kind:      domain.DeltaRemoved,
			AccountID: change.Doc.Ref.ID,
		}, nil
	}

	var doc domain.AlarmDocument
	if err := change.Doc.DataTo(&doc); err != nil {
		return domain.Delta{}, err
	}

	return domain.Delta{
		Kind:      kind,
		AccountID: change.Doc.Ref.ID,
		Doc:       doc,
	}, nil
}
