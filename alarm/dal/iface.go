//go:generate mockery --output=./mocks --all

package dal

import (
	"context"

	"github.com/drowsalert/admin-api/alarm/domain"
)

// Alarms is used to interact with the alarm documents stored on the document
// store, including its live change feed.
type Alarms interface {
	GetAlarmsByEmail(ctx context.Context, email string) ([]domain.AlarmDocument, error)
	Subscribe(ctx context.Context) <-chan domain.Delta
}
