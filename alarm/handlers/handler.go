package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drowsalert/admin-api/alarm/dal"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/framework/web"
	"github.com/drowsalert/admin-api/logger"
)

var errEmptyEmail = errors.New("email is required")

type Alarms struct {
	loggerProvider logger.Provider
	alarms         dal.Alarms
}

func NewAlarms(log logger.Provider, conn *connection.Connection) *Alarms {
	return &Alarms{
		log,
		dal.NewAlarmsFirestoreWithClient(log, conn.Firestore),
	}
}

// ListAlarms returns the alarm history documents for one account, looked up
// by its denormalized email.
func (h *Alarms) ListAlarms(ctx *gin.Context) error {
	email := ctx.Query("email")
	if email == "" {
		return web.NewRequestError(errEmptyEmail, http.StatusBadRequest)
	}

	docs, err := h.alarms.GetAlarmsByEmail(ctx, email)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, docs, http.StatusOK)
}
