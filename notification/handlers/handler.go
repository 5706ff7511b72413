package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drowsalert/admin-api/framework/web"
	"github.com/drowsalert/admin-api/logger"
	"github.com/drowsalert/admin-api/notification/service"
)

type Notifications struct {
	loggerProvider logger.Provider
	dispatcher     *service.Dispatcher
}

func NewNotifications(log logger.Provider, dispatcher *service.Dispatcher) *Notifications {
	return &Notifications{
		log,
		dispatcher,
	}
}

// ListNotifications returns the session's notification log, oldest first.
func (h *Notifications) ListNotifications(ctx *gin.Context) error {
	return web.Respond(ctx, h.dispatcher.Log(), http.StatusOK)
}
