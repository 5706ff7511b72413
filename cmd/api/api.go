package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	accountsDal "github.com/drowsalert/admin-api/accounts/dal"
	accountsHandlers "github.com/drowsalert/admin-api/accounts/handlers"
	alarmHandlers "github.com/drowsalert/admin-api/alarm/handlers"
	authHandlers "github.com/drowsalert/admin-api/auth/handlers"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/framework/mid"
	"github.com/drowsalert/admin-api/framework/web"
	"github.com/drowsalert/admin-api/logger"
	notificationHandlers "github.com/drowsalert/admin-api/notification/handlers"
	notificationService "github.com/drowsalert/admin-api/notification/service"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown   chan os.Signal
	log        *logger.Logging
	conn       *connection.Connection
	dispatcher *notificationService.Dispatcher
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, dispatcher *notificationService.Dispatcher) *API {
	return &API{
		shutdown,
		logging,
		conn,
		dispatcher,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	accounts := accountsHandlers.NewAccounts(loggerProvider, a.conn)
	alarms := alarmHandlers.NewAlarms(loggerProvider, a.conn)
	auth := authHandlers.NewAuth(loggerProvider, a.conn)
	notifications := notificationHandlers.NewNotifications(loggerProvider, a.dispatcher)

	profiles := accountsDal.NewProfilesFirestoreWithClient(a.conn.Firestore)

	authed := mid.AuthRequired(a.conn.Auth(backgroundContext))
	adminOnly := mid.AuthAdmin(profiles)

	// The disabled listing shares the accounts path but is bearer-only,
	// so the admin gate is skipped for it.
	listGate := func(handler web.Handler) web.Handler {
		return func(ctx *gin.Context) error {
			if ctx.Query("disabled") == "true" {
				return handler(ctx)
			}

			return adminOnly(handler)(ctx)
		}
	}

	app.Get("/health", healthCheck)

	authGroup := web.NewGroup(app, "/api/auth")

	authGroup.Post("/signup", auth.SignUp)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/forgot-password", auth.ForgotPassword)

	// Enable-by-email carries no bearer gate: it is the recovery path for
	// accounts that can no longer sign in.
	app.Put("/api/admin/accounts/enable", accounts.EnableAccount)

	adminGroup := web.NewGroup(app, "/api/admin", authed)

	adminGroup.Get("/accounts", accounts.ListAccounts, listGate)
	adminGroup.Post("/accounts", accounts.CreateAccount, adminOnly)
	adminGroup.Post("/accounts/promote", accounts.PromoteAccount, adminOnly)
	adminGroup.Put("/accounts/:id", accounts.UpdateAccount, adminOnly)
	adminGroup.Patch("/accounts/:id", accounts.DisableAccount)
	adminGroup.Delete("/accounts/:id", accounts.DeleteAccount, adminOnly)

	adminGroup.Get("/alarms", alarms.ListAlarms, adminOnly)
	adminGroup.Get("/notifications", notifications.ListNotifications, adminOnly)

	return app
}

func healthCheck(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{"status": "ok"}, http.StatusOK)
}
