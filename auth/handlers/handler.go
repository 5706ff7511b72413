package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drowsalert/admin-api/auth/service"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/framework/web"
	"github.com/drowsalert/admin-api/logger"
)

var errEmptyEmail = errors.New("email is required")

type Auth struct {
	loggerProvider logger.Provider
	service        service.Auth
}

func NewAuth(log logger.Provider, conn *connection.Connection) *Auth {
	s := service.NewAuthService(log, conn)

	return &Auth{
		log,
		s,
	}
}

func (h *Auth) SignUp(ctx *gin.Context) error {
	var req service.SignUpRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.Email == "" || req.Password == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	account, err := h.service.SignUp(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return web.NewRequestError(err, http.StatusConflict)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, account, http.StatusCreated)
}

type loginRequest struct {
	Email string `json:"email"`
}

func (h *Auth) Login(ctx *gin.Context) error {
	var req loginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.Email == "" {
		return web.NewRequestError(errEmptyEmail, http.StatusBadRequest)
	}

	token, err := h.service.Login(ctx, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUnknownEmail) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"token": token}, http.StatusOK)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *Auth) ForgotPassword(ctx *gin.Context) error {
	var req forgotPasswordRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.Email == "" {
		return web.NewRequestError(errEmptyEmail, http.StatusBadRequest)
	}

	if err := h.service.ForgotPassword(ctx, req.Email); err != nil {
		if errors.Is(err, service.ErrUnknownEmail) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"message": "password reset email sent"}, http.StatusOK)
}
