package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drowsalert/admin-api/accounts/service"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/framework/web"
	"github.com/drowsalert/admin-api/logger"
)

var errEmptyID = errors.New("account id is required")

type Accounts struct {
	loggerProvider logger.Provider
	service        service.Accounts
}

func NewAccounts(log logger.Provider, conn *connection.Connection) *Accounts {
	s := service.NewAccountService(log, conn)

	return &Accounts{
		log,
		s,
	}
}

// ListAccounts returns the merged account directory. With ?disabled=true it
// returns the disabled accounts instead.
func (h *Accounts) ListAccounts(ctx *gin.Context) error {
	var (
		accounts interface{}
		err      error
	)

	if ctx.Query("disabled") == "true" {
		accounts, err = h.service.ListDisabledAccounts(ctx)
	} else {
		accounts, err = h.service.ListAccounts(ctx)
	}

	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, accounts, http.StatusOK)
}

func (h *Accounts) CreateAccount(ctx *gin.Context) error {
	var req service.CreateAccountRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.Email == "" || req.Password == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	account, err := h.service.Create(ctx, req)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, account, http.StatusOK)
}

type promoteRequest struct {
	ID string `json:"id"`
}

func (h *Accounts) PromoteAccount(ctx *gin.Context) error {
	var req promoteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.ID == "" {
		return web.NewRequestError(errEmptyID, http.StatusBadRequest)
	}

	if err := h.service.Promote(ctx, req.ID); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"message": "account promoted to admin"}, http.StatusOK)
}

type updateRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

func (h *Accounts) UpdateAccount(ctx *gin.Context) error {
	uid := ctx.Param("id")
	if uid == "" {
		return web.NewRequestError(errEmptyID, http.StatusBadRequest)
	}

	var req updateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	account, err := h.service.Update(ctx, uid, req.DisplayName, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, account, http.StatusOK)
}

func (h *Accounts) DisableAccount(ctx *gin.Context) error {
	uid := ctx.Param("id")
	if uid == "" {
		return web.NewRequestError(errEmptyID, http.StatusBadRequest)
	}

	if err := h.service.Disable(ctx, uid); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"message": "account disabled"}, http.StatusOK)
}

type enableRequest struct {
	Email string `json:"email"`
}

func (h *Accounts) EnableAccount(ctx *gin.Context) error {
	var req enableRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.EnableByEmail(ctx, req.Email); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"message": "account enabled"}, http.StatusOK)
}

func (h *Accounts) DeleteAccount(ctx *gin.Context) error {
	uid := ctx.Param("id")
	if uid == "" {
		return web.NewRequestError(errEmptyID, http.StatusBadRequest)
	}

	if err := h.service.Delete(ctx, uid); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"message": "account deleted"}, http.StatusOK)
}
