//go:generate mockery --name Auth --output ./mocks

package service

import (
	"context"

	"github.com/drowsalert/admin-api/accounts/domain"
)

// SignUpRequest carries the self-service registration fields.
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// Auth covers the unauthenticated account entry points.
type Auth interface {
	SignUp(ctx context.Context, req SignUpRequest) (*domain.Account, error)
	Login(ctx context.Context, email string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
}
