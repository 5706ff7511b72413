//go:generate mockery --name Accounts --output ./mocks

package service

import (
	"context"

	"github.com/drowsalert/admin-api/accounts/domain"
)

// CreateAccountRequest carries the admin-supplied fields of a new account.
type CreateAccountRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// Accounts merges the directory read model with the lifecycle write
// operations. Directory reads always reflect the stores; the service keeps
// no cache of its own.
type Accounts interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListDisabledAccounts(ctx context.Context) ([]domain.Account, error)

	Create(ctx context.Context, req CreateAccountRequest) (*domain.Account, error)
	Promote(ctx context.Context, uid string) error
	Update(ctx context.Context, uid, displayName, email string) (*domain.Account, error)
	Disable(ctx context.Context, uid string) error
	EnableByEmail(ctx context.Context, email string) error
	Delete(ctx context.Context, uid string) error
}
