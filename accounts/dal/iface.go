//go:generate mockery --output=./mocks --all

package dal

import (
	"context"

	"github.com/drowsalert/admin-api/accounts/domain"
)

// Identity is used to interact with the identity provider's account records.
type Identity interface {
	GetUser(ctx context.Context, uid string) (*domain.ProviderRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.ProviderRecord, error)
	ListUsers(ctx context.Context, pageToken string) ([]*domain.ProviderRecord, string, error)
	CreateUser(ctx context.Context, email, password, displayName string) (*domain.ProviderRecord, error)
	UpdateUser(ctx context.Context, uid, displayName, email string) (*domain.ProviderRecord, error)
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	SetRoleClaim(ctx context.Context, uid, role string) error
	DeleteUser(ctx context.Context, uid string) error
	PasswordResetLink(ctx context.Context, email string) (string, error)
	CustomToken(ctx context.Context, uid string) (string, error)
}

// Profiles is used to interact with the account profile documents stored on
// the document store.
type Profiles interface {
	GetProfile(ctx context.Context, uid string) (*domain.Profile, error)
	GetProfiles(ctx context.Context, uids []string) (map[string]*domain.Profile, error)
	SetProfile(ctx context.Context, uid string, profile *domain.Profile) error
	UpdateRole(ctx context.Context, uid, role string) error
	UpdateDisplayFields(ctx context.Context, uid, displayName, email string) error
	DeleteProfile(ctx context.Context, uid string) error
}
