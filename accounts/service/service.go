package service

import (
	"context"

	accountsDal "github.com/drowsalert/admin-api/accounts/dal"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/logger"
)

// AccountService executes directory reads and lifecycle writes against the
// identity provider and the document store.
type AccountService struct {
	loggerProvider logger.Provider
	identity       accountsDal.Identity
	profiles       accountsDal.Profiles
}

func NewAccountService(log logger.Provider, conn *connection.Connection) *AccountService {
	return &AccountService{
		log,
		accountsDal.NewIdentityFirebaseWithClient(conn.Auth(context.Background())),
		accountsDal.NewProfilesFirestoreWithClient(conn.Firestore),
	}
}

// NewAccountServiceWithDALs is used to construct the service with explicit
// store implementations.
func NewAccountServiceWithDALs(log logger.Provider, identity accountsDal.Identity, profiles accountsDal.Profiles) *AccountService {
	return &AccountService{
		log,
		identity,
		profiles,
	}
}
