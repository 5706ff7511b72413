package connection

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"

	"github.com/drowsalert/admin-api/common"
	"github.com/drowsalert/admin-api/logger"
)

var ErrAuthInitialization = errors.New("identity provider initialization error")

type AuthClient struct {
	auth      *firebaseauth.Client
	messaging *messaging.Client
}

func NewAuth(ctx context.Context, log *logger.Logging) (*AuthClient, error) {
	logger := log.Logger(ctx)

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	if err != nil {
		logger.Errorf("%s: %s", ErrAuthInitialization, err)
		return nil, ErrAuthInitialization
	}

	auth, err := app.Auth(ctx)
	if err != nil {
		logger.Errorf("%s: %s", ErrAuthInitialization, err)
		return nil, ErrAuthInitialization
	}

	msg, err := app.Messaging(ctx)
	if err != nil {
		logger.Errorf("%s: %s", ErrAuthInitialization, err)
		return nil, ErrAuthInitialization
	}

	return &AuthClient{
		auth,
		msg,
	}, nil
}
