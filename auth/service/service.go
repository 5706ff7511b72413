package service

import (
	"context"
	"errors"
	"fmt"

	accountsDal "github.com/drowsalert/admin-api/accounts/dal"
	"github.com/drowsalert/admin-api/accounts/domain"
	"github.com/drowsalert/admin-api/auth/mailer"
	"github.com/drowsalert/admin-api/framework/connection"
	"github.com/drowsalert/admin-api/logger"
)

var (
	// ErrEmailTaken is returned when a sign up collides with an existing
	// provider account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnknownEmail is returned when no provider account carries the email.
	ErrUnknownEmail = errors.New("no account registered for email")
)

// AuthService handles self-service registration and credential recovery.
// Sign ups always land with the user role; promotion is an admin operation.
type AuthService struct {
	loggerProvider logger.Provider
	identity       accountsDal.Identity
	profiles       accountsDal.Profiles
	mailer         mailer.Mailer
}

func NewAuthService(log logger.Provider, conn *connection.Connection) *AuthService {
	return &AuthService{
		log,
		accountsDal.NewIdentityFirebaseWithClient(conn.Auth(context.Background())),
		accountsDal.NewProfilesFirestoreWithClient(conn.Firestore),
		mailer.NewMailer(),
	}
}

// NewAuthServiceWithDALs is used to construct the service with explicit
// store implementations.
func NewAuthServiceWithDALs(log logger.Provider, identity accountsDal.Identity, profiles accountsDal.Profiles, m mailer.Mailer) *AuthService {
	return &AuthService{
		log,
		identity,
		profiles,
		m,
	}
}

// SignUp creates the provider account first, then the profile document with
// the user role. The welcome email is best-effort.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*domain.Account, error) {
	l := s.loggerProvider(ctx)

	record, err := s.identity.CreateUser(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, accountsDal.ErrEmailAlreadyExists) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	profile := domain.Profile{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        domain.RoleUser,
	}

	if err := s.profiles.SetProfile(ctx, record.UID, &profile); err != nil {
		l.Warningf("auth: account %s signed up without profile document: %s", record.UID, err)
	}

	if err := s.mailer.SendNotification(&mailer.Notification{
		Subject: "Welcome to DrowsAlert",
		Body:    fmt.Sprintf("Hi %s, your DrowsAlert account is ready.", req.DisplayName),
	}, req.Email); err != nil {
		l.Warningf("auth: welcome email to %s not sent: %s", req.Email, err)
	}

	return &domain.Account{
		ID:          record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Role:        profile.Role,
		Disabled:    record.Disabled,
		CreatedAt:   record.CreatedAt,
		LastSeenAt:  record.LastSeenAt,
	}, nil
}

// Login mints a custom sign-in token for the account registered under email.
// The client exchanges the token with the provider, which enforces the
// disabled flag at exchange time.
func (s *AuthService) Login(ctx context.Context, email string) (string, error) {
	record, err := s.identity.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountsDal.ErrUserNotFound) {
			return "", ErrUnknownEmail
		}

		return "", err
	}

	token, err := s.identity.CustomToken(ctx, record.UID)
	if err != nil {
		return "", fmt.Errorf("custom token for %s: %w", record.UID, err)
	}

	return token, nil
}

// ForgotPassword emails a provider-generated password reset link.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	link, err := s.identity.PasswordResetLink(ctx, email)
	if err != nil {
		if errors.Is(err, accountsDal.ErrUserNotFound) {
			return ErrUnknownEmail
		}

		return err
	}

	return s.mailer.SendNotification(&mailer.Notification{
		Subject: "DrowsAlert password reset",
		Body:    fmt.Sprintf("Reset your password using the link below.\n\n%s", link),
	}, email)
}
