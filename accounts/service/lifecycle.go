package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/qmuntal/stateless"

	accountsDal "github.com/drowsalert/admin-api/accounts/dal"
	"github.com/drowsalert/admin-api/accounts/domain"
)

// Create creates the account in the identity provider first, then writes the
// profile document. A failed document write leaves the account orphaned in
// the provider; it is reported as a warning, not rolled back, since rollback
// would mean deleting a just-created identity.
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*domain.Account, error) {
	l := s.loggerProvider(ctx)

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	record, err := s.identity.CreateUser(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderCreateFailed, err)
	}

	if err := s.identity.SetRoleClaim(ctx, record.UID, role); err != nil {
		l.Warningf("lifecycle: mirrored role claim not set for %s: %s", record.UID, err)
	}

	profile := domain.Profile{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        role,
	}

	if err := s.profiles.SetProfile(ctx, record.UID, &profile); err != nil {
		l.Warningf("lifecycle: account %s orphaned, profile document write failed: %s", record.UID, err)
	}

	account := mergeAccount(record, &profile)

	return &account, nil
}

// Promote updates the profile document role to admin. Repeated calls are
// no-ops once the role is already admin.
func (s *AccountService) Promote(ctx context.Context, uid string) error {
	if err := s.profiles.UpdateRole(ctx, uid, domain.RoleAdmin); err != nil {
		if errors.Is(err, accountsDal.ErrProfileNotFound) {
			return ErrAccountNotFound
		}

		return err
	}

	return nil
}

// Update updates the identity-provider profile fields. The document-store
// mirror update is best-effort: the provider is the source of truth for
// display fields, so a failed mirror is logged and the operation succeeds.
func (s *AccountService) Update(ctx context.Context, uid, displayName, email string) (*domain.Account, error) {
	l := s.loggerProvider(ctx)

	record, err := s.identity.UpdateUser(ctx, uid, displayName, email)
	if err != nil {
		if errors.Is(err, accountsDal.ErrUserNotFound) {
			return nil, ErrAccountNotFound
		}

		return nil, fmt.Errorf("%w: %s", ErrProviderUpdateFailed, err)
	}

	if err := s.profiles.UpdateDisplayFields(ctx, uid, displayName, email); err != nil {
		l.Warningf("lifecycle: profile document mirror update failed for %s: %s", uid, err)
	}

	profile, err := s.profiles.GetProfile(ctx, uid)
	if err != nil {
		profile = nil
	}

	account := mergeAccount(record, profile)

	return &account, nil
}

// Disable flips the identity-provider disabled flag on. Disabling an already
// disabled account is a no-op success.
func (s *AccountService) Disable(ctx context.Context, uid string) error {
	record, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, accountsDal.ErrUserNotFound) {
			return ErrAccountNotFound
		}

		return err
	}

	return s.fireTransition(ctx, record, domain.TriggerDisable)
}

// EnableByEmail flips the identity-provider disabled flag off for the
// account with the given email. Enabling an active account is a no-op
// success.
func (s *AccountService) EnableByEmail(ctx context.Context, email string) error {
	record, err := s.identity.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountsDal.ErrUserNotFound) {
			return ErrAccountNotFound
		}

		return err
	}

	return s.fireTransition(ctx, record, domain.TriggerEnable)
}

// Delete removes the account from the identity provider, then deletes the
// profile document. Deletion is irreversible. A failed document delete
// leaves orphaned profile data behind; once the account cannot authenticate
// that data has no further consumer, so the failure is logged, not surfaced.
func (s *AccountService) Delete(ctx context.Context, uid string) error {
	record, err := s.identity.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, accountsDal.ErrUserNotFound) {
			return ErrAccountNotFound
		}

		return err
	}

	return s.fireTransition(ctx, record, domain.TriggerDelete)
}

// fireTransition runs one lifecycle trigger through the account state
// machine. Store writes hang off the entry actions, so an illegal edge never
// touches either store and an idempotent edge performs no write at all.
func (s *AccountService) fireTransition(ctx context.Context, record *domain.ProviderRecord, trigger string) error {
	l := s.loggerProvider(ctx)
	uid := record.UID

	machine := stateless.NewStateMachine(domain.StateOf(record.Disabled))

	machine.Configure(domain.StateActive).
		OnEntryFrom(domain.TriggerEnable, func(ctx context.Context, _ ...interface{}) error {
			return s.identity.SetDisabled(ctx, uid, false)
		}).
		Permit(domain.TriggerDisable, domain.StateDisabled).
		Permit(domain.TriggerDelete, domain.StateDeleted).
		Ignore(domain.TriggerEnable)

	machine.Configure(domain.StateDisabled).
		OnEntryFrom(domain.TriggerDisable, func(ctx context.Context, _ ...interface{}) error {
			return s.identity.SetDisabled(ctx, uid, true)
		}).
		Permit(domain.TriggerEnable, domain.StateActive).
		Permit(domain.TriggerDelete, domain.StateDeleted).
		Ignore(domain.TriggerDisable)

	machine.Configure(domain.StateDeleted).
		OnEntryFrom(domain.TriggerDelete, func(ctx context.Context, _ ...interface{}) error {
			if err := s.identity.DeleteUser(ctx, uid); err != nil {
				return err
			}

			if err := s.profiles.DeleteProfile(ctx, uid); err != nil {
				l.Warningf("lifecycle: profile document for deleted account %s left orphaned: %s", uid, err)
			}

			return nil
		})

	if err := machine.FireCtx(ctx, trigger); err != nil {
		return fmt.Errorf("lifecycle transition %s failed for account %s: %w", trigger, uid, err)
	}

	return nil
}
