package service

import "errors"

var (
	// ErrDirectoryUnavailable is returned when either store cannot serve a
	// full directory page. Partial pages are never returned.
	ErrDirectoryUnavailable = errors.New("account directory unavailable")

	// ErrProviderCreateFailed is returned when the identity provider rejects
	// an account creation (duplicate email, weak password).
	ErrProviderCreateFailed = errors.New("identity provider account creation failed")

	// ErrProviderUpdateFailed is returned when the identity provider rejects
	// a profile update.
	ErrProviderUpdateFailed = errors.New("identity provider account update failed")

	// ErrAccountNotFound is returned when the target account does not exist
	// in the identity provider.
	ErrAccountNotFound = errors.New("account not found")
)
