package service

import (
	"context"

	"github.com/drowsalert/admin-api/accounts/domain"
)

// ListAccounts merges the identity provider's enabled records with their
// profile documents. Records whose provider disabled flag is set are
// excluded. The merge is all-or-nothing per page: if either store fails,
// no partial listing is returned.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.listAccounts(ctx, false)
}

// ListDisabledAccounts returns only the accounts whose provider disabled
// flag is set, paginating the provider scan until the continuation token is
// exhausted.
func (s *AccountService) ListDisabledAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.listAccounts(ctx, true)
}

func (s *AccountService) listAccounts(ctx context.Context, disabled bool) ([]domain.Account, error) {
	l := s.loggerProvider(ctx)

	var accounts []domain.Account

	pageToken := ""

	for {
		records, nextPageToken, err := s.identity.ListUsers(ctx, pageToken)
		if err != nil {
			l.Errorf("directory: identity provider scan failed: %s", err)
			return nil, ErrDirectoryUnavailable
		}

		page, err := s.mergePage(ctx, records, disabled)
		if err != nil {
			l.Errorf("directory: page merge failed: %s", err)
			return nil, ErrDirectoryUnavailable
		}

		accounts = append(accounts, page...)

		if nextPageToken == "" {
			break
		}

		pageToken = nextPageToken
	}

	return accounts, nil
}

// mergePage joins one provider page against the profile documents. The
// provider record wins for the disabled flag and display fields; the profile
// document wins for the role, defaulting to "user" when the document is
// missing.
func (s *AccountService) mergePage(ctx context.Context, records []*domain.ProviderRecord, disabled bool) ([]domain.Account, error) {
	matched := make([]*domain.ProviderRecord, 0, len(records))
	uids := make([]string, 0, len(records))

	for _, record := range records {
		if record.Disabled != disabled {
			continue
		}

		matched = append(matched, record)
		uids = append(uids, record.UID)
	}

	if len(matched) == 0 {
		return nil, nil
	}

	profiles, err := s.profiles.GetProfiles(ctx, uids)
	if err != nil {
		return nil, err
	}

	l := s.loggerProvider(ctx)

	accounts := make([]domain.Account, 0, len(matched))

	for _, record := range matched {
		account := mergeAccount(record, profiles[record.UID])

		// The provider role claim is only a mirror of the profile document.
		// A stale claim is reported but never served.
		if record.RoleClaim != "" && record.RoleClaim != account.Role {
			l.Warningf("directory: account %s carries role claim %q, profile role is %q", record.UID, record.RoleClaim, account.Role)
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

func mergeAccount(record *domain.ProviderRecord, profile *domain.Profile) domain.Account {
	role := domain.RoleUser
	if profile != nil && profile.Role != "" {
		role = profile.Role
	}

	return domain.Account{
		ID:          record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Role:        role,
		Disabled:    record.Disabled,
		CreatedAt:   record.CreatedAt,
		LastSeenAt:  record.LastSeenAt,
	}
}
