package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drowsalert/admin-api/accounts/dal/mocks"
	"github.com/drowsalert/admin-api/accounts/domain"
	"github.com/drowsalert/admin-api/logger"
)

func TestAccountService_ListAccounts(t *testing.T) {
	type fields struct {
		identity mocks.Identity
		profiles mocks.Profiles
	}

	ctx := context.Background()

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	active := &domain.ProviderRecord{
		UID:         "uid-1",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		CreatedAt:   createdAt,
	}
	disabled := &domain.ProviderRecord{
		UID:      "uid-2",
		Email:    "bob@example.com",
		Disabled: true,
	}
	noProfile := &domain.ProviderRecord{
		UID:   "uid-3",
		Email: "carol@example.com",
	}

	tests := []struct {
		name        string
		on          func(*fields)
		want        []domain.Account
		expectedErr error
	}{
		{
			name: "merges provider records with profile roles and skips disabled",
			on: func(f *fields) {
				f.identity.On("ListUsers", ctx, "").
					Return([]*domain.ProviderRecord{active, disabled, noProfile}, "", nil)
				f.profiles.On("GetProfiles", ctx, []string{"uid-1", "uid-3"}).
					Return(map[string]*domain.Profile{
						"uid-1": {Email: "alice@example.com", DisplayName: "Alice", Role: domain.RoleAdmin},
					}, nil)
			},
			want: []domain.Account{
				{
					ID:          "uid-1",
					Email:       "alice@example.com",
					DisplayName: "Alice",
					Role:        domain.RoleAdmin,
					CreatedAt:   createdAt,
				},
				{
					ID:    "uid-3",
					Email: "carol@example.com",
					Role:  domain.RoleUser,
				},
			},
		},
		{
			name: "provider scan failure returns no partial listing",
			on: func(f *fields) {
				f.identity.On("ListUsers", ctx, "").
					Return(nil, "", errors.New("provider unavailable"))
			},
			expectedErr: ErrDirectoryUnavailable,
		},
		{
			name: "profile lookup failure returns no partial listing",
			on: func(f *fields) {
				f.identity.On("ListUsers", ctx, "").
					Return([]*domain.ProviderRecord{active}, "", nil)
				f.profiles.On("GetProfiles", ctx, []string{"uid-1"}).
					Return(nil, errors.New("document store unavailable"))
			},
			expectedErr: ErrDirectoryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{}
			tt.on(&f)

			s := NewAccountServiceWithDALs(logger.FromContext, &f.identity, &f.profiles)

			got, err := s.ListAccounts(ctx)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountService_ListAccountsRoleClaimNeverWins(t *testing.T) {
	ctx := context.Background()

	records := []*domain.ProviderRecord{
		{UID: "uid-1", Email: "alice@example.com", RoleClaim: domain.RoleAdmin},
		{UID: "uid-2", Email: "bob@example.com", RoleClaim: domain.RoleAdmin},
	}

	identity := mocks.Identity{}
	identity.On("ListUsers", ctx, "").Return(records, "", nil)

	profiles := mocks.Profiles{}
	profiles.On("GetProfiles", ctx, []string{"uid-1", "uid-2"}).
		Return(map[string]*domain.Profile{
			"uid-1": {Email: "alice@example.com", Role: domain.RoleUser},
		}, nil)

	s := NewAccountServiceWithDALs(logger.FromContext, &identity, &profiles)

	got, err := s.ListAccounts(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Account{
		{ID: "uid-1", Email: "alice@example.com", Role: domain.RoleUser},
		{ID: "uid-2", Email: "bob@example.com", Role: domain.RoleUser},
	}, got)
}

func TestAccountService_ListDisabledAccounts(t *testing.T) {
	ctx := context.Background()

	pageOne := []*domain.ProviderRecord{
		{UID: "uid-1", Email: "alice@example.com"},
		{UID: "uid-2", Email: "bob@example.com", Disabled: true},
	}
	pageTwo := []*domain.ProviderRecord{
		{UID: "uid-3", Email: "carol@example.com", Disabled: true},
	}

	identity := mocks.Identity{}
	profiles := mocks.Profiles{}

	identity.On("ListUsers", ctx, "").Return(pageOne, "next-page", nil)
	identity.On("ListUsers", ctx, "next-page").Return(pageTwo, "", nil)

	profiles.On("GetProfiles", ctx, []string{"uid-2"}).
		Return(map[string]*domain.Profile{}, nil)
	profiles.On("GetProfiles", ctx, []string{"uid-3"}).
		Return(map[string]*domain.Profile{
			"uid-3": {Role: domain.RoleAdmin},
		}, nil)

	s := NewAccountServiceWithDALs(logger.FromContext, &identity, &profiles)

	got, err := s.ListDisabledAccounts(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Account{
		{ID: "uid-2", Email: "bob@example.com", Role: domain.RoleUser, Disabled: true},
		{ID: "uid-3", Email: "carol@example.com", Role: domain.RoleAdmin, Disabled: true},
	}, got)

	identity.AssertExpectations(t)
}
