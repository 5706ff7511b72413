package mid

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/drowsalert/admin-api/accounts/dal"
	"github.com/drowsalert/admin-api/accounts/dal/mocks"
	"github.com/drowsalert/admin-api/accounts/domain"
	"github.com/drowsalert/admin-api/common"
	"github.com/drowsalert/admin-api/framework/web"
)

type stubVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (v *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	return v.token, v.err
}

func getContext(header string) *gin.Context {
	request := httptest.NewRequest(http.MethodGet, "http://example.com/api/admin/accounts", nil)
	if header != "" {
		request.Header.Set("Authorization", header)
	}

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx
}

func okHandler(ctx *gin.Context) error {
	return nil
}

func TestAuthRequired(t *testing.T) {
	token := &firebaseauth.Token{
		UID: "uid-1",
		Claims: map[string]interface{}{
			"email": "Alice@Example.com",
			"name":  "Alice",
		},
	}

	tests := []struct {
		name     string
		header   string
		verifier stubVerifier
		wantErr  error
	}{
		{
			name:     "verified token passes identity to the context",
			header:   "Bearer good-token",
			verifier: stubVerifier{token: token},
		},
		{
			name:    "missing header is unauthorized",
			wantErr: ErrAuthTokenMissing,
		},
		{
			name:    "non-bearer header is unauthorized",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrAuthTokenInvalid,
		},
		{
			name:     "rejected token is unauthorized",
			header:   "Bearer bad-token",
			verifier: stubVerifier{err: errors.New("token expired")},
			wantErr:  ErrAuthTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := getContext(tt.header)

			err := AuthRequired(&tt.verifier)(okHandler)(ctx)

			if tt.wantErr != nil {
				var webErr *web.Error
				assert.ErrorAs(t, err, &webErr)
				assert.Equal(t, http.StatusUnauthorized, webErr.Status)
				assert.ErrorIs(t, webErr.Err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "uid-1", ctx.GetString(common.CtxKeys.UID))
			assert.Equal(t, "alice@example.com", ctx.GetString(common.CtxKeys.Email))
			assert.Equal(t, "Alice", ctx.GetString(common.CtxKeys.Name))
		})
	}
}

func TestAuthAdmin(t *testing.T) {
	tests := []struct {
		name       string
		uid        string
		on         func(profiles *mocks.Profiles, ctx *gin.Context)
		wantStatus int
	}{
		{
			name: "admin profile passes",
			uid:  "uid-1",
			on: func(profiles *mocks.Profiles, ctx *gin.Context) {
				profiles.On("GetProfile", ctx, "uid-1").
					Return(&domain.Profile{Role: domain.RoleAdmin}, nil)
			},
		},
		{
			name: "user profile is forbidden",
			uid:  "uid-2",
			on: func(profiles *mocks.Profiles, ctx *gin.Context) {
				profiles.On("GetProfile", ctx, "uid-2").
					Return(&domain.Profile{Role: domain.RoleUser}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "missing profile defaults to the user role",
			uid:  "uid-3",
			on: func(profiles *mocks.Profiles, ctx *gin.Context) {
				profiles.On("GetProfile", ctx, "uid-3").
					Return(nil, dal.ErrProfileNotFound)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "profile store outage is an internal error",
			uid:  "uid-4",
			on: func(profiles *mocks.Profiles, ctx *gin.Context) {
				profiles.On("GetProfile", ctx, "uid-4").
					Return(nil, errors.New("rpc error: code = Unavailable"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unauthenticated request is rejected",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := getContext("")
			if tt.uid != "" {
				ctx.Set(common.CtxKeys.UID, tt.uid)
			}

			profiles := mocks.Profiles{}
			if tt.on != nil {
				tt.on(&profiles, ctx)
			}

			err := AuthAdmin(&profiles)(okHandler)(ctx)

			if tt.wantStatus != 0 {
				var webErr *web.Error
				assert.ErrorAs(t, err, &webErr)
				assert.Equal(t, tt.wantStatus, webErr.Status)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, domain.RoleAdmin, ctx.GetString(common.CtxKeys.Role))
		})
	}
}
