package mid

import (
	"context"
	"errors"
	"net/http"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	accountsDal "github.com/drowsalert/admin-api/accounts/dal"
	"github.com/drowsalert/admin-api/accounts/domain"
	"github.com/drowsalert/admin-api/common"
	"github.com/drowsalert/admin-api/framework/web"
	"github.com/drowsalert/admin-api/logger"
)

// Auth errors
var (
	ErrAuthTokenMissing = errors.New("no authorization header found")
	ErrAuthTokenInvalid = errors.New("invalid authorization token")
	ErrNotAdmin         = errors.New("admin role required")
)

// TokenVerifier verifies a bearer ID token with the identity provider.
// Satisfied by the provider's auth client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// AuthRequired middleware authenticates requests coming from the client app.
// The bearer token is verified by the identity provider; verified identity
// fields are stored on the request context.
func AuthRequired(verifier TokenVerifier) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			idToken, err := bearerToken(ctx)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			token, err := verifier.VerifyIDToken(ctx, idToken)
			if err != nil {
				return web.NewRequestError(ErrAuthTokenInvalid, http.StatusUnauthorized)
			}

			ctx.Set(common.CtxKeys.Claims, token.Claims)
			ctx.Set(common.CtxKeys.UID, token.UID)

			if email, ok := token.Claims["email"].(string); ok {
				ctx.Set(common.CtxKeys.Email, strings.ToLower(email))
			}

			if name, ok := token.Claims["name"].(string); ok {
				ctx.Set(common.CtxKeys.Name, name)
			}

			l.SetLabels(map[string]string{
				"email": ctx.GetString(common.CtxKeys.Email),
				"uid":   token.UID,
			})

			return handler(ctx)
		}

		return h
	}

	return f
}

// AuthAdmin middleware validates that the authenticated account holds the
// admin role. The profile document is the source of truth for the role, not
// the token's own claims.
func AuthAdmin(profiles accountsDal.Profiles) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			uid := ctx.GetString(common.CtxKeys.UID)
			if uid == "" {
				return web.NewRequestError(ErrAuthTokenMissing, http.StatusUnauthorized)
			}

			role := domain.RoleUser

			profile, err := profiles.GetProfile(ctx, uid)

			switch {
			case err == nil:
				if profile.Role != "" {
					role = profile.Role
				}
			case errors.Is(err, accountsDal.ErrProfileNotFound):
				// Accounts without a profile document keep the user role.
			default:
				return web.NewRequestError(err, http.StatusInternalServerError)
			}

			if role != domain.RoleAdmin {
				return web.NewRequestError(ErrNotAdmin, http.StatusForbidden)
			}

			ctx.Set(common.CtxKeys.Role, role)

			return handler(ctx)
		}

		return h
	}

	return f
}

func bearerToken(ctx *gin.Context) (string, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrAuthTokenMissing
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrAuthTokenInvalid
	}

	return strings.TrimPrefix(authHeader, "Bearer "), nil
}
