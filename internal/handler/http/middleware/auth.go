package middleware

import (
	"context"
	"net/http"

	"github.com/Chaithanyaistharla/hrm/internal/domain/auth"
	"github.com/Chaithanyaistharla/hrm/internal/domain/user"
	"github.com/Chaithanyaistharla/hrm/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const userContextKey contextKey = "current_user"

// AuthRequired verifies the access token and loads the authenticated user
// into the request context. Inactive accounts are rejected even when their
// token is still valid.
func AuthRequired(ja *jwtauth.JWTAuth, users user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			current, err := users.GetByID(r.Context(), userID)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if !current.IsActive {
				response.HandleError(w, user.ErrUserInactive)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, current)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// UserFromContext returns the authenticated user placed by AuthRequired.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userContextKey).(user.User)
	return u, ok
}
