package server

import (
	"net/http"

	"github.com/mwei-dev/CaseSim_Go/internal/handler"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/user"
)

// SessionAuthMiddleware resolves the bearer session token to a user ID and
// injects it into the request context. Requests without a valid session get 401.
func SessionAuthMiddleware(userService user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			token := handler.BearerToken(r)
			userID, err := userService.Authenticate(r.Context(), token)
			if err != nil {
				log.Warn(LogMsgAuthRejected, "path", r.URL.Path, "has_token", token != "")
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(handler.WithUserID(r.Context(), userID)))
		})
	}
}

// OptionalSessionAuthMiddleware injects the user ID when a valid session token
// is presented but lets anonymous requests through untouched.
func OptionalSessionAuthMiddleware(userService user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handler.BearerToken(r)
			if token != "" {
				if userID, err := userService.Authenticate(r.Context(), token); err == nil {
					r = r.WithContext(handler.WithUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
