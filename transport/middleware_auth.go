package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/railway-reservation/application/user"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	utilsContext "github.com/muhammadheryan/railway-reservation/utils/context"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (browsing, login, register, swagger) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok || token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// AdminMiddleware lets only admin accounts through. It runs after AuthMiddleware.
func AdminMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utilsContext.GetUserID(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			u, err := userApp.GetUser(r.Context(), userID)
			if err != nil {
				writeError(w, err)
				return
			}
			if !u.IsAdmin {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			ctx := utilsContext.WithActor(r.Context(), model.Actor{UserID: u.ID, IsAdmin: true})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var publicPaths = map[string]bool{
	"/login":          true,
	"/register":       true,
	"/trains":         true,
	"/search":         true,
	"/assistant/chat": true,
	"/metrics":        true,
	"/healthz":        true,
}

var publicPrefixes = []string{"/swagger/", "/internal/", "/train/", "/availability/"}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if publicPaths[path] {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
