package middlewares

import (
	"context"
	"net/http"

	"github.com/red-fox-ru/techshop/app/helpers"
	"github.com/red-fox-ru/techshop/app/utils/sessions"
)

// UserSessionMiddleware copies the session's user id into the request
// context. The session store is the identity boundary; handlers only ever
// see the context value.
func UserSessionMiddleware(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := store.GetUserID(r)
			if userID != "" {
				ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects requests without an authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
		if !ok || userID == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
