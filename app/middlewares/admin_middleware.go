package middlewares

import (
	"log"
	"net/http"

	"github.com/red-fox-ru/techshop/app/helpers"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/red-fox-ru/techshop/app/repositories"
)

func AdminAuthMiddleware(userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
			if !ok || userID == "" {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AdminAuthMiddleware: failed to find user %s: %v", userID, err)
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			if user.Role != models.RoleAdmin {
				log.Printf("AdminAuthMiddleware: user %s (%s) attempted to access admin API without admin role", user.ID, user.Username)
				http.Error(w, "admin role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
