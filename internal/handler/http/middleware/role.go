package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay-hq/sitepay-backend-go/internal/handler/http/response"
)

// RequireRole allows the request through only when the token's role is one
// of the listed roles. Admin is always allowed.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]bool, len(roles)+1)
	for _, r := range roles {
		allowed[r] = true
	}
	allowed[user.RoleAdmin] = true

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}
			roleStr, ok := claims["role"].(string)
			if !ok || !allowed[user.Role(roleStr)] {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole()(next)
}
