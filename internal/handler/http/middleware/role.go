package middleware

import (
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// PrivilegedOnly restricts a route to hr and admin actors. Finer gates,
// like HR being unable to act on admin accounts, live in the services.
func PrivilegedOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !employee.Role(role).IsPrivileged() {
			response.HandleError(w, employee.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
