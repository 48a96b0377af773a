package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/user"
	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/response"
)

func requireRole(next http.Handler, want user.Role, denied error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, denied)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || user.Role(roleStr) != want {
			response.Forbidden(w, denied.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnly restricts a route group to the platform operator.
func AdminOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleAdmin, user.ErrAdminAccessRequired)
}

// OrganizationOnly restricts a route group to organization administrators.
func OrganizationOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleOrganization, user.ErrOrgAccessRequired)
}

// EmployeeOnly restricts a route group to invited employees.
func EmployeeOnly(next http.Handler) http.Handler {
	return requireRole(next, user.RoleEmployee, user.ErrEmployeeAccessRequired)
}
