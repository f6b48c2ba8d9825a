package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/core/domain"
)

// RequireRoles lets the request through when the principal holds at least
// one of roles. It must run after Authenticate.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.Unauthenticated()
			}
			if !p.HasAnyRole(roles...) {
				return domain.Forbidden()
			}
			return next(c)
		}
	}
}
