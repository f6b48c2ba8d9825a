package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/pkg/metrics"
)

// OwnerLookup returns the id of the user owning resource id.
type OwnerLookup func(ctx context.Context, id int64) (int64, error)

// RequireSelf restricts USER-only callers to the resource whose {id} equals
// their own id.
func RequireSelf(resource string) echo.MiddlewareFunc {
	return guard(resource, func(_ context.Context, id int64) (int64, error) {
		return id, nil
	})
}

// RequireOwnership restricts USER-only callers to resources they authored.
// Lookup errors, including NotFound, are returned as they are.
func RequireOwnership(resource string, lookup OwnerLookup) echo.MiddlewareFunc {
	return guard(resource, lookup)
}

func guard(resource string, owner OwnerLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.Unauthenticated()
			}
			if p.IsElevated() {
				return next(c)
			}

			id, err := PathID(c)
			if err != nil {
				return err
			}
			ownerID, err := owner(c.Request().Context(), id)
			if err != nil {
				return err
			}
			if ownerID != p.ID {
				metrics.OwnershipDenialsTotal.WithLabelValues(resource).Inc()
				return domain.AccessDenied(p.ID, resource, id)
			}
			return next(c)
		}
	}
}
