package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
	"github.com/newsportal/news-api/internal/pkg/metrics"
)

// BasicChallenge is sent in WWW-Authenticate on every 401.
const BasicChallenge = `Basic realm="news-api"`

const principalKey = "principal"

// Authenticate accepts HTTP Basic credentials or a bearer token, and stores
// the resulting principal in both the echo context and the request context.
func Authenticate(authn ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			header := req.Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
				return domain.Unauthenticated()
			}

			var (
				p   *domain.Principal
				err error
			)
			scheme, credentials, _ := strings.Cut(header, " ")
			switch {
			case strings.EqualFold(scheme, "basic"):
				username, password, ok := req.BasicAuth()
				if !ok {
					metrics.AuthFailuresTotal.WithLabelValues("malformed").Inc()
					return domain.Unauthenticated()
				}
				p, err = authn.VerifyBasic(req.Context(), username, password)
				if err != nil {
					return authFailure("bad_credentials", err)
				}
			case strings.EqualFold(scheme, "bearer") && credentials != "":
				p, err = authn.VerifyToken(req.Context(), strings.TrimSpace(credentials))
				if err != nil {
					return authFailure("bad_token", err)
				}
			default:
				metrics.AuthFailuresTotal.WithLabelValues("malformed").Inc()
				return domain.Unauthenticated()
			}

			c.Set(principalKey, *p)
			c.SetRequest(req.WithContext(domain.WithPrincipal(req.Context(), *p)))
			return next(c)
		}
	}
}

// authFailure keeps infrastructure errors (database down) out of the 401 path.
func authFailure(reason string, err error) error {
	if errors.Is(err, domain.ErrUnauthenticated) {
		metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	}
	return err
}

// PrincipalFrom returns the principal set by Authenticate.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
