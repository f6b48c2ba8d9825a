package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

const idempotencyHeader = "Idempotency-Key"

// principal returns the authenticated caller. Its absence means the route
// was registered without Authenticate.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, domain.Unauthenticated()
	}
	return p, nil
}

// bind decodes the JSON body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domain.Validation("Malformed request body")
	}
	return c.Validate(req)
}

// created answers 201 with a Location header and, for legacy routes, a body.
func created(c echo.Context, path string, id int64, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", strings.TrimSuffix(path, "/"), id))
	if body == nil {
		return c.NoContent(http.StatusCreated)
	}
	return c.JSON(http.StatusCreated, body)
}

// pageParams reads the mandatory pageSize and pageNumber query parameters.
func pageParams(c echo.Context) (ports.Page, error) {
	var page ports.Page
	if err := middleware.ParamError(echo.QueryParamsBinder(c).
		Int("pageSize", &page.Size).
		Int("pageNumber", &page.Number).
		BindError()); err != nil {
		return page, err
	}

	query := c.QueryParams()
	var msgs []string
	switch {
	case !query.Has("pageSize"):
		msgs = append(msgs, "Page size must be specified")
	case page.Size <= 0:
		msgs = append(msgs, "Page size must be > 0")
	}
	switch {
	case !query.Has("pageNumber"):
		msgs = append(msgs, "Page number must be specified")
	case page.Number < 0:
		msgs = append(msgs, "Page number must be >= 0")
	}
	if len(msgs) > 0 {
		return page, domain.Validation(msgs...)
	}
	return page, nil
}
