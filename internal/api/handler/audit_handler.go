package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// auditEntities maps the entity query values to stored entity names.
var auditEntities = map[string]string{
	"user":          domain.EntityUser,
	"news":          domain.EntityNews,
	"comment":       domain.EntityComment,
	"news-category": domain.EntityCategory,
}

type AuditHandler struct {
	audit ports.AuditService
}

func NewAuditHandler(audit ports.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List returns the newest audit events first.
//
// @Summary      Mutation history
// @Tags         audit
// @Produce      json
// @Security     BasicAuth
// @Param        entity    query     string  false  "user, news, comment or news-category"
// @Param        entityId  query     int     false  "Entity id"
// @Param        limit     query     int     false  "Maximum events (default 50, max 500)"
// @Success      200       {object}  auditListResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /api/v2/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	var q ports.AuditQuery
	if err := middleware.ParamError(echo.QueryParamsBinder(c).
		Int64("entityId", &q.EntityID).
		Int("limit", &q.Limit).
		BindError()); err != nil {
		return err
	}
	if raw := c.QueryParam("entity"); raw != "" {
		entity, ok := auditEntities[raw]
		if !ok {
			return domain.Validation(fmt.Sprintf("Invalid value '%s' for parameter 'entity'", raw))
		}
		q.Entity = entity
	}

	events, err := h.audit.History(c.Request().Context(), q)
	if err != nil {
		return err
	}
	resp := auditListResponse{Events: make([]auditEventResponse, len(events))}
	for i, e := range events {
		resp.Events[i] = toAuditEventResponse(e)
	}
	return c.JSON(http.StatusOK, resp)
}
