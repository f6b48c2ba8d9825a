package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/ports"
	"github.com/newsportal/news-api/internal/pkg/metrics"
)

// CategoryHandler serves /api/v2/news-category. The legacy surface reuses
// its read endpoints.
type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Filter lists categories page by page.
//
// @Summary      List news categories
// @Tags         news-categories
// @Produce      json
// @Security     BasicAuth
// @Param        pageSize    query     int  true  "Page size (> 0)"
// @Param        pageNumber  query     int  true  "Zero-based page number"
// @Success      200         {object}  categoryListResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Router       /api/v2/news-category/filter [get]
func (h *CategoryHandler) Filter(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	list, err := h.categories.FilterBy(c.Request().Context(), page)
	if err != nil {
		return err
	}
	resp := categoryListResponse{NewsCategories: make([]categoryResponse, len(list))}
	for i := range list {
		resp.NewsCategories[i] = toCategoryResponse(&list[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one category.
//
// @Summary      Get a news category by id
// @Tags         news-categories
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/news-category/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	category, err := h.categories.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Create adds a category.
//
// @Summary      Create a news category
// @Tags         news-categories
// @Accept       json
// @Security     BasicAuth
// @Param        body  body  categoryRequest  true  "Category"
// @Success      201   "Location header points at the new category"
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v2/news-category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	category, err := h.categories.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("news_category").Inc()
	return created(c, "/api/v2/news-category", category.ID, nil)
}

// Update renames a category.
//
// @Summary      Update a news category
// @Tags         news-categories
// @Accept       json
// @Security     BasicAuth
// @Param        id    path  int                    true  "Category id"
// @Param        body  body  categoryUpdateRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v2/news-category/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req categoryUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.categories.Update(c.Request().Context(), ports.UpdateCategoryInput{ID: id, Name: req.Name}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a category no article uses.
//
// @Summary      Delete a news category
// @Tags         news-categories
// @Security     BasicAuth
// @Param        id  path  int  true  "Category id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/v2/news-category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	if err := h.categories.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("news_category").Inc()
	return c.NoContent(http.StatusNoContent)
}
