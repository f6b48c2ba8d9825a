package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
	"github.com/newsportal/news-api/internal/pkg/metrics"
)

// UserHandler serves /api/v2/user.
type UserHandler struct {
	users ports.UserService
	authn ports.AuthService
}

func NewUserHandler(users ports.UserService, authn ports.AuthService) *UserHandler {
	return &UserHandler{users: users, authn: authn}
}

// Filter lists accounts page by page.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Param        pageSize    query     int  true  "Page size (> 0)"
// @Param        pageNumber  query     int  true  "Zero-based page number"
// @Success      200         {object}  userListResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Router       /api/v2/user/filter [get]
func (h *UserHandler) Filter(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	users, err := h.users.FilterBy(c.Request().Context(), page)
	if err != nil {
		return err
	}
	resp := userListResponse{Users: make([]userResponse, len(users))}
	for i := range users {
		resp.Users[i] = toUserResponse(&users[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one account.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v2/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	user, err := h.users.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// SignUp creates an account. It is the only unauthenticated v2 route.
//
// @Summary      Sign up
// @Tags         users
// @Accept       json
// @Param        body  body  userRequest  true  "Account details"
// @Success      201   "Location header points at the new user"
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v2/user/sign-up [post]
func (h *UserHandler) SignUp(c echo.Context) error {
	var req userRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	user, err := h.users.CreateNewAccount(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	return created(c, "/api/v2/user", user.ID, nil)
}

// Update merges the present fields into the account. Changing roles
// requires ADMIN.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Security     BasicAuth
// @Param        id    path  int                true  "User id"
// @Param        body  body  userUpdateRequest  true  "Fields to change"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v2/user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	var req userUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if len(req.Roles) > 0 {
		p, err := principal(c)
		if err != nil {
			return err
		}
		if !p.HasRole(domain.RoleAdmin) {
			return domain.Forbidden()
		}
	}
	_, err = h.users.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes the account with everything it authored.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BasicAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v2/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := middleware.PathID(c)
	if err != nil {
		return err
	}
	if err := h.users.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("user").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Token exchanges the caller's credentials for a bearer token.
//
// @Summary      Issue a bearer token
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v2/user/token [post]
func (h *UserHandler) Token(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	token, expiresAt, err := h.authn.IssueToken(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token, ExpiresAt: expiresAt})
}
