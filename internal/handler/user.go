package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/middleware"
	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

// CheckAdmin answers the self-service "am I an admin" probe. The path email
// must match the token email regardless of role.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.Param("email")
	claims := middleware.ClaimsFrom(c)
	if claims == nil || email != claims.Email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	isAdmin, err := h.userService.IsAdmin(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: isAdmin})
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	insertedID, err := h.userService.Register(ctx, &user)
	if err != nil {
		return err
	}
	if insertedID == "" {
		return c.JSON(http.StatusOK, dto.RegisterResponse{
			Message:    "User already exists",
			InsertedID: nil,
		})
	}

	return c.JSON(http.StatusOK, dto.RegisterResponse{InsertedID: &insertedID})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.userService.Delete(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	modified, err := h.userService.PromoteToAdmin(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{"modifiedCount": modified})
}
