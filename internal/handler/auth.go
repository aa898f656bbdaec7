package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-boss-api/internal/auth"
	"bistro-boss-api/internal/dto"
)

type AuthHandler struct {
	tokenManager *auth.Manager
}

func NewAuthHandler(tokenManager *auth.Manager) *AuthHandler {
	return &AuthHandler{
		tokenManager: tokenManager,
	}
}

func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req dto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	token, err := h.tokenManager.Sign(req.Email, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
