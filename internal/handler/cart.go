package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) ListCarts(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.cartService.ListByEmail(ctx, c.QueryParam("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	var item model.CartItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.Add(ctx, &item); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"insertedId": item.ID})
}

func (h *CartHandler) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.cartService.Remove(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}
