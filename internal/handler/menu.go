package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/service"
)

type MenuHandler struct {
	catalogService service.CatalogService
}

func NewMenuHandler(catalogService service.CatalogService) *MenuHandler {
	return &MenuHandler{
		catalogService: catalogService,
	}
}

func (h *MenuHandler) ListMenu(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.catalogService.ListMenu(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	item, err := h.catalogService.GetMenuItem(ctx, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) AddMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	var item model.MenuItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.catalogService.AddMenuItem(ctx, &item); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"insertedId": item.ID})
}

func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	var fields dto.MenuItemUpdate
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	modified, err := h.catalogService.UpdateMenuItem(ctx, c.Param("id"), &fields)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{"modifiedCount": modified})
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.catalogService.DeleteMenuItem(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{"deletedCount": deleted})
}

func (h *MenuHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.catalogService.ListReviews(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}
