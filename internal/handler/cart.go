package handler

import (
	"errors"
	"net/http"

	"course-market-api/internal/dto"
	"course-market-api/internal/middleware"
	"course-market-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
}

func NewCartHandler(cartService service.CartService, checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

func (h *CartHandler) View(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.View(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	item, err := h.cartService.Add(ctx, middleware.UserID(c), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound),
			errors.Is(err, service.ErrAlreadyInCart),
			errors.Is(err, service.ErrAlreadyPurchased),
			errors.Is(err, service.ErrRegistrationClosed):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "added to cart",
		"item_id": item.ID,
	})
}

func (h *CartHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cartService.Remove(ctx, middleware.UserID(c), req.ProductID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "removed from cart"})
}

func (h *CartHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.Checkout(ctx, middleware.UserID(c), &req)
	if err != nil {
		var enrolled *service.AlreadyEnrolledError
		switch {
		case errors.Is(err, service.ErrProfileIncomplete),
			errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrInvalidDiscount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &enrolled):
			return echo.NewHTTPError(http.StatusBadRequest, enrolled.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, result)
}
