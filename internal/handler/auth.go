package handler

import (
	"errors"
	"net/http"

	"course-market-api/internal/dto"
	"course-market-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) SendOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone is required")
	}

	if err := h.authService.SendOTP(ctx, req.Phone); err != nil {
		if errors.Is(err, service.ErrOTPThrottled) {
			return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "code sent"})
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.authService.VerifyOTP(ctx, req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrOTPInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
