package handler

import (
	"errors"
	"net/http"
	"strconv"

	"course-market-api/internal/dto"
	"course-market-api/internal/middleware"
	"course-market-api/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserHandler struct {
	accountService      service.AccountService
	orderService        service.OrderService
	enrollmentService   service.EnrollmentService
	notificationService service.NotificationService
}

func NewUserHandler(
	accountService service.AccountService,
	orderService service.OrderService,
	enrollmentService service.EnrollmentService,
	notificationService service.NotificationService,
) *UserHandler {
	return &UserHandler{
		accountService:      accountService,
		orderService:        orderService,
		enrollmentService:   enrollmentService,
		notificationService: notificationService,
	}
}

func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	me, err := h.accountService.Me(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, me)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.accountService.Profile(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	profile, err := h.accountService.UpdateProfile(ctx, middleware.UserID(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Orders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.History(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *UserHandler) MyCourses(c echo.Context) error {
	ctx := c.Request().Context()

	courses, err := h.enrollmentService.MyCourses(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courses)
}

func (h *UserHandler) Notifications(c echo.Context) error {
	ctx := c.Request().Context()

	notifications, err := h.notificationService.List(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notifications)
}

func (h *UserHandler) MarkNotificationRead(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}

	if err := h.notificationService.MarkRead(ctx, middleware.UserID(c), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "notification not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "marked as read"})
}
