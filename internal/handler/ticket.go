package handler

import (
	"errors"
	"net/http"
	"strconv"

	"course-market-api/internal/dto"
	"course-market-api/internal/middleware"
	"course-market-api/internal/service"

	"github.com/labstack/echo/v4"
)

type TicketHandler struct {
	ticketService service.TicketService
}

func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

func (h *TicketHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	ticket, err := h.ticketService.Create(ctx, middleware.UserID(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	tickets, err := h.ticketService.List(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ticketID(c)
	if err != nil {
		return err
	}

	ticket, err := h.ticketService.Get(ctx, middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) AddMessage(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := ticketID(c)
	if err != nil {
		return err
	}

	var req dto.TicketMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	msg, err := h.ticketService.AddUserMessage(ctx, middleware.UserID(c), id, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, msg)
}

func ticketID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid ticket id")
	}
	return uint(id), nil
}
