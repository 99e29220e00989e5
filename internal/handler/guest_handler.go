package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/santikahms/hotel-service/internal/dto"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/internal/service"
)

type GuestHandler struct {
	svc service.GuestService
}

func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

func (h *GuestHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/guests", h.Create)
	g.GET("/guests", h.List)
	g.GET("/guests/:id", h.Get)
	g.PUT("/guests/:id", h.Update)
	g.DELETE("/guests/:id", h.Delete)
}

func (h *GuestHandler) Create(c echo.Context) error {
	var req dto.CreateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthDate, err := parseOptionalDate(req.BirthDate, "birth_date")
	if err != nil {
		return err
	}

	guest, err := h.svc.Create(c.Request().Context(), service.CreateGuestInput{
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		IDType:              req.IDType,
		IDNumber:            req.IDNumber,
		Nationality:         req.Nationality,
		BirthDate:           birthDate,
		Notes:               req.Notes,
		IsVIP:               req.IsVIP,
		PreferredRoomTypeID: req.PreferredRoomTypeID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) List(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	filter := repository.GuestFilter{
		Search:  c.QueryParam("search"),
		VIPOnly: c.QueryParam("vip") == "true",
		Limit:   limit,
		Offset:  offset,
	}

	guests, total, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := dto.GuestListResponse{
		Guests: make([]dto.GuestResponse, len(guests)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i, g := range guests {
		resp.Guests[i] = dto.ToGuestResponse(&g)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GuestHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	guest, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := service.UpdateGuestInput{
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		IDType:              req.IDType,
		IDNumber:            req.IDNumber,
		Nationality:         req.Nationality,
		Notes:               req.Notes,
		IsVIP:               req.IsVIP,
		PreferredRoomTypeID: req.PreferredRoomTypeID,
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate, "birth_date")
		if err != nil {
			return err
		}
		input.BirthDate = &birthDate
	}

	guest, err := h.svc.Update(c.Request().Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *GuestHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrGuestNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGuestHasHistory):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}
