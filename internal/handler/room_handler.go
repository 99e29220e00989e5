package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/santikahms/hotel-service/internal/dto"
	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/internal/service"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(svc service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/room-types", h.CreateRoomType)
	g.GET("/room-types", h.ListRoomTypes)
	g.GET("/room-types/:id", h.GetRoomType)
	g.PUT("/room-types/:id", h.UpdateRoomType)
	g.DELETE("/room-types/:id", h.DeactivateRoomType)

	g.POST("/rooms", h.CreateRoom)
	g.GET("/rooms", h.ListRooms)
	g.GET("/rooms/:id", h.GetRoom)
	g.PUT("/rooms/:id", h.UpdateRoom)
	g.DELETE("/rooms/:id", h.DeactivateRoom)
}

func (h *RoomHandler) CreateRoomType(c echo.Context) error {
	var req dto.CreateRoomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	roomType, err := h.svc.CreateRoomType(c.Request().Context(), service.CreateRoomTypeInput{
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		BedConfig:    req.BedConfig,
		DefaultRate:  decimal.NewFromFloat(req.DefaultRate),
		MaxOccupancy: req.MaxOccupancy,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomTypeCodeTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrNegativeAmount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, dto.ToRoomTypeResponse(roomType))
}

func (h *RoomHandler) ListRoomTypes(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	roomTypes, err := h.svc.ListRoomTypes(c.Request().Context(), activeOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		resp[i] = dto.ToRoomTypeResponse(&rt)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) GetRoomType(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	roomType, err := h.svc.GetRoomType(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoomTypeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToRoomTypeResponse(roomType))
}

func (h *RoomHandler) UpdateRoomType(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateRoomTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := service.UpdateRoomTypeInput{
		Name:         req.Name,
		Description:  req.Description,
		BedConfig:    req.BedConfig,
		MaxOccupancy: req.MaxOccupancy,
		IsActive:     req.IsActive,
	}
	if req.DefaultRate != nil {
		rate := decimal.NewFromFloat(*req.DefaultRate)
		input.DefaultRate = &rate
	}

	roomType, err := h.svc.UpdateRoomType(c.Request().Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomTypeNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNegativeAmount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToRoomTypeResponse(roomType))
}

func (h *RoomHandler) DeactivateRoomType(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeactivateRoomType(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomTypeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := service.CreateRoomInput{
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		RoomTypeID: req.RoomTypeID,
		ViewType:   req.ViewType,
		Notes:      req.Notes,
	}
	if req.CustomRate != nil {
		rate := decimal.NewFromFloat(*req.CustomRate)
		input.CustomRate = &rate
	}

	room, err := h.svc.CreateRoom(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomTypeNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRoomNumberTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrNegativeAmount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	filter := repository.RoomFilter{
		ActiveOnly: c.QueryParam("active") == "true",
	}
	if s := c.QueryParam("status"); s != "" {
		filter.Status = models.RoomStatus(s)
	}
	if id, err := parseQueryUint(c, "room_type_id"); err == nil && id > 0 {
		filter.RoomTypeID = id
	}

	rooms, err := h.svc.ListRooms(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = dto.ToRoomResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	room, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := service.UpdateRoomInput{
		Floor:      req.Floor,
		RoomTypeID: req.RoomTypeID,
		ViewType:   req.ViewType,
		Notes:      req.Notes,
		ClearRate:  req.ClearRate,
		IsActive:   req.IsActive,
	}
	if req.Status != nil {
		status := models.RoomStatus(*req.Status)
		input.Status = &status
	}
	if req.CustomRate != nil {
		rate := decimal.NewFromFloat(*req.CustomRate)
		input.CustomRate = &rate
	}

	room, err := h.svc.UpdateRoom(c.Request().Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound), errors.Is(err, service.ErrRoomTypeNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNegativeAmount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *RoomHandler) DeactivateRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeactivateRoom(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
