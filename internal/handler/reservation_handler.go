package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/santikahms/hotel-service/internal/dto"
	"github.com/santikahms/hotel-service/internal/middleware"
	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/internal/service"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/reservations", h.Create)
	g.GET("/reservations", h.List)
	g.GET("/reservations/availability", h.Availability)
	g.POST("/reservations/quote", h.Quote)
	g.GET("/reservations/:id", h.Get)
	g.PUT("/reservations/:id", h.Update)
	g.DELETE("/reservations/:id", h.Cancel)
	g.POST("/reservations/:id/check-in", h.CheckIn)
	g.POST("/reservations/:id/check-out", h.CheckOut)
	g.GET("/reservations/:id/balance", h.Balance)
}

func (h *ReservationHandler) Create(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	checkIn, err := parseDate(req.CheckInDate, "check_in_date")
	if err != nil {
		return err
	}
	checkOut, err := parseDate(req.CheckOutDate, "check_out_date")
	if err != nil {
		return err
	}

	reservation, err := h.svc.Create(c.Request().Context(), service.CreateReservationInput{
		GuestID:       req.GuestID,
		RoomID:        req.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		RatePerNight:  decimal.NewFromFloat(req.RatePerNight),
		TotalAmount:   decimal.NewFromFloat(req.TotalAmount),
		Adults:        req.Adults,
		Children:      req.Children,
		BookingSource: req.BookingSource,
		Notes:         req.Notes,
		CreatedBy:     middleware.CurrentUserID(c),
	})
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) List(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	filter := repository.ReservationFilter{Limit: limit, Offset: offset}
	if s := c.QueryParam("status"); s != "" {
		filter.Status = models.ReservationStatus(s)
	}
	if id, err := parseQueryUint(c, "guest_id"); err == nil && id > 0 {
		filter.GuestID = id
	}
	if id, err := parseQueryUint(c, "room_id"); err == nil && id > 0 {
		filter.RoomID = id
	}

	reservations, total, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := dto.ReservationListResponse{
		Reservations: make([]dto.ReservationResponse, len(reservations)),
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}
	for i, r := range reservations {
		resp.Reservations[i] = dto.ToReservationResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	reservation, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return reservationError(err)
	}
	info, err := h.svc.Balance(c.Request().Context(), id)
	if err != nil {
		return reservationError(err)
	}

	resp := dto.ToReservationResponse(reservation)
	paid := info.TotalPaid.InexactFloat64()
	balance := info.Balance.InexactFloat64()
	resp.TotalPaid = &paid
	resp.Balance = &balance
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := service.UpdateReservationInput{
		RoomID:        req.RoomID,
		Adults:        req.Adults,
		Children:      req.Children,
		BookingSource: req.BookingSource,
		Notes:         req.Notes,
	}
	if req.CheckInDate != nil {
		checkIn, err := parseDate(*req.CheckInDate, "check_in_date")
		if err != nil {
			return err
		}
		input.CheckInDate = &checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := parseDate(*req.CheckOutDate, "check_out_date")
		if err != nil {
			return err
		}
		input.CheckOutDate = &checkOut
	}
	if req.RatePerNight != nil {
		rate := decimal.NewFromFloat(*req.RatePerNight)
		input.RatePerNight = &rate
	}
	if req.TotalAmount != nil {
		total := decimal.NewFromFloat(*req.TotalAmount)
		input.TotalAmount = &total
	}

	reservation, err := h.svc.Update(c.Request().Context(), id, input)
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) CheckIn(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.svc.CheckIn(c.Request().Context(), id, middleware.CurrentUserID(c), req.Notes)
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) CheckOut(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CheckOutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.svc.CheckOut(c.Request().Context(), id, middleware.CurrentUserID(c), req.Notes)
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// Cancel soft-cancels the reservation. The record stays retrievable.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	reservation, err := h.svc.Cancel(c.Request().Context(), id)
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) Availability(c echo.Context) error {
	roomID, err := parseQueryUint(c, "room_id")
	if err != nil {
		return err
	}
	if roomID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "room_id is required")
	}
	checkIn, err := parseDate(c.QueryParam("check_in_date"), "check_in_date")
	if err != nil {
		return err
	}
	checkOut, err := parseDate(c.QueryParam("check_out_date"), "check_out_date")
	if err != nil {
		return err
	}

	result, err := h.svc.Availability(c.Request().Context(), roomID, checkIn, checkOut)
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		RoomID:    result.RoomID,
		Available: result.Available,
		Conflicts: result.Conflicts,
	})
}

func (h *ReservationHandler) Balance(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	balance, err := h.svc.Balance(c.Request().Context(), id)
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

func (h *ReservationHandler) Quote(c echo.Context) error {
	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	checkIn, err := parseDate(req.CheckInDate, "check_in_date")
	if err != nil {
		return err
	}
	checkOut, err := parseDate(req.CheckOutDate, "check_out_date")
	if err != nil {
		return err
	}

	quote, err := h.svc.Quote(c.Request().Context(), req.RoomID, checkIn, checkOut, decimal.NewFromFloat(req.DiscountPercent))
	if err != nil {
		return reservationError(err)
	}
	return c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func reservationError(err error) error {
	var transition *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrReservationNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrGuestNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDates),
		errors.Is(err, service.ErrNegativeAmount),
		errors.Is(err, service.ErrInvalidDiscount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRoomUnavailable),
		errors.Is(err, service.ErrRoomNotAvailable),
		errors.Is(err, service.ErrReservationFinal):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &transition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrOutstandingBalance):
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
