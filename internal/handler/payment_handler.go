package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/santikahms/hotel-service/internal/dto"
	"github.com/santikahms/hotel-service/internal/middleware"
	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/service"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/payments", h.Record)
	g.GET("/payments", h.List)
	g.GET("/payments/:id", h.Get)
	g.POST("/payments/:id/void", h.Void)
	g.GET("/reservations/:id/payments", h.ListByReservation)
}

func (h *PaymentHandler) Record(c echo.Context) error {
	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		parsed, err := parseDate(req.PaymentDate, "payment_date")
		if err != nil {
			return err
		}
		paymentDate = parsed
	}

	actorID := middleware.CurrentUserID(c)
	input := service.RecordPaymentInput{
		ReservationID:   req.ReservationID,
		Amount:          decimal.NewFromFloat(req.Amount),
		PaymentMethod:   models.PaymentMethod(req.PaymentMethod),
		PaymentType:     models.PaymentType(req.PaymentType),
		PaymentDate:     paymentDate,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}
	if actorID != 0 {
		input.RecordedBy = &actorID
	}

	payment, err := h.svc.Record(c.Request().Context(), input)
	if err != nil {
		return paymentError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	payment, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return paymentError(err)
	}
	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) List(c echo.Context) error {
	reservationID, err := parseQueryUint(c, "reservation_id")
	if err != nil {
		return err
	}
	if reservationID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "reservation_id is required")
	}
	payments, err := h.svc.ListByReservation(c.Request().Context(), reservationID)
	if err != nil {
		return paymentError(err)
	}

	resp := make([]dto.PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = dto.ToPaymentResponse(&p)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) ListByReservation(c echo.Context) error {
	reservationID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	payments, err := h.svc.ListByReservation(c.Request().Context(), reservationID)
	if err != nil {
		return paymentError(err)
	}

	resp := make([]dto.PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = dto.ToPaymentResponse(&p)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) Void(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.VoidPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.svc.Void(c.Request().Context(), id, req.Reason, middleware.CurrentUserID(c))
	if err != nil {
		return paymentError(err)
	}
	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func paymentError(err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidAmount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrReservationClosed),
		errors.Is(err, service.ErrPaymentVoided):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
