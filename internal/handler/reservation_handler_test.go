package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santikahms/hotel-service/internal/dto"
	"github.com/santikahms/hotel-service/internal/middleware"
	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/internal/service"
)

// --- Mock ReservationService ---

type mockReservationService struct {
	createFn       func(ctx context.Context, input service.CreateReservationInput) (*models.Reservation, error)
	getFn          func(ctx context.Context, id uint) (*models.Reservation, error)
	updateFn       func(ctx context.Context, id uint, input service.UpdateReservationInput) (*models.Reservation, error)
	checkInFn      func(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error)
	checkOutFn     func(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error)
	cancelFn       func(ctx context.Context, id uint) (*models.Reservation, error)
	availabilityFn func(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*service.AvailabilityResult, error)
	balanceFn      func(ctx context.Context, id uint) (*service.BalanceInfo, error)
	quoteFn        func(ctx context.Context, roomID uint, checkIn, checkOut time.Time, discountPercent decimal.Decimal) (*service.StayQuote, error)
}

func (m *mockReservationService) Create(ctx context.Context, input service.CreateReservationInput) (*models.Reservation, error) {
	return m.createFn(ctx, input)
}
func (m *mockReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.getFn(ctx, id)
}
func (m *mockReservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]models.Reservation, int64, error) {
	return nil, 0, nil
}
func (m *mockReservationService) Update(ctx context.Context, id uint, input service.UpdateReservationInput) (*models.Reservation, error) {
	return m.updateFn(ctx, id, input)
}
func (m *mockReservationService) CheckIn(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error) {
	return m.checkInFn(ctx, id, actorID, notes)
}
func (m *mockReservationService) CheckOut(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error) {
	return m.checkOutFn(ctx, id, actorID, notes)
}
func (m *mockReservationService) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.cancelFn(ctx, id)
}
func (m *mockReservationService) Availability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*service.AvailabilityResult, error) {
	return m.availabilityFn(ctx, roomID, checkIn, checkOut)
}
func (m *mockReservationService) Balance(ctx context.Context, id uint) (*service.BalanceInfo, error) {
	if m.balanceFn == nil {
		return nil, service.ErrReservationNotFound
	}
	return m.balanceFn(ctx, id)
}
func (m *mockReservationService) Quote(ctx context.Context, roomID uint, checkIn, checkOut time.Time, discountPercent decimal.Decimal) (*service.StayQuote, error) {
	return m.quoteFn(ctx, roomID, checkIn, checkOut, discountPercent)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()
	return e
}

// --- Tests ---

func TestCreateReservation_Handler_Success(t *testing.T) {
	svc := &mockReservationService{
		createFn: func(ctx context.Context, input service.CreateReservationInput) (*models.Reservation, error) {
			return &models.Reservation{
				ID:                 1,
				ConfirmationNumber: "A1B2C3D4E5",
				GuestID:            input.GuestID,
				RoomID:             input.RoomID,
				CheckInDate:        input.CheckInDate,
				CheckOutDate:       input.CheckOutDate,
				Adults:             1,
				RatePerNight:       input.RatePerNight,
				Nights:             3,
				TotalAmount:        input.TotalAmount,
				Status:             models.StatusConfirmed,
				CreatedAt:          time.Now(),
			}, nil
		},
	}

	e := newEcho()
	body := `{"guest_id":1,"room_id":7,"check_in_date":"2026-03-10","check_out_date":"2026-03-13","rate_per_night":180000,"total_amount":540000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReservationHandler(svc)
	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A1B2C3D4E5", resp.ConfirmationNumber)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, float64(540000), resp.TotalAmount)
}

func TestCreateReservation_Handler_BadDateFormat(t *testing.T) {
	e := newEcho()
	body := `{"guest_id":1,"room_id":7,"check_in_date":"10/03/2026","check_out_date":"2026-03-13","total_amount":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReservationHandler(nil)
	err := h.Create(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateReservation_Handler_InvalidDates(t *testing.T) {
	svc := &mockReservationService{
		createFn: func(ctx context.Context, input service.CreateReservationInput) (*models.Reservation, error) {
			return nil, service.ErrInvalidDates
		},
	}

	e := newEcho()
	body := `{"guest_id":1,"room_id":7,"check_in_date":"2026-03-13","check_out_date":"2026-03-10","total_amount":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReservationHandler(svc)
	err := h.Create(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateReservation_Handler_RoomConflict(t *testing.T) {
	svc := &mockReservationService{
		createFn: func(ctx context.Context, input service.CreateReservationInput) (*models.Reservation, error) {
			return nil, service.ErrRoomUnavailable
		},
	}

	e := newEcho()
	body := `{"guest_id":1,"room_id":7,"check_in_date":"2026-03-10","check_out_date":"2026-03-13","total_amount":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReservationHandler(svc)
	err := h.Create(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCheckIn_Handler_InvalidTransition(t *testing.T) {
	svc := &mockReservationService{
		checkInFn: func(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error) {
			return nil, &service.InvalidTransitionError{From: models.StatusCheckedIn, To: models.StatusCheckedIn}
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/1/check-in", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewReservationHandler(svc)
	err := h.CheckIn(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCheckOut_Handler_OutstandingBalance(t *testing.T) {
	svc := &mockReservationService{
		checkOutFn: func(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error) {
			return nil, service.ErrOutstandingBalance
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/1/check-out", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewReservationHandler(svc)
	err := h.CheckOut(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, he.Code)
}

func TestCancelReservation_Handler_ReturnsRecord(t *testing.T) {
	svc := &mockReservationService{
		cancelFn: func(ctx context.Context, id uint) (*models.Reservation, error) {
			return &models.Reservation{
				ID:           id,
				GuestID:      1,
				RoomID:       7,
				CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOutDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
				Status:       models.StatusCancelled,
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewReservationHandler(svc)
	err := h.Cancel(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestGetReservation_Handler_IncludesBalance(t *testing.T) {
	svc := &mockReservationService{
		getFn: func(ctx context.Context, id uint) (*models.Reservation, error) {
			return &models.Reservation{
				ID:                 id,
				ConfirmationNumber: "A1B2C3D4E5",
				CheckInDate:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOutDate:       time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
				Nights:             3,
				TotalAmount:        decimal.NewFromInt(540000),
				Status:             models.StatusCheckedIn,
			}, nil
		},
		balanceFn: func(ctx context.Context, id uint) (*service.BalanceInfo, error) {
			return &service.BalanceInfo{
				ReservationID: id,
				TotalAmount:   decimal.NewFromInt(540000),
				TotalPaid:     decimal.NewFromInt(200000),
				Balance:       decimal.NewFromInt(340000),
				PaymentStatus: "partial_paid",
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewReservationHandler(svc)
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.TotalPaid)
	require.NotNil(t, resp.Balance)
	assert.Equal(t, float64(200000), *resp.TotalPaid)
	assert.Equal(t, float64(340000), *resp.Balance)
}

func TestGetReservation_Handler_BalanceErrorPropagates(t *testing.T) {
	svc := &mockReservationService{
		getFn: func(ctx context.Context, id uint) (*models.Reservation, error) {
			return &models.Reservation{ID: id, Status: models.StatusConfirmed}, nil
		},
		balanceFn: func(ctx context.Context, id uint) (*service.BalanceInfo, error) {
			return nil, errors.New("sum query failed")
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewReservationHandler(svc)
	err := h.Get(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}

func TestGetReservation_Handler_NotFound(t *testing.T) {
	svc := &mockReservationService{
		getFn: func(ctx context.Context, id uint) (*models.Reservation, error) {
			return nil, service.ErrReservationNotFound
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewReservationHandler(svc)
	err := h.Get(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestBalance_Handler_Success(t *testing.T) {
	svc := &mockReservationService{
		balanceFn: func(ctx context.Context, id uint) (*service.BalanceInfo, error) {
			return &service.BalanceInfo{
				ReservationID:      id,
				ConfirmationNumber: "A1B2C3D4E5",
				ReservationStatus:  models.StatusCheckedIn,
				TotalAmount:        decimal.NewFromInt(540000),
				TotalPaid:          decimal.NewFromInt(200000),
				Balance:            decimal.NewFromInt(340000),
				PaymentStatus:      "partial_paid",
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1/balance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewReservationHandler(svc)
	err := h.Balance(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(340000), resp.Balance)
	assert.Equal(t, "partial_paid", resp.PaymentStatus)
}

func TestQuote_Handler_Success(t *testing.T) {
	svc := &mockReservationService{
		quoteFn: func(ctx context.Context, roomID uint, checkIn, checkOut time.Time, discountPercent decimal.Decimal) (*service.StayQuote, error) {
			return &service.StayQuote{
				NightlyRate:     decimal.NewFromInt(200000),
				DiscountPercent: discountPercent,
				EffectiveRate:   decimal.NewFromInt(180000),
				Nights:          3,
				TotalAmount:     decimal.NewFromInt(540000),
			}, nil
		},
	}

	e := newEcho()
	body := `{"room_id":7,"check_in_date":"2026-03-10","check_out_date":"2026-03-13","discount_percent":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/quote", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReservationHandler(svc)
	err := h.Quote(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(180000), resp.EffectiveRate)
	assert.Equal(t, float64(540000), resp.TotalAmount)
}

func TestAvailability_Handler_MissingRoomID(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/availability?check_in_date=2026-03-10&check_out_date=2026-03-12", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReservationHandler(nil)
	err := h.Availability(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
