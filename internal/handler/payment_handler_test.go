package handler

import (
	"context"
	"encoding/json"
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
	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/service"
)

type mockPaymentService struct {
	recordFn func(ctx context.Context, input service.RecordPaymentInput) (*models.Payment, error)
	getFn    func(ctx context.Context, id uint) (*models.Payment, error)
	listFn   func(ctx context.Context, reservationID uint) ([]models.Payment, error)
	voidFn   func(ctx context.Context, id uint, reason string, actorID uint) (*models.Payment, error)
}

func (m *mockPaymentService) Record(ctx context.Context, input service.RecordPaymentInput) (*models.Payment, error) {
	return m.recordFn(ctx, input)
}
func (m *mockPaymentService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	return m.getFn(ctx, id)
}
func (m *mockPaymentService) ListByReservation(ctx context.Context, reservationID uint) ([]models.Payment, error) {
	return m.listFn(ctx, reservationID)
}
func (m *mockPaymentService) Void(ctx context.Context, id uint, reason string, actorID uint) (*models.Payment, error) {
	return m.voidFn(ctx, id, reason, actorID)
}

func TestRecordPayment_Handler_Success(t *testing.T) {
	svc := &mockPaymentService{
		recordFn: func(ctx context.Context, input service.RecordPaymentInput) (*models.Payment, error) {
			return &models.Payment{
				ID:            1,
				ReservationID: input.ReservationID,
				Amount:        input.Amount,
				PaymentMethod: input.PaymentMethod,
				PaymentType:   input.PaymentType,
				PaymentDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	e := newEcho()
	body := `{"reservation_id":1,"amount":200000,"payment_method":"cash","payment_type":"downpayment"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPaymentHandler(svc)
	err := h.Record(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(200000), resp.Amount)
	assert.Equal(t, "cash", resp.PaymentMethod)
	assert.False(t, resp.IsVoided)
}

func TestRecordPayment_Handler_InvalidMethod(t *testing.T) {
	e := newEcho()
	body := `{"reservation_id":1,"amount":200000,"payment_method":"bitcoin","payment_type":"full"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPaymentHandler(nil)
	err := h.Record(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestRecordPayment_Handler_ZeroAmount(t *testing.T) {
	e := newEcho()
	body := `{"reservation_id":1,"amount":0,"payment_method":"cash","payment_type":"full"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPaymentHandler(nil)
	err := h.Record(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestRecordPayment_Handler_ClosedReservation(t *testing.T) {
	svc := &mockPaymentService{
		recordFn: func(ctx context.Context, input service.RecordPaymentInput) (*models.Payment, error) {
			return nil, service.ErrReservationClosed
		},
	}

	e := newEcho()
	body := `{"reservation_id":1,"amount":100,"payment_method":"cash","payment_type":"full"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPaymentHandler(svc)
	err := h.Record(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestVoidPayment_Handler_Success(t *testing.T) {
	svc := &mockPaymentService{
		voidFn: func(ctx context.Context, id uint, reason string, actorID uint) (*models.Payment, error) {
			return &models.Payment{
				ID:            id,
				ReservationID: 1,
				Amount:        decimal.NewFromInt(200000),
				PaymentMethod: models.MethodCash,
				PaymentType:   models.PaymentFull,
				PaymentDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				IsVoided:      true,
				VoidReason:    reason,
			}, nil
		},
	}

	e := newEcho()
	body := `{"reason":"duplicate entry"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/1/void", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewPaymentHandler(svc)
	err := h.Void(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsVoided)
	assert.Equal(t, "duplicate entry", resp.VoidReason)
}

func TestVoidPayment_Handler_AlreadyVoided(t *testing.T) {
	svc := &mockPaymentService{
		voidFn: func(ctx context.Context, id uint, reason string, actorID uint) (*models.Payment, error) {
			return nil, service.ErrPaymentVoided
		},
	}

	e := newEcho()
	body := `{"reason":"again"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/1/void", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewPaymentHandler(svc)
	err := h.Void(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestListPayments_Handler_IncludesVoided(t *testing.T) {
	svc := &mockPaymentService{
		listFn: func(ctx context.Context, reservationID uint) ([]models.Payment, error) {
			return []models.Payment{
				{ID: 1, ReservationID: reservationID, Amount: decimal.NewFromInt(200000), PaymentDate: time.Now()},
				{ID: 2, ReservationID: reservationID, Amount: decimal.NewFromInt(100000), PaymentDate: time.Now(), IsVoided: true},
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1/payments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewPaymentHandler(svc)
	err := h.ListByReservation(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[1].IsVoided)
}

func TestListPayments_Handler_ByQueryParam(t *testing.T) {
	svc := &mockPaymentService{
		listFn: func(ctx context.Context, reservationID uint) ([]models.Payment, error) {
			return []models.Payment{
				{ID: 1, ReservationID: reservationID, Amount: decimal.NewFromInt(200000), PaymentDate: time.Now()},
			}, nil
		},
	}

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments?reservation_id=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPaymentHandler(svc)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, uint(7), resp[0].ReservationID)
}

func TestListPayments_Handler_MissingReservationID(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPaymentHandler(&mockPaymentService{})
	err := h.List(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
