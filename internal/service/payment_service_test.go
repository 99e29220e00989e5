package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
)

func newTestPaymentService(payments *mockPaymentRepo, reservations *mockReservationRepo) PaymentService {
	if reservations == nil {
		reservations = &mockReservationRepo{
			findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Reservation, error) {
				return &models.Reservation{ID: id, Status: models.StatusCheckedIn}, nil
			},
		}
	}
	return NewPaymentService(payments, reservations, stubTx(), nil)
}

func TestRecordPayment_Success(t *testing.T) {
	payments := &mockPaymentRepo{
		createFn: func(ctx context.Context, tx *gorm.DB, p *models.Payment) error {
			p.ID = 1
			return nil
		},
	}
	svc := newTestPaymentService(payments, nil)

	got, err := svc.Record(context.Background(), RecordPaymentInput{
		ReservationID: 1,
		Amount:        decimal.NewFromInt(200000),
		PaymentMethod: models.MethodCash,
		PaymentType:   models.PaymentDownpayment,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), got.ReservationID)
	assert.False(t, got.IsVoided)
	assert.False(t, got.PaymentDate.IsZero())
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	svc := newTestPaymentService(&mockPaymentRepo{}, nil)

	_, err := svc.Record(context.Background(), RecordPaymentInput{
		ReservationID: 1,
		Amount:        decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Record(context.Background(), RecordPaymentInput{
		ReservationID: 1,
		Amount:        decimal.NewFromInt(-100),
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRecordPayment_ClosedReservation(t *testing.T) {
	for _, status := range []models.ReservationStatus{models.StatusCheckedOut, models.StatusCancelled} {
		reservations := &mockReservationRepo{
			findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Reservation, error) {
				return &models.Reservation{ID: id, Status: status}, nil
			},
		}
		svc := newTestPaymentService(&mockPaymentRepo{}, reservations)

		_, err := svc.Record(context.Background(), RecordPaymentInput{
			ReservationID: 1,
			Amount:        decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, ErrReservationClosed, "status %s", status)
	}
}

func TestRecordPayment_ReservationNotFound(t *testing.T) {
	reservations := &mockReservationRepo{
		findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Reservation, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestPaymentService(&mockPaymentRepo{}, reservations)

	_, err := svc.Record(context.Background(), RecordPaymentInput{
		ReservationID: 99,
		Amount:        decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestVoidPayment_Success(t *testing.T) {
	var saved *models.Payment
	payments := &mockPaymentRepo{
		findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error) {
			return &models.Payment{ID: id, ReservationID: 1, Amount: decimal.NewFromInt(200000)}, nil
		},
		saveFn: func(ctx context.Context, tx *gorm.DB, p *models.Payment) error {
			saved = p
			return nil
		},
	}
	svc := newTestPaymentService(payments, nil)

	got, err := svc.Void(context.Background(), 1, "duplicate entry", 5)
	require.NoError(t, err)

	assert.True(t, got.IsVoided)
	assert.Equal(t, "duplicate entry", got.VoidReason)
	require.NotNil(t, got.VoidedBy)
	assert.Equal(t, uint(5), *got.VoidedBy)
	assert.Same(t, saved, got)
}

func TestVoidPayment_AlreadyVoided(t *testing.T) {
	payments := &mockPaymentRepo{
		findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error) {
			return &models.Payment{ID: id, IsVoided: true}, nil
		},
	}
	svc := newTestPaymentService(payments, nil)

	_, err := svc.Void(context.Background(), 1, "again", 5)
	assert.ErrorIs(t, err, ErrPaymentVoided)
}

func TestVoidPayment_NotFound(t *testing.T) {
	payments := &mockPaymentRepo{
		findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestPaymentService(payments, nil)

	_, err := svc.Void(context.Background(), 99, "gone", 5)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
