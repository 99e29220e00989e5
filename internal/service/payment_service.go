package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/pkg/database"
)

type RecordPaymentInput struct {
	ReservationID   uint
	Amount          decimal.Decimal
	PaymentMethod   models.PaymentMethod
	PaymentType     models.PaymentType
	PaymentDate     time.Time
	ReferenceNumber string
	Notes           string
	RecordedBy      *uint
}

type PaymentService interface {
	Record(ctx context.Context, input RecordPaymentInput) (*models.Payment, error)
	Get(ctx context.Context, id uint) (*models.Payment, error)
	ListByReservation(ctx context.Context, reservationID uint) ([]models.Payment, error)
	Void(ctx context.Context, id uint, reason string, actorID uint) (*models.Payment, error)
}

type paymentService struct {
	payments     repository.PaymentRepository
	reservations repository.ReservationRepository
	runTx        database.TxRunner
	publisher    EventPublisher
}

func NewPaymentService(
	payments repository.PaymentRepository,
	reservations repository.ReservationRepository,
	runTx database.TxRunner,
	publisher EventPublisher,
) PaymentService {
	return &paymentService{
		payments:     payments,
		reservations: reservations,
		runTx:        runTx,
		publisher:    publisher,
	}
}

func (s *paymentService) Record(ctx context.Context, input RecordPaymentInput) (*models.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *models.Payment

	err := s.runTx(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservations.FindByIDForUpdate(ctx, tx, input.ReservationID)
		if err != nil {
			return ErrReservationNotFound
		}
		if reservation.Status != models.StatusConfirmed && reservation.Status != models.StatusCheckedIn {
			return ErrReservationClosed
		}

		paymentDate := input.PaymentDate
		if paymentDate.IsZero() {
			paymentDate = time.Now()
		}

		payment := &models.Payment{
			ReservationID:   reservation.ID,
			Amount:          input.Amount,
			PaymentMethod:   input.PaymentMethod,
			PaymentType:     input.PaymentType,
			PaymentDate:     paymentDate,
			ReferenceNumber: input.ReferenceNumber,
			Notes:           input.Notes,
			RecordedBy:      input.RecordedBy,
		}
		if err := s.payments.Create(ctx, tx, payment); err != nil {
			return err
		}
		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("payment.recorded", result)
	}
	return result, nil
}

func (s *paymentService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

// ListByReservation returns every payment, voided included, oldest first.
func (s *paymentService) ListByReservation(ctx context.Context, reservationID uint) ([]models.Payment, error) {
	if _, err := s.reservations.FindByID(ctx, reservationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return s.payments.FindByReservation(ctx, reservationID)
}

// Void marks a payment inactive instead of deleting it, so the ledger
// stays append-only and balances recompute without the voided amount.
func (s *paymentService) Void(ctx context.Context, id uint, reason string, actorID uint) (*models.Payment, error) {
	var result *models.Payment

	err := s.runTx(ctx, func(tx *gorm.DB) error {
		payment, err := s.payments.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrPaymentNotFound
		}
		if payment.IsVoided {
			return ErrPaymentVoided
		}

		payment.IsVoided = true
		payment.VoidReason = reason
		if actorID != 0 {
			payment.VoidedBy = &actorID
		}
		if err := s.payments.Save(ctx, tx, payment); err != nil {
			return err
		}
		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("payment.voided", result)
	}
	return result, nil
}
