package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	FindByID(ctx context.Context, id uint) (*models.Payment, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error)
	FindByReservation(ctx context.Context, reservationID uint) ([]models.Payment, error)
	Save(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	SumActiveForReservation(ctx context.Context, tx *gorm.DB, reservationID uint) (decimal.Decimal, error)
	SumActiveBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) dbOr(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return r.dbOr(tx).WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.dbOr(tx).WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByReservation(ctx context.Context, reservationID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at ASC, id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Save(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return r.dbOr(tx).WithContext(ctx).Save(payment).Error
}

// SumActiveForReservation recomputes the paid total from the full ledger,
// skipping voided rows. Balances are always derived from this, never cached.
func (r *paymentRepository) SumActiveForReservation(ctx context.Context, tx *gorm.DB, reservationID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.dbOr(tx).WithContext(ctx).
		Model(&models.Payment{}).
		Where("reservation_id = ? AND is_voided = ?", reservationID, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) SumActiveBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("is_voided = ? AND payment_date >= ? AND payment_date < ?", false, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *paymentRepository) FindBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Reservation").
		Preload("Reservation.Guest").
		Where("payment_date >= ? AND payment_date < ?", from, to).
		Order("payment_date ASC, id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
