package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/pkg/database"
)

// stubTx runs the callback without a database.
func stubTx() database.TxRunner {
	return func(ctx context.Context, fn func(tx *gorm.DB) error) error {
		return fn(nil)
	}
}

type mockReservationRepo struct {
	createFn            func(ctx context.Context, tx *gorm.DB, r *models.Reservation) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Reservation, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Reservation, error)
	saveFn              func(ctx context.Context, tx *gorm.DB, r *models.Reservation) error
	countOverlappingFn  func(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error)
	countByGuestFn      func(ctx context.Context, guestID uint) (int64, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, tx *gorm.DB, r *models.Reservation) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, r)
	}
	return nil
}
func (m *mockReservationRepo) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockReservationRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Reservation, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockReservationRepo) FindAll(ctx context.Context, filter repository.ReservationFilter) ([]models.Reservation, int64, error) {
	return nil, 0, nil
}
func (m *mockReservationRepo) Save(ctx context.Context, tx *gorm.DB, r *models.Reservation) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, tx, r)
	}
	return nil
}
func (m *mockReservationRepo) CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	if m.countOverlappingFn != nil {
		return m.countOverlappingFn(ctx, tx, roomID, checkIn, checkOut, excludeID)
	}
	return 0, nil
}
func (m *mockReservationRepo) CountByGuest(ctx context.Context, guestID uint) (int64, error) {
	if m.countByGuestFn != nil {
		return m.countByGuestFn(ctx, guestID)
	}
	return 0, nil
}
func (m *mockReservationRepo) CountByStatus(ctx context.Context, status models.ReservationStatus) (int64, error) {
	return 0, nil
}
func (m *mockReservationRepo) CountCheckInsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}
func (m *mockReservationRepo) CountCheckOutsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}
func (m *mockReservationRepo) FindBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	return nil, nil
}

type mockRoomRepo struct {
	findByIDFn          func(ctx context.Context, id uint) (*models.Room, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	setStatusFn         func(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) error { return nil }
func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockRoomRepo) FindByNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindAll(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	return nil, nil
}
func (m *mockRoomRepo) Save(ctx context.Context, room *models.Room) error { return nil }
func (m *mockRoomRepo) Deactivate(ctx context.Context, id uint) error     { return nil }
func (m *mockRoomRepo) SetStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error {
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, tx, id, status)
	}
	return nil
}
func (m *mockRoomRepo) Count(ctx context.Context) (int64, error) { return 0, nil }
func (m *mockRoomRepo) CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error) {
	return 0, nil
}

type mockGuestRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Guest, error)
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockGuestRepo) Create(ctx context.Context, guest *models.Guest) error { return nil }
func (m *mockGuestRepo) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return &models.Guest{ID: id, FullName: "Guest"}, nil
}
func (m *mockGuestRepo) FindAll(ctx context.Context, filter repository.GuestFilter) ([]models.Guest, int64, error) {
	return nil, 0, nil
}
func (m *mockGuestRepo) Save(ctx context.Context, guest *models.Guest) error { return nil }
func (m *mockGuestRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockPaymentRepo struct {
	createFn            func(ctx context.Context, tx *gorm.DB, p *models.Payment) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Payment, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error)
	saveFn              func(ctx context.Context, tx *gorm.DB, p *models.Payment) error
	sumActiveFn         func(ctx context.Context, tx *gorm.DB, reservationID uint) (decimal.Decimal, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, tx *gorm.DB, p *models.Payment) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, p)
	}
	return nil
}
func (m *mockPaymentRepo) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockPaymentRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Payment, error) {
	return m.findByIDForUpdateFn(ctx, tx, id)
}
func (m *mockPaymentRepo) FindByReservation(ctx context.Context, reservationID uint) ([]models.Payment, error) {
	return nil, nil
}
func (m *mockPaymentRepo) Save(ctx context.Context, tx *gorm.DB, p *models.Payment) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, tx, p)
	}
	return nil
}
func (m *mockPaymentRepo) SumActiveForReservation(ctx context.Context, tx *gorm.DB, reservationID uint) (decimal.Decimal, error) {
	if m.sumActiveFn != nil {
		return m.sumActiveFn(ctx, tx, reservationID)
	}
	return decimal.Zero, nil
}
func (m *mockPaymentRepo) SumActiveBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (m *mockPaymentRepo) FindBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	return nil, nil
}
