package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
)

type ReservationFilter struct {
	Status  models.ReservationStatus
	GuestID uint
	RoomID  uint
	Limit   int
	Offset  int
}

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Reservation, error)
	FindAll(ctx context.Context, filter ReservationFilter) ([]models.Reservation, int64, error)
	Save(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error)
	CountByGuest(ctx context.Context, guestID uint) (int64, error)
	CountByStatus(ctx context.Context, status models.ReservationStatus) (int64, error)
	CountCheckInsBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountCheckOutsBetween(ctx context.Context, from, to time.Time) (int64, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error)
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) dbOr(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return r.dbOr(tx).WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// FindByIDForUpdate locks the reservation row for the duration of tx so
// transitions and payments against it serialize.
func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.dbOr(tx).WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, filter ReservationFilter) ([]models.Reservation, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Reservation{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.GuestID != 0 {
		q = q.Where("guest_id = ?", filter.GuestID)
	}
	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []models.Reservation
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := q.
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		Order("check_in_date DESC, id DESC").
		Find(&reservations).Error; err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

func (r *reservationRepository) Save(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return r.dbOr(tx).WithContext(ctx).Save(reservation).Error
}

// CountOverlapping counts live reservations on roomID whose [check_in, check_out)
// range intersects the given one. excludeID skips the reservation being edited.
func (r *reservationRepository) CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	var count int64
	q := r.dbOr(tx).WithContext(ctx).
		Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []models.ReservationStatus{models.StatusConfirmed, models.StatusCheckedIn}).
		Where("NOT (check_out_date <= ? OR check_in_date >= ?)", checkIn, checkOut)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *reservationRepository) CountByGuest(ctx context.Context, guestID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("guest_id = ?", guestID).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) CountByStatus(ctx context.Context, status models.ReservationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) CountCheckInsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("checked_in_at >= ? AND checked_in_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) CountCheckOutsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("checked_out_at >= ? AND checked_out_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *reservationRepository) FindBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Where("check_in_date >= ? AND check_in_date < ?", from, to).
		Order("check_in_date ASC, id ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
