package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
)

type RoomFilter struct {
	Status     models.RoomStatus
	RoomTypeID uint
	ActiveOnly bool
}

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	FindByNumber(ctx context.Context, roomNumber string) (*models.Room, error)
	FindAll(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	Save(ctx context.Context, room *models.Room) error
	Deactivate(ctx context.Context, id uint) error
	SetStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) dbOr(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Preload("RoomType").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction; concurrent reservation attempts on the same room serialize here.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.dbOr(tx).WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	var rooms []models.Room
	q := r.db.WithContext(ctx).Preload("RoomType")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RoomTypeID != 0 {
		q = q.Where("room_type_id = ?", filter.RoomTypeID)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Save(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *roomRepository) SetStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RoomStatus) error {
	return r.dbOr(tx).WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *roomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *roomRepository) CountByStatus(ctx context.Context, status models.RoomStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("is_active = ? AND status = ?", true, status).
		Count(&count).Error
	return count, err
}
