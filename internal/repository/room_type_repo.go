package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *models.RoomType) error
	FindByID(ctx context.Context, id uint) (*models.RoomType, error)
	FindByCode(ctx context.Context, code string) (*models.RoomType, error)
	FindAll(ctx context.Context, activeOnly bool) ([]models.RoomType, error)
	Save(ctx context.Context, roomType *models.RoomType) error
	Deactivate(ctx context.Context, id uint) error
}

type roomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *models.RoomType) error {
	return r.db.WithContext(ctx).Create(roomType).Error
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := r.db.WithContext(ctx).First(&roomType, id).Error; err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) FindByCode(ctx context.Context, code string) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&roomType).Error; err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("id ASC").Find(&roomTypes).Error; err != nil {
		return nil, err
	}
	return roomTypes, nil
}

func (r *roomTypeRepository) Save(ctx context.Context, roomType *models.RoomType) error {
	return r.db.WithContext(ctx).Save(roomType).Error
}

func (r *roomTypeRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.RoomType{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
