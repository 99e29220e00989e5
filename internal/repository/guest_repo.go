package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
)

type GuestFilter struct {
	Search  string
	VIPOnly bool
	Limit   int
	Offset  int
}

type GuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindAll(ctx context.Context, filter GuestFilter) ([]models.Guest, int64, error)
	Save(ctx context.Context, guest *models.Guest) error
	Delete(ctx context.Context, id uint) error
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context, filter GuestFilter) ([]models.Guest, int64, error) {
	var guests []models.Guest
	q := r.db.WithContext(ctx).Model(&models.Guest{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("full_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", like, like, like)
	}
	if filter.VIPOnly {
		q = q.Where("is_vip = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := q.Order("full_name ASC").Find(&guests).Error; err != nil {
		return nil, 0, err
	}
	return guests, total, nil
}

func (r *guestRepository) Save(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *guestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Guest{}, id).Error
}
