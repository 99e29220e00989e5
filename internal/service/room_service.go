package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
)

type CreateRoomTypeInput struct {
	Name         string
	Code         string
	Description  string
	BedConfig    string
	DefaultRate  decimal.Decimal
	MaxOccupancy int
}

type UpdateRoomTypeInput struct {
	Name         *string
	Description  *string
	BedConfig    *string
	DefaultRate  *decimal.Decimal
	MaxOccupancy *int
	IsActive     *bool
}

type CreateRoomInput struct {
	RoomNumber string
	Floor      int
	RoomTypeID uint
	ViewType   string
	Notes      string
	CustomRate *decimal.Decimal
}

type UpdateRoomInput struct {
	Floor      *int
	RoomTypeID *uint
	Status     *models.RoomStatus
	ViewType   *string
	Notes      *string
	CustomRate *decimal.Decimal
	ClearRate  bool
	IsActive   *bool
}

type RoomService interface {
	CreateRoomType(ctx context.Context, input CreateRoomTypeInput) (*models.RoomType, error)
	GetRoomType(ctx context.Context, id uint) (*models.RoomType, error)
	ListRoomTypes(ctx context.Context, activeOnly bool) ([]models.RoomType, error)
	UpdateRoomType(ctx context.Context, id uint, input UpdateRoomTypeInput) (*models.RoomType, error)
	DeactivateRoomType(ctx context.Context, id uint) error

	CreateRoom(ctx context.Context, input CreateRoomInput) (*models.Room, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	ListRooms(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error)
	UpdateRoom(ctx context.Context, id uint, input UpdateRoomInput) (*models.Room, error)
	DeactivateRoom(ctx context.Context, id uint) error
}

type roomService struct {
	rooms     repository.RoomRepository
	roomTypes repository.RoomTypeRepository
}

func NewRoomService(rooms repository.RoomRepository, roomTypes repository.RoomTypeRepository) RoomService {
	return &roomService{rooms: rooms, roomTypes: roomTypes}
}

func (s *roomService) CreateRoomType(ctx context.Context, input CreateRoomTypeInput) (*models.RoomType, error) {
	if input.DefaultRate.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if existing, err := s.roomTypes.FindByCode(ctx, input.Code); err == nil && existing != nil {
		return nil, ErrRoomTypeCodeTaken
	}

	roomType := &models.RoomType{
		Name:         input.Name,
		Code:         input.Code,
		Description:  input.Description,
		BedConfig:    input.BedConfig,
		DefaultRate:  input.DefaultRate,
		MaxOccupancy: input.MaxOccupancy,
		IsActive:     true,
	}
	if err := s.roomTypes.Create(ctx, roomType); err != nil {
		return nil, err
	}
	return roomType, nil
}

func (s *roomService) GetRoomType(ctx context.Context, id uint) (*models.RoomType, error) {
	roomType, err := s.roomTypes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return roomType, nil
}

func (s *roomService) ListRoomTypes(ctx context.Context, activeOnly bool) ([]models.RoomType, error) {
	return s.roomTypes.FindAll(ctx, activeOnly)
}

func (s *roomService) UpdateRoomType(ctx context.Context, id uint, input UpdateRoomTypeInput) (*models.RoomType, error) {
	roomType, err := s.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DefaultRate != nil {
		if input.DefaultRate.IsNegative() {
			return nil, ErrNegativeAmount
		}
		roomType.DefaultRate = *input.DefaultRate
	}
	if input.Name != nil {
		roomType.Name = *input.Name
	}
	if input.Description != nil {
		roomType.Description = *input.Description
	}
	if input.BedConfig != nil {
		roomType.BedConfig = *input.BedConfig
	}
	if input.MaxOccupancy != nil {
		roomType.MaxOccupancy = *input.MaxOccupancy
	}
	if input.IsActive != nil {
		roomType.IsActive = *input.IsActive
	}

	if err := s.roomTypes.Save(ctx, roomType); err != nil {
		return nil, err
	}
	return roomType, nil
}

func (s *roomService) DeactivateRoomType(ctx context.Context, id uint) error {
	if _, err := s.GetRoomType(ctx, id); err != nil {
		return err
	}
	return s.roomTypes.Deactivate(ctx, id)
}

func (s *roomService) CreateRoom(ctx context.Context, input CreateRoomInput) (*models.Room, error) {
	if _, err := s.GetRoomType(ctx, input.RoomTypeID); err != nil {
		return nil, err
	}
	if existing, err := s.rooms.FindByNumber(ctx, input.RoomNumber); err == nil && existing != nil {
		return nil, ErrRoomNumberTaken
	}

	room := &models.Room{
		RoomNumber: input.RoomNumber,
		Floor:      input.Floor,
		RoomTypeID: input.RoomTypeID,
		Status:     models.RoomAvailable,
		ViewType:   input.ViewType,
		Notes:      input.Notes,
		IsActive:   true,
	}
	if input.CustomRate != nil {
		if input.CustomRate.IsNegative() {
			return nil, ErrNegativeAmount
		}
		room.CustomRate = decimal.NewNullDecimal(*input.CustomRate)
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return s.GetRoom(ctx, room.ID)
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context, filter repository.RoomFilter) ([]models.Room, error) {
	return s.rooms.FindAll(ctx, filter)
}

func (s *roomService) UpdateRoom(ctx context.Context, id uint, input UpdateRoomInput) (*models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RoomTypeID != nil {
		if _, err := s.GetRoomType(ctx, *input.RoomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = *input.RoomTypeID
	}
	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.Status != nil {
		room.Status = *input.Status
	}
	if input.ViewType != nil {
		room.ViewType = *input.ViewType
	}
	if input.Notes != nil {
		room.Notes = *input.Notes
	}
	if input.ClearRate {
		room.CustomRate = decimal.NullDecimal{}
	} else if input.CustomRate != nil {
		if input.CustomRate.IsNegative() {
			return nil, ErrNegativeAmount
		}
		room.CustomRate = decimal.NewNullDecimal(*input.CustomRate)
	}
	if input.IsActive != nil {
		room.IsActive = *input.IsActive
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}
	return s.GetRoom(ctx, room.ID)
}

func (s *roomService) DeactivateRoom(ctx context.Context, id uint) error {
	if _, err := s.GetRoom(ctx, id); err != nil {
		return err
	}
	return s.rooms.Deactivate(ctx, id)
}
