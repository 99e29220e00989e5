package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
)

type CreateGuestInput struct {
	FullName            string
	Email               string
	Phone               string
	IDType              string
	IDNumber            string
	Nationality         string
	BirthDate           *time.Time
	Notes               string
	IsVIP               bool
	PreferredRoomTypeID *uint
}

type UpdateGuestInput struct {
	FullName            *string
	Email               *string
	Phone               *string
	IDType              *string
	IDNumber            *string
	Nationality         *string
	BirthDate           *time.Time
	Notes               *string
	IsVIP               *bool
	PreferredRoomTypeID *uint
}

type GuestService interface {
	Create(ctx context.Context, input CreateGuestInput) (*models.Guest, error)
	Get(ctx context.Context, id uint) (*models.Guest, error)
	List(ctx context.Context, filter repository.GuestFilter) ([]models.Guest, int64, error)
	Update(ctx context.Context, id uint, input UpdateGuestInput) (*models.Guest, error)
	Delete(ctx context.Context, id uint) error
}

type guestService struct {
	guests       repository.GuestRepository
	reservations repository.ReservationRepository
}

func NewGuestService(guests repository.GuestRepository, reservations repository.ReservationRepository) GuestService {
	return &guestService{guests: guests, reservations: reservations}
}

func (s *guestService) Create(ctx context.Context, input CreateGuestInput) (*models.Guest, error) {
	guest := &models.Guest{
		FullName:            input.FullName,
		Email:               input.Email,
		Phone:               input.Phone,
		IDType:              input.IDType,
		IDNumber:            input.IDNumber,
		Nationality:         input.Nationality,
		BirthDate:           input.BirthDate,
		Notes:               input.Notes,
		IsVIP:               input.IsVIP,
		PreferredRoomTypeID: input.PreferredRoomTypeID,
	}
	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) Get(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.guests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (s *guestService) List(ctx context.Context, filter repository.GuestFilter) ([]models.Guest, int64, error) {
	return s.guests.FindAll(ctx, filter)
}

func (s *guestService) Update(ctx context.Context, id uint, input UpdateGuestInput) (*models.Guest, error) {
	guest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		guest.FullName = *input.FullName
	}
	if input.Email != nil {
		guest.Email = *input.Email
	}
	if input.Phone != nil {
		guest.Phone = *input.Phone
	}
	if input.IDType != nil {
		guest.IDType = *input.IDType
	}
	if input.IDNumber != nil {
		guest.IDNumber = *input.IDNumber
	}
	if input.Nationality != nil {
		guest.Nationality = *input.Nationality
	}
	if input.BirthDate != nil {
		guest.BirthDate = input.BirthDate
	}
	if input.Notes != nil {
		guest.Notes = *input.Notes
	}
	if input.IsVIP != nil {
		guest.IsVIP = *input.IsVIP
	}
	if input.PreferredRoomTypeID != nil {
		guest.PreferredRoomTypeID = input.PreferredRoomTypeID
	}

	if err := s.guests.Save(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// Delete refuses when the guest has any reservation, cancelled included.
func (s *guestService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	count, err := s.reservations.CountByGuest(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGuestHasHistory
	}
	return s.guests.Delete(ctx, id)
}
