package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/pkg/database"
)

// EventPublisher emits domain events. A nil publisher disables publishing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type CreateReservationInput struct {
	GuestID       uint
	RoomID        uint
	CheckInDate   time.Time
	CheckOutDate  time.Time
	RatePerNight  decimal.Decimal
	TotalAmount   decimal.Decimal
	Adults        int
	Children      int
	BookingSource string
	Notes         string
	CreatedBy     uint
}

// UpdateReservationInput carries partial updates; nil fields are untouched.
// Status is deliberately absent: transitions go through their own operations.
type UpdateReservationInput struct {
	RoomID        *uint
	CheckInDate   *time.Time
	CheckOutDate  *time.Time
	RatePerNight  *decimal.Decimal
	TotalAmount   *decimal.Decimal
	Adults        *int
	Children      *int
	BookingSource *string
	Notes         *string
}

type AvailabilityResult struct {
	RoomID    uint
	Available bool
	Conflicts int64
}

type BalanceInfo struct {
	ReservationID      uint
	ConfirmationNumber string
	ReservationStatus  models.ReservationStatus
	TotalAmount        decimal.Decimal
	TotalPaid          decimal.Decimal
	Balance            decimal.Decimal
	PaymentStatus      string
}

type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error)
	Get(ctx context.Context, id uint) (*models.Reservation, error)
	List(ctx context.Context, filter repository.ReservationFilter) ([]models.Reservation, int64, error)
	Update(ctx context.Context, id uint, input UpdateReservationInput) (*models.Reservation, error)
	CheckIn(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error)
	CheckOut(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error)
	Cancel(ctx context.Context, id uint) (*models.Reservation, error)
	Availability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*AvailabilityResult, error)
	Balance(ctx context.Context, id uint) (*BalanceInfo, error)
	Quote(ctx context.Context, roomID uint, checkIn, checkOut time.Time, discountPercent decimal.Decimal) (*StayQuote, error)
}

type reservationService struct {
	reservations repository.ReservationRepository
	rooms        repository.RoomRepository
	guests       repository.GuestRepository
	payments     repository.PaymentRepository
	runTx        database.TxRunner
	publisher    EventPublisher
}

func NewReservationService(
	reservations repository.ReservationRepository,
	rooms repository.RoomRepository,
	guests repository.GuestRepository,
	payments repository.PaymentRepository,
	runTx database.TxRunner,
	publisher EventPublisher,
) ReservationService {
	return &reservationService{
		reservations: reservations,
		rooms:        rooms,
		guests:       guests,
		payments:     payments,
		runTx:        runTx,
		publisher:    publisher,
	}
}

func (s *reservationService) Create(ctx context.Context, input CreateReservationInput) (*models.Reservation, error) {
	if !input.CheckOutDate.After(input.CheckInDate) {
		return nil, ErrInvalidDates
	}
	if input.TotalAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	var result *models.Reservation

	err := s.runTx(ctx, func(tx *gorm.DB) error {
		// Lock the room row: serializes concurrent attempts on the same room.
		room, err := s.rooms.FindByIDForUpdate(ctx, tx, input.RoomID)
		if err != nil {
			return ErrRoomNotFound
		}
		if !room.IsActive {
			return ErrRoomNotAvailable
		}

		if _, err := s.guests.FindByID(ctx, input.GuestID); err != nil {
			return ErrGuestNotFound
		}

		conflicts, err := s.reservations.CountOverlapping(ctx, tx, input.RoomID, input.CheckInDate, input.CheckOutDate, 0)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		adults := input.Adults
		if adults < 1 {
			adults = 1
		}

		reservation := &models.Reservation{
			ConfirmationNumber: newConfirmationNumber(),
			GuestID:            input.GuestID,
			RoomID:             input.RoomID,
			CheckInDate:        input.CheckInDate,
			CheckOutDate:       input.CheckOutDate,
			Adults:             adults,
			Children:           input.Children,
			RatePerNight:       input.RatePerNight,
			Nights:             Nights(input.CheckInDate, input.CheckOutDate),
			TotalAmount:        input.TotalAmount,
			Status:             models.StatusConfirmed,
			BookingSource:      input.BookingSource,
			Notes:              input.Notes,
			CreatedBy:          input.CreatedBy,
		}
		if err := s.reservations.Create(ctx, tx, reservation); err != nil {
			return err
		}
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.created", result)
	return result, nil
}

func (s *reservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]models.Reservation, int64, error) {
	return s.reservations.FindAll(ctx, filter)
}

func (s *reservationService) Update(ctx context.Context, id uint, input UpdateReservationInput) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.runTx(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservations.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrReservationNotFound
		}
		if reservation.Status.IsTerminal() {
			return ErrReservationFinal
		}

		checkIn := reservation.CheckInDate
		checkOut := reservation.CheckOutDate
		roomID := reservation.RoomID
		if input.CheckInDate != nil {
			checkIn = *input.CheckInDate
		}
		if input.CheckOutDate != nil {
			checkOut = *input.CheckOutDate
		}
		if input.RoomID != nil {
			roomID = *input.RoomID
		}

		if !checkOut.After(checkIn) {
			return ErrInvalidDates
		}
		if input.TotalAmount != nil && input.TotalAmount.IsNegative() {
			return ErrNegativeAmount
		}

		datesChanged := !checkIn.Equal(reservation.CheckInDate) || !checkOut.Equal(reservation.CheckOutDate)
		roomChanged := roomID != reservation.RoomID
		if datesChanged || roomChanged {
			room, err := s.rooms.FindByIDForUpdate(ctx, tx, roomID)
			if err != nil {
				return ErrRoomNotFound
			}
			if !room.IsActive {
				return ErrRoomNotAvailable
			}
			conflicts, err := s.reservations.CountOverlapping(ctx, tx, roomID, checkIn, checkOut, reservation.ID)
			if err != nil {
				return err
			}
			if conflicts > 0 {
				return ErrRoomUnavailable
			}
		}

		reservation.CheckInDate = checkIn
		reservation.CheckOutDate = checkOut
		reservation.RoomID = roomID
		reservation.Nights = Nights(checkIn, checkOut)
		if input.RatePerNight != nil {
			reservation.RatePerNight = *input.RatePerNight
		}
		if input.TotalAmount != nil {
			reservation.TotalAmount = *input.TotalAmount
		}
		if input.Adults != nil {
			reservation.Adults = *input.Adults
		}
		if input.Children != nil {
			reservation.Children = *input.Children
		}
		if input.BookingSource != nil {
			reservation.BookingSource = *input.BookingSource
		}
		if input.Notes != nil {
			reservation.Notes = *input.Notes
		}

		if err := s.reservations.Save(ctx, tx, reservation); err != nil {
			return err
		}
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *reservationService) CheckIn(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.runTx(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservations.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrReservationNotFound
		}
		if reservation.Status != models.StatusConfirmed {
			return &InvalidTransitionError{From: reservation.Status, To: models.StatusCheckedIn}
		}

		room, err := s.rooms.FindByIDForUpdate(ctx, tx, reservation.RoomID)
		if err != nil {
			return ErrRoomNotFound
		}
		if room.Status == models.RoomOutOfOrder {
			return ErrRoomNotAvailable
		}

		now := time.Now()
		reservation.Status = models.StatusCheckedIn
		reservation.CheckedInAt = &now
		reservation.CheckedInBy = &actorID
		appendNote(reservation, notes)

		if err := s.reservations.Save(ctx, tx, reservation); err != nil {
			return err
		}
		if err := s.rooms.SetStatus(ctx, tx, room.ID, models.RoomOccupied); err != nil {
			return err
		}
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.checked_in", result)
	return result, nil
}

func (s *reservationService) CheckOut(ctx context.Context, id uint, actorID uint, notes string) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.runTx(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservations.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrReservationNotFound
		}
		if reservation.Status != models.StatusCheckedIn {
			return &InvalidTransitionError{From: reservation.Status, To: models.StatusCheckedOut}
		}

		paid, err := s.payments.SumActiveForReservation(ctx, tx, reservation.ID)
		if err != nil {
			return err
		}
		if reservation.TotalAmount.Sub(paid).IsPositive() {
			return ErrOutstandingBalance
		}

		now := time.Now()
		reservation.Status = models.StatusCheckedOut
		reservation.CheckedOutAt = &now
		reservation.CheckedOutBy = &actorID
		appendNote(reservation, notes)

		if err := s.reservations.Save(ctx, tx, reservation); err != nil {
			return err
		}
		if err := s.rooms.SetStatus(ctx, tx, reservation.RoomID, models.RoomAvailable); err != nil {
			return err
		}
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.checked_out", result)
	return result, nil
}

// Cancel soft-cancels: the row and its payment history stay queryable.
func (s *reservationService) Cancel(ctx context.Context, id uint) (*models.Reservation, error) {
	var result *models.Reservation

	err := s.runTx(ctx, func(tx *gorm.DB) error {
		reservation, err := s.reservations.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrReservationNotFound
		}
		if reservation.Status != models.StatusConfirmed && reservation.Status != models.StatusCheckedIn {
			return &InvalidTransitionError{From: reservation.Status, To: models.StatusCancelled}
		}

		wasCheckedIn := reservation.Status == models.StatusCheckedIn
		reservation.Status = models.StatusCancelled

		if err := s.reservations.Save(ctx, tx, reservation); err != nil {
			return err
		}
		if wasCheckedIn {
			if err := s.rooms.SetStatus(ctx, tx, reservation.RoomID, models.RoomAvailable); err != nil {
				return err
			}
		}
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("reservation.cancelled", result)
	return result, nil
}

func (s *reservationService) Availability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDates
	}
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return nil, ErrRoomNotFound
	}

	conflicts, err := s.reservations.CountOverlapping(ctx, nil, roomID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	return &AvailabilityResult{
		RoomID:    roomID,
		Available: conflicts == 0,
		Conflicts: conflicts,
	}, nil
}

// Balance recomputes totals from the full payment history on every call.
func (s *reservationService) Balance(ctx context.Context, id uint) (*BalanceInfo, error) {
	reservation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	paid, err := s.payments.SumActiveForReservation(ctx, nil, reservation.ID)
	if err != nil {
		return nil, err
	}

	balance := reservation.TotalAmount.Sub(paid)
	return &BalanceInfo{
		ReservationID:      reservation.ID,
		ConfirmationNumber: reservation.ConfirmationNumber,
		ReservationStatus:  reservation.Status,
		TotalAmount:        reservation.TotalAmount,
		TotalPaid:          paid,
		Balance:            balance,
		PaymentStatus:      paymentStatus(paid, balance),
	}, nil
}

func (s *reservationService) Quote(ctx context.Context, roomID uint, checkIn, checkOut time.Time, discountPercent decimal.Decimal) (*StayQuote, error) {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return QuoteStay(room.EffectiveRate(), discountPercent, checkIn, checkOut)
}

func (s *reservationService) publish(routingKey string, reservation *models.Reservation) {
	if s.publisher == nil || reservation == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, reservation)
}

func paymentStatus(paid, balance decimal.Decimal) string {
	switch {
	case balance.LessThanOrEqual(decimal.Zero):
		return "fully_paid"
	case paid.IsPositive():
		return "partial_paid"
	default:
		return "unpaid"
	}
}

func appendNote(reservation *models.Reservation, note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if reservation.Notes == "" {
		reservation.Notes = note
		return
	}
	reservation.Notes = reservation.Notes + "\n" + note
}

func newConfirmationNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:10]
}
