package service

import (
	"errors"
	"fmt"

	"github.com/santikahms/hotel-service/internal/models"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrRoomTypeCodeTaken   = errors.New("room type code already in use")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNumberTaken     = errors.New("room number already in use")
	ErrRoomNotAvailable    = errors.New("room is not available")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrGuestHasHistory     = errors.New("guest has reservations and cannot be deleted")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDates        = errors.New("check_out_date must be after check_in_date")
	ErrNegativeAmount      = errors.New("total_amount must not be negative")
	ErrRoomUnavailable     = errors.New("room already has a reservation for the selected dates")
	ErrReservationFinal    = errors.New("reservation is in a terminal status")
	ErrOutstandingBalance  = errors.New("reservation has an outstanding balance")
	ErrReservationClosed   = errors.New("payments are only accepted for confirmed or checked-in reservations")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentVoided       = errors.New("payment is already voided")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrInvalidDiscount     = errors.New("discount_percent must be between 0 and 100")
)

// InvalidTransitionError reports a rejected status change, naming both sides.
type InvalidTransitionError struct {
	From models.ReservationStatus
	To   models.ReservationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}
