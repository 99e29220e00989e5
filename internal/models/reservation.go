package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// IsTerminal reports whether no further transitions or payments are allowed.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

type Reservation struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	ConfirmationNumber string            `gorm:"size:20;uniqueIndex;not null" json:"confirmation_number"`
	GuestID            uint              `gorm:"not null;index" json:"guest_id"`
	RoomID             uint              `gorm:"not null;index" json:"room_id"`
	CheckInDate        time.Time         `gorm:"type:date;not null;index:idx_reservations_dates" json:"check_in_date"`
	CheckOutDate       time.Time         `gorm:"type:date;not null;index:idx_reservations_dates" json:"check_out_date"`
	Adults             int               `gorm:"default:1" json:"adults"`
	Children           int               `gorm:"default:0" json:"children"`
	RatePerNight       decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"rate_per_night"`
	Nights             int               `gorm:"not null" json:"nights"`
	TotalAmount        decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Status             ReservationStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	BookingSource      string            `gorm:"size:50" json:"booking_source,omitempty"`
	Notes              string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy          uint              `gorm:"not null" json:"created_by"`
	CheckedInBy        *uint             `json:"checked_in_by,omitempty"`
	CheckedOutBy       *uint             `json:"checked_out_by,omitempty"`
	CheckedInAt        *time.Time        `json:"checked_in_at,omitempty"`
	CheckedOutAt       *time.Time        `json:"checked_out_at,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`

	Guest    *Guest    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Payments []Payment `gorm:"foreignKey:ReservationID" json:"payments,omitempty"`
}
