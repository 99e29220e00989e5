package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodCheck    PaymentMethod = "check"
	MethodOther    PaymentMethod = "other"
)

type PaymentType string

const (
	PaymentFull        PaymentType = "full"
	PaymentDownpayment PaymentType = "downpayment"
	PaymentDeposit     PaymentType = "deposit"
	PaymentAdjustment  PaymentType = "adjustment"
)

type Payment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ReservationID   uint            `gorm:"not null;index" json:"reservation_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20);not null;index" json:"payment_method"`
	PaymentType     PaymentType     `gorm:"type:varchar(20);not null" json:"payment_type"`
	PaymentDate     time.Time       `gorm:"type:date;not null;index" json:"payment_date"`
	ReferenceNumber string          `gorm:"size:100" json:"reference_number,omitempty"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy      *uint           `json:"recorded_by,omitempty"`
	IsVoided        bool            `gorm:"not null;default:false;index" json:"is_voided"`
	VoidReason      string          `gorm:"type:text" json:"void_reason,omitempty"`
	VoidedBy        *uint           `json:"voided_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Reservation *Reservation `gorm:"foreignKey:ReservationID" json:"reservation,omitempty"`
}
