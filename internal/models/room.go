package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable  RoomStatus = "available"
	RoomOccupied   RoomStatus = "occupied"
	RoomOutOfOrder RoomStatus = "out_of_order"
)

type RoomType struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Code         string          `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	BedConfig    string          `gorm:"size:100" json:"bed_config,omitempty"`
	DefaultRate  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"default_rate"`
	MaxOccupancy int             `json:"max_occupancy"`
	IsActive     bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Room struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	RoomNumber string              `gorm:"size:10;uniqueIndex;not null" json:"room_number"`
	Floor      int                 `json:"floor"`
	RoomTypeID uint                `gorm:"not null;index" json:"room_type_id"`
	Status     RoomStatus          `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	ViewType   string              `gorm:"size:50" json:"view_type,omitempty"`
	Notes      string              `gorm:"type:text" json:"notes,omitempty"`
	CustomRate decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"custom_rate,omitempty"`
	IsActive   bool                `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`

	RoomType *RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}

// EffectiveRate is the nightly rate billed for this room: the room-level
// override when set, otherwise the room type's default rate.
func (r *Room) EffectiveRate() decimal.Decimal {
	if r.CustomRate.Valid {
		return r.CustomRate.Decimal
	}
	if r.RoomType != nil {
		return r.RoomType.DefaultRate
	}
	return decimal.Zero
}
