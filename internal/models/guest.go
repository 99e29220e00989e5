package models

import "time"

type Guest struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	FullName            string     `gorm:"size:100;not null;index" json:"full_name"`
	Email               string     `gorm:"size:100;index" json:"email,omitempty"`
	Phone               string     `gorm:"size:20;index" json:"phone,omitempty"`
	IDType              string     `gorm:"size:50" json:"id_type,omitempty"`
	IDNumber            string     `gorm:"size:50" json:"id_number,omitempty"`
	Nationality         string     `gorm:"size:50" json:"nationality,omitempty"`
	BirthDate           *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Notes               string     `gorm:"type:text" json:"notes,omitempty"`
	IsVIP               bool       `gorm:"column:is_vip;not null;default:false" json:"is_vip"`
	PreferredRoomTypeID *uint      `json:"preferred_room_type_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	PreferredRoomType *RoomType `gorm:"foreignKey:PreferredRoomTypeID" json:"preferred_room_type,omitempty"`
}
