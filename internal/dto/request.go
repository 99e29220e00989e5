package dto

// Request payloads. Money travels as JSON numbers and is converted to
// decimals at the service boundary. Dates use the 2006-01-02 layout.

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateRoomTypeRequest struct {
	Name         string  `json:"name" validate:"required"`
	Code         string  `json:"code" validate:"required,max=10"`
	Description  string  `json:"description"`
	BedConfig    string  `json:"bed_config"`
	DefaultRate  float64 `json:"default_rate" validate:"gte=0"`
	MaxOccupancy int     `json:"max_occupancy" validate:"gte=1"`
}

type UpdateRoomTypeRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	BedConfig    *string  `json:"bed_config,omitempty"`
	DefaultRate  *float64 `json:"default_rate,omitempty" validate:"omitempty,gte=0"`
	MaxOccupancy *int     `json:"max_occupancy,omitempty" validate:"omitempty,gte=1"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type CreateRoomRequest struct {
	RoomNumber string   `json:"room_number" validate:"required"`
	Floor      int      `json:"floor"`
	RoomTypeID uint     `json:"room_type_id" validate:"required"`
	ViewType   string   `json:"view_type"`
	Notes      string   `json:"notes"`
	CustomRate *float64 `json:"custom_rate,omitempty" validate:"omitempty,gte=0"`
}

type UpdateRoomRequest struct {
	Floor      *int     `json:"floor,omitempty"`
	RoomTypeID *uint    `json:"room_type_id,omitempty"`
	Status     *string  `json:"status,omitempty" validate:"omitempty,oneof=available occupied out_of_order"`
	ViewType   *string  `json:"view_type,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	CustomRate *float64 `json:"custom_rate,omitempty" validate:"omitempty,gte=0"`
	ClearRate  bool     `json:"clear_rate,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

type CreateGuestRequest struct {
	FullName            string `json:"full_name" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	Phone               string `json:"phone"`
	IDType              string `json:"id_type"`
	IDNumber            string `json:"id_number"`
	Nationality         string `json:"nationality"`
	BirthDate           string `json:"birth_date,omitempty"`
	Notes               string `json:"notes"`
	IsVIP               bool   `json:"is_vip"`
	PreferredRoomTypeID *uint  `json:"preferred_room_type_id,omitempty"`
}

type UpdateGuestRequest struct {
	FullName            *string `json:"full_name,omitempty"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone               *string `json:"phone,omitempty"`
	IDType              *string `json:"id_type,omitempty"`
	IDNumber            *string `json:"id_number,omitempty"`
	Nationality         *string `json:"nationality,omitempty"`
	BirthDate           *string `json:"birth_date,omitempty"`
	Notes               *string `json:"notes,omitempty"`
	IsVIP               *bool   `json:"is_vip,omitempty"`
	PreferredRoomTypeID *uint   `json:"preferred_room_type_id,omitempty"`
}

type CreateReservationRequest struct {
	GuestID       uint    `json:"guest_id" validate:"required"`
	RoomID        uint    `json:"room_id" validate:"required"`
	CheckInDate   string  `json:"check_in_date" validate:"required"`
	CheckOutDate  string  `json:"check_out_date" validate:"required"`
	RatePerNight  float64 `json:"rate_per_night" validate:"gte=0"`
	TotalAmount   float64 `json:"total_amount" validate:"gte=0"`
	Adults        int     `json:"adults" validate:"omitempty,gte=1"`
	Children      int     `json:"children" validate:"gte=0"`
	BookingSource string  `json:"booking_source"`
	Notes         string  `json:"notes"`
}

type UpdateReservationRequest struct {
	RoomID        *uint    `json:"room_id,omitempty"`
	CheckInDate   *string  `json:"check_in_date,omitempty"`
	CheckOutDate  *string  `json:"check_out_date,omitempty"`
	RatePerNight  *float64 `json:"rate_per_night,omitempty" validate:"omitempty,gte=0"`
	TotalAmount   *float64 `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
	Adults        *int     `json:"adults,omitempty" validate:"omitempty,gte=1"`
	Children      *int     `json:"children,omitempty" validate:"omitempty,gte=0"`
	BookingSource *string  `json:"booking_source,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

type CheckInRequest struct {
	Notes string `json:"notes"`
}

type CheckOutRequest struct {
	Notes string `json:"notes"`
}

type QuoteRequest struct {
	RoomID          uint    `json:"room_id" validate:"required"`
	CheckInDate     string  `json:"check_in_date" validate:"required"`
	CheckOutDate    string  `json:"check_out_date" validate:"required"`
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0,lte=100"`
}

type CreatePaymentRequest struct {
	ReservationID   uint    `json:"reservation_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod   string  `json:"payment_method" validate:"required,oneof=cash card transfer check other"`
	PaymentType     string  `json:"payment_type" validate:"required,oneof=full downpayment deposit adjustment"`
	PaymentDate     string  `json:"payment_date,omitempty"`
	ReferenceNumber string  `json:"reference_number"`
	Notes           string  `json:"notes"`
}

type VoidPaymentRequest struct {
	Reason string `json:"reason"`
}

type CreateExpenseRequest struct {
	Date        string  `json:"date,omitempty"`
	Category    string  `json:"category" validate:"required,oneof=utilities maintenance salary supplies other"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type UpdateExpenseRequest struct {
	Date        *string  `json:"date,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=utilities maintenance salary supplies other"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty"`
}
