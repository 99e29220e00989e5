package dto

import (
	"time"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
	}
}

type RoomTypeResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Description  string  `json:"description,omitempty"`
	BedConfig    string  `json:"bed_config,omitempty"`
	DefaultRate  float64 `json:"default_rate"`
	MaxOccupancy int     `json:"max_occupancy"`
	IsActive     bool    `json:"is_active"`
}

func ToRoomTypeResponse(rt *models.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:           rt.ID,
		Name:         rt.Name,
		Code:         rt.Code,
		Description:  rt.Description,
		BedConfig:    rt.BedConfig,
		DefaultRate:  rt.DefaultRate.InexactFloat64(),
		MaxOccupancy: rt.MaxOccupancy,
		IsActive:     rt.IsActive,
	}
}

type RoomResponse struct {
	ID            uint              `json:"id"`
	RoomNumber    string            `json:"room_number"`
	Floor         int               `json:"floor"`
	RoomTypeID    uint              `json:"room_type_id"`
	RoomType      *RoomTypeResponse `json:"room_type,omitempty"`
	Status        string            `json:"status"`
	ViewType      string            `json:"view_type,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	CustomRate    *float64          `json:"custom_rate,omitempty"`
	EffectiveRate float64           `json:"effective_rate"`
	IsActive      bool              `json:"is_active"`
}

func ToRoomResponse(r *models.Room) RoomResponse {
	resp := RoomResponse{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Floor:         r.Floor,
		RoomTypeID:    r.RoomTypeID,
		Status:        string(r.Status),
		ViewType:      r.ViewType,
		Notes:         r.Notes,
		EffectiveRate: r.EffectiveRate().InexactFloat64(),
		IsActive:      r.IsActive,
	}
	if r.CustomRate.Valid {
		v := r.CustomRate.Decimal.InexactFloat64()
		resp.CustomRate = &v
	}
	if r.RoomType != nil {
		rt := ToRoomTypeResponse(r.RoomType)
		resp.RoomType = &rt
	}
	return resp
}

type GuestResponse struct {
	ID                  uint       `json:"id"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	IDType              string     `json:"id_type,omitempty"`
	IDNumber            string     `json:"id_number,omitempty"`
	Nationality         string     `json:"nationality,omitempty"`
	BirthDate           *time.Time `json:"birth_date,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	IsVIP               bool       `json:"is_vip"`
	PreferredRoomTypeID *uint      `json:"preferred_room_type_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func ToGuestResponse(g *models.Guest) GuestResponse {
	return GuestResponse{
		ID:                  g.ID,
		FullName:            g.FullName,
		Email:               g.Email,
		Phone:               g.Phone,
		IDType:              g.IDType,
		IDNumber:            g.IDNumber,
		Nationality:         g.Nationality,
		BirthDate:           g.BirthDate,
		Notes:               g.Notes,
		IsVIP:               g.IsVIP,
		PreferredRoomTypeID: g.PreferredRoomTypeID,
		CreatedAt:           g.CreatedAt,
	}
}

type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type ReservationResponse struct {
	ID                 uint           `json:"id"`
	ConfirmationNumber string         `json:"confirmation_number"`
	GuestID            uint           `json:"guest_id"`
	Guest              *GuestResponse `json:"guest,omitempty"`
	RoomID             uint           `json:"room_id"`
	Room               *RoomResponse  `json:"room,omitempty"`
	CheckInDate        string         `json:"check_in_date"`
	CheckOutDate       string         `json:"check_out_date"`
	Adults             int            `json:"adults"`
	Children           int            `json:"children"`
	RatePerNight       float64        `json:"rate_per_night"`
	Nights             int            `json:"nights"`
	TotalAmount        float64        `json:"total_amount"`
	Status             string         `json:"status"`
	BookingSource      string         `json:"booking_source,omitempty"`
	Notes              string         `json:"notes,omitempty"`
	CheckedInAt        *time.Time     `json:"checked_in_at,omitempty"`
	CheckedOutAt       *time.Time     `json:"checked_out_at,omitempty"`
	TotalPaid          *float64       `json:"total_paid,omitempty"`
	Balance            *float64       `json:"balance,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:                 r.ID,
		ConfirmationNumber: r.ConfirmationNumber,
		GuestID:            r.GuestID,
		RoomID:             r.RoomID,
		CheckInDate:        r.CheckInDate.Format("2006-01-02"),
		CheckOutDate:       r.CheckOutDate.Format("2006-01-02"),
		Adults:             r.Adults,
		Children:           r.Children,
		RatePerNight:       r.RatePerNight.InexactFloat64(),
		Nights:             r.Nights,
		TotalAmount:        r.TotalAmount.InexactFloat64(),
		Status:             string(r.Status),
		BookingSource:      r.BookingSource,
		Notes:              r.Notes,
		CheckedInAt:        r.CheckedInAt,
		CheckedOutAt:       r.CheckedOutAt,
		CreatedAt:          r.CreatedAt,
	}
	if r.Guest != nil {
		g := ToGuestResponse(r.Guest)
		resp.Guest = &g
	}
	if r.Room != nil {
		room := ToRoomResponse(r.Room)
		resp.Room = &room
	}
	return resp
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

type PaymentResponse struct {
	ID              uint      `json:"id"`
	ReservationID   uint      `json:"reservation_id"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentType     string    `json:"payment_type"`
	PaymentDate     string    `json:"payment_date"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	IsVoided        bool      `json:"is_voided"`
	VoidReason      string    `json:"void_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		ReservationID:   p.ReservationID,
		Amount:          p.Amount.InexactFloat64(),
		PaymentMethod:   string(p.PaymentMethod),
		PaymentType:     string(p.PaymentType),
		PaymentDate:     p.PaymentDate.Format("2006-01-02"),
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		IsVoided:        p.IsVoided,
		VoidReason:      p.VoidReason,
		CreatedAt:       p.CreatedAt,
	}
}

type BalanceResponse struct {
	ReservationID      uint    `json:"reservation_id"`
	ConfirmationNumber string  `json:"confirmation_number"`
	ReservationStatus  string  `json:"reservation_status"`
	TotalAmount        float64 `json:"total_amount"`
	TotalPaid          float64 `json:"total_paid"`
	Balance            float64 `json:"balance"`
	PaymentStatus      string  `json:"payment_status"`
}

func ToBalanceResponse(b *service.BalanceInfo) BalanceResponse {
	return BalanceResponse{
		ReservationID:      b.ReservationID,
		ConfirmationNumber: b.ConfirmationNumber,
		ReservationStatus:  string(b.ReservationStatus),
		TotalAmount:        b.TotalAmount.InexactFloat64(),
		TotalPaid:          b.TotalPaid.InexactFloat64(),
		Balance:            b.Balance.InexactFloat64(),
		PaymentStatus:      b.PaymentStatus,
	}
}

type QuoteResponse struct {
	NightlyRate     float64 `json:"nightly_rate"`
	DiscountPercent float64 `json:"discount_percent"`
	EffectiveRate   float64 `json:"effective_rate"`
	Nights          int     `json:"nights"`
	TotalAmount     float64 `json:"total_amount"`
}

func ToQuoteResponse(q *service.StayQuote) QuoteResponse {
	return QuoteResponse{
		NightlyRate:     q.NightlyRate.InexactFloat64(),
		DiscountPercent: q.DiscountPercent.InexactFloat64(),
		EffectiveRate:   q.EffectiveRate.InexactFloat64(),
		Nights:          q.Nights,
		TotalAmount:     q.TotalAmount.InexactFloat64(),
	}
}

type AvailabilityResponse struct {
	RoomID    uint  `json:"room_id"`
	Available bool  `json:"available"`
	Conflicts int64 `json:"conflicts"`
}

type ExpenseResponse struct {
	ID          uint      `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Category:    string(e.Category),
		Amount:      e.Amount.InexactFloat64(),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
}

type DashboardMetricsResponse struct {
	PeriodStart        string  `json:"period_start"`
	PeriodEnd          string  `json:"period_end"`
	TotalRooms         int64   `json:"total_rooms"`
	OccupiedRooms      int64   `json:"occupied_rooms"`
	AvailableRooms     int64   `json:"available_rooms"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	ActiveReservations int64   `json:"active_reservations"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalExpenses      float64 `json:"total_expenses"`
	NetIncome          float64 `json:"net_income"`
}

func ToDashboardMetricsResponse(m *service.DashboardMetrics) DashboardMetricsResponse {
	return DashboardMetricsResponse{
		PeriodStart:        m.PeriodStart.Format("2006-01-02"),
		PeriodEnd:          m.PeriodEnd.Format("2006-01-02"),
		TotalRooms:         m.TotalRooms,
		OccupiedRooms:      m.OccupiedRooms,
		AvailableRooms:     m.AvailableRooms,
		OccupancyRate:      m.OccupancyRate,
		ActiveReservations: m.ActiveReservations,
		TotalRevenue:       m.TotalRevenue.InexactFloat64(),
		TotalExpenses:      m.TotalExpenses.InexactFloat64(),
		NetIncome:          m.NetIncome.InexactFloat64(),
	}
}

type TodayResponse struct {
	Date           string  `json:"date"`
	ArrivalsDue    int64   `json:"arrivals_due"`
	DeparturesDue  int64   `json:"departures_due"`
	InHouse        int64   `json:"in_house"`
	OccupiedRooms  int64   `json:"occupied_rooms"`
	AvailableRooms int64   `json:"available_rooms"`
	RevenueToday   float64 `json:"revenue_today"`
}

func ToTodayResponse(t *service.TodayActivity) TodayResponse {
	return TodayResponse{
		Date:           t.Date.Format("2006-01-02"),
		ArrivalsDue:    t.ArrivalsDue,
		DeparturesDue:  t.DeparturesDue,
		InHouse:        t.InHouse,
		OccupiedRooms:  t.OccupiedRooms,
		AvailableRooms: t.AvailableRooms,
		RevenueToday:   t.RevenueToday.InexactFloat64(),
	}
}
