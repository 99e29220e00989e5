package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
)

// MetricsCache is the slice of the cache the dashboard needs. A nil
// cache means every request hits the database.
type MetricsCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const metricsCacheTTL = 60 * time.Second

type DashboardMetrics struct {
	PeriodStart        time.Time       `json:"period_start"`
	PeriodEnd          time.Time       `json:"period_end"`
	TotalRooms         int64           `json:"total_rooms"`
	OccupiedRooms      int64           `json:"occupied_rooms"`
	AvailableRooms     int64           `json:"available_rooms"`
	OccupancyRate      float64         `json:"occupancy_rate"`
	ActiveReservations int64           `json:"active_reservations"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetIncome          decimal.Decimal `json:"net_income"`
}

type TodayActivity struct {
	Date           time.Time       `json:"date"`
	ArrivalsDue    int64           `json:"arrivals_due"`
	DeparturesDue  int64           `json:"departures_due"`
	InHouse        int64           `json:"in_house"`
	OccupiedRooms  int64           `json:"occupied_rooms"`
	AvailableRooms int64           `json:"available_rooms"`
	RevenueToday   decimal.Decimal `json:"revenue_today"`
}

type DashboardService interface {
	Metrics(ctx context.Context, from, to time.Time) (*DashboardMetrics, error)
	Today(ctx context.Context) (*TodayActivity, error)
}

type dashboardService struct {
	rooms        repository.RoomRepository
	reservations repository.ReservationRepository
	payments     repository.PaymentRepository
	expenses     repository.ExpenseRepository
	cache        MetricsCache
}

func NewDashboardService(
	rooms repository.RoomRepository,
	reservations repository.ReservationRepository,
	payments repository.PaymentRepository,
	expenses repository.ExpenseRepository,
	cache MetricsCache,
) DashboardService {
	return &dashboardService{
		rooms:        rooms,
		reservations: reservations,
		payments:     payments,
		expenses:     expenses,
		cache:        cache,
	}
}

// Metrics aggregates occupancy and money figures for a period. Zero
// from/to default to the current calendar month.
func (s *dashboardService) Metrics(ctx context.Context, from, to time.Time) (*DashboardMetrics, error) {
	if from.IsZero() || to.IsZero() {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	}

	key := fmt.Sprintf("dashboard:metrics:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if s.cache != nil {
		var cached DashboardMetrics
		if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	totalRooms, err := s.rooms.Count(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := s.rooms.CountByStatus(ctx, models.RoomOccupied)
	if err != nil {
		return nil, err
	}
	available, err := s.rooms.CountByStatus(ctx, models.RoomAvailable)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.reservations.CountByStatus(ctx, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	checkedIn, err := s.reservations.CountByStatus(ctx, models.StatusCheckedIn)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.SumActiveBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	spent, err := s.expenses.SumBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var occupancyRate float64
	if totalRooms > 0 {
		occupancyRate = float64(occupied) / float64(totalRooms) * 100
	}

	metrics := &DashboardMetrics{
		PeriodStart:        from,
		PeriodEnd:          to,
		TotalRooms:         totalRooms,
		OccupiedRooms:      occupied,
		AvailableRooms:     available,
		OccupancyRate:      occupancyRate,
		ActiveReservations: confirmed + checkedIn,
		TotalRevenue:       revenue,
		TotalExpenses:      spent,
		NetIncome:          revenue.Sub(spent),
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, metrics, metricsCacheTTL)
	}
	return metrics, nil
}

func (s *dashboardService) Today(ctx context.Context) (*TodayActivity, error) {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	arrivals, err := s.reservations.CountCheckInsBetween(ctx, day, next)
	if err != nil {
		return nil, err
	}
	departures, err := s.reservations.CountCheckOutsBetween(ctx, day, next)
	if err != nil {
		return nil, err
	}
	inHouse, err := s.reservations.CountByStatus(ctx, models.StatusCheckedIn)
	if err != nil {
		return nil, err
	}
	occupied, err := s.rooms.CountByStatus(ctx, models.RoomOccupied)
	if err != nil {
		return nil, err
	}
	available, err := s.rooms.CountByStatus(ctx, models.RoomAvailable)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.SumActiveBetween(ctx, day, next)
	if err != nil {
		return nil, err
	}

	return &TodayActivity{
		Date:           day,
		ArrivalsDue:    arrivals,
		DeparturesDue:  departures,
		InHouse:        inHouse,
		OccupiedRooms:  occupied,
		AvailableRooms: available,
		RevenueToday:   revenue,
	}, nil
}
