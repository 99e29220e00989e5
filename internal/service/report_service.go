package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/santikahms/hotel-service/internal/repository"
)

const dateLayout = "2006-01-02"

// ReportService builds xlsx exports for a date range.
type ReportService interface {
	ReservationsReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, error)
	PaymentsReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, error)
}

type reportService struct {
	reservations repository.ReservationRepository
	payments     repository.PaymentRepository
}

func NewReportService(reservations repository.ReservationRepository, payments repository.PaymentRepository) ReportService {
	return &reportService{reservations: reservations, payments: payments}
}

func (s *reportService) ReservationsReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, error) {
	if !to.After(from) {
		return nil, ErrInvalidDates
	}
	reservations, err := s.reservations.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Reservations"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{
		"Confirmation", "Guest", "Room", "Check-in", "Check-out",
		"Nights", "Rate/Night", "Total", "Paid", "Balance", "Status", "Source",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range reservations {
		row := i + 2
		guestName := ""
		if r.Guest != nil {
			guestName = r.Guest.FullName
		}
		roomNumber := ""
		if r.Room != nil {
			roomNumber = r.Room.RoomNumber
		}
		paid, err := s.payments.SumActiveForReservation(ctx, nil, r.ID)
		if err != nil {
			return nil, err
		}
		values := []any{
			r.ConfirmationNumber,
			guestName,
			roomNumber,
			r.CheckInDate.Format(dateLayout),
			r.CheckOutDate.Format(dateLayout),
			r.Nights,
			r.RatePerNight.InexactFloat64(),
			r.TotalAmount.InexactFloat64(),
			paid.InexactFloat64(),
			r.TotalAmount.Sub(paid).InexactFloat64(),
			string(r.Status),
			r.BookingSource,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return writeWorkbook(f)
}

func (s *reportService) PaymentsReport(ctx context.Context, from, to time.Time) (*bytes.Buffer, error) {
	if !to.After(from) {
		return nil, ErrInvalidDates
	}
	payments, err := s.payments.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payments"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{
		"Date", "Confirmation", "Guest", "Amount", "Method",
		"Type", "Reference", "Voided", "Void Reason",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, p := range payments {
		row := i + 2
		confirmation := ""
		guestName := ""
		if p.Reservation != nil {
			confirmation = p.Reservation.ConfirmationNumber
			if p.Reservation.Guest != nil {
				guestName = p.Reservation.Guest.FullName
			}
		}
		values := []any{
			p.PaymentDate.Format(dateLayout),
			confirmation,
			guestName,
			p.Amount.InexactFloat64(),
			string(p.PaymentMethod),
			string(p.PaymentType),
			p.ReferenceNumber,
			p.IsVoided,
			p.VoidReason,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return writeWorkbook(f)
}

func writeWorkbook(f *excelize.File) (*bytes.Buffer, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
