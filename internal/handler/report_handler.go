package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/santikahms/hotel-service/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/reports/reservations/export", h.Reservations)
	g.GET("/reports/payments/export", h.Payments)
}

func (h *ReportHandler) Reservations(c echo.Context) error {
	from, to, err := reportRange(c)
	if err != nil {
		return err
	}

	buf, err := h.svc.ReservationsReport(c.Request().Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDates) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	setAttachment(c, fmt.Sprintf("reservations_%s_%s.xlsx", from.Format(dateLayout), to.Format(dateLayout)))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ReportHandler) Payments(c echo.Context) error {
	from, to, err := reportRange(c)
	if err != nil {
		return err
	}

	buf, err := h.svc.PaymentsReport(c.Request().Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDates) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	setAttachment(c, fmt.Sprintf("payments_%s_%s.xlsx", from.Format(dateLayout), to.Format(dateLayout)))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// reportRange defaults to the current calendar month.
func reportRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if f, err := parseOptionalDate(c.QueryParam("start_date"), "start_date"); err != nil {
		return time.Time{}, time.Time{}, err
	} else if f != nil {
		from = *f
	}
	if t, err := parseOptionalDate(c.QueryParam("end_date"), "end_date"); err != nil {
		return time.Time{}, time.Time{}, err
	} else if t != nil {
		to = *t
	}
	return from, to, nil
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
