package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/santikahms/hotel-service/internal/dto"
	"github.com/santikahms/hotel-service/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/metrics", h.Metrics)
	g.GET("/dashboard/today", h.Today)
}

func (h *DashboardHandler) Metrics(c echo.Context) error {
	var from, to time.Time
	if f, err := parseOptionalDate(c.QueryParam("start_date"), "start_date"); err != nil {
		return err
	} else if f != nil {
		from = *f
	}
	if t, err := parseOptionalDate(c.QueryParam("end_date"), "end_date"); err != nil {
		return err
	} else if t != nil {
		to = *t
	}

	metrics, err := h.svc.Metrics(c.Request().Context(), from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToDashboardMetricsResponse(metrics))
}

func (h *DashboardHandler) Today(c echo.Context) error {
	activity, err := h.svc.Today(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToTodayResponse(activity))
}
