package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/santikahms/hotel-service/internal/dto"
	"github.com/santikahms/hotel-service/internal/middleware"
	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/internal/service"
)

type ExpenseHandler struct {
	svc service.ExpenseService
}

func NewExpenseHandler(svc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

func (h *ExpenseHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/expenses", h.Create)
	g.GET("/expenses", h.List)
	g.GET("/expenses/:id", h.Get)
	g.PUT("/expenses/:id", h.Update)
	g.DELETE("/expenses/:id", h.Delete)
}

func (h *ExpenseHandler) Create(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date, "date")
		if err != nil {
			return err
		}
		date = parsed
	}

	actorID := middleware.CurrentUserID(c)
	input := service.CreateExpenseInput{
		Date:        date,
		Category:    models.ExpenseCategory(req.Category),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
	}
	if actorID != 0 {
		input.CreatedBy = &actorID
	}

	expense, err := h.svc.Create(c.Request().Context(), input)
	if err != nil {
		return expenseError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

func (h *ExpenseHandler) List(c echo.Context) error {
	filter := repository.ExpenseFilter{}
	if s := c.QueryParam("category"); s != "" {
		filter.Category = models.ExpenseCategory(s)
	}
	from, err := parseOptionalDate(c.QueryParam("start_date"), "start_date")
	if err != nil {
		return err
	}
	to, err := parseOptionalDate(c.QueryParam("end_date"), "end_date")
	if err != nil {
		return err
	}
	filter.From = from
	filter.To = to

	expenses, total, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := dto.ExpenseListResponse{
		Expenses: make([]dto.ExpenseResponse, len(expenses)),
		Total:    total,
	}
	for i, e := range expenses {
		resp.Expenses[i] = dto.ToExpenseResponse(&e)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ExpenseHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	expense, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return expenseError(err)
	}
	return c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *ExpenseHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := service.UpdateExpenseInput{Description: req.Description}
	if req.Date != nil {
		date, err := parseDate(*req.Date, "date")
		if err != nil {
			return err
		}
		input.Date = &date
	}
	if req.Category != nil {
		category := models.ExpenseCategory(*req.Category)
		input.Category = &category
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	expense, err := h.svc.Update(c.Request().Context(), id, input)
	if err != nil {
		return expenseError(err)
	}
	return c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *ExpenseHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return expenseError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func expenseError(err error) error {
	switch {
	case errors.Is(err, service.ErrExpenseNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidAmount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
