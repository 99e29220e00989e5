package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/santikahms/hotel-service/internal/models"
	"github.com/santikahms/hotel-service/internal/repository"
)

type CreateExpenseInput struct {
	Date        time.Time
	Category    models.ExpenseCategory
	Amount      decimal.Decimal
	Description string
	CreatedBy   *uint
}

type UpdateExpenseInput struct {
	Date        *time.Time
	Category    *models.ExpenseCategory
	Amount      *decimal.Decimal
	Description *string
}

type ExpenseService interface {
	Create(ctx context.Context, input CreateExpenseInput) (*models.Expense, error)
	Get(ctx context.Context, id uint) (*models.Expense, error)
	List(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, int64, error)
	Update(ctx context.Context, id uint, input UpdateExpenseInput) (*models.Expense, error)
	Delete(ctx context.Context, id uint) error
}

type expenseService struct {
	expenses repository.ExpenseRepository
}

func NewExpenseService(expenses repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenses: expenses}
}

func (s *expenseService) Create(ctx context.Context, input CreateExpenseInput) (*models.Expense, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		Date:        date,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, id uint) (*models.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) List(ctx context.Context, filter repository.ExpenseFilter) ([]models.Expense, int64, error) {
	return s.expenses.FindAll(ctx, filter)
}

func (s *expenseService) Update(ctx context.Context, id uint, input UpdateExpenseInput) (*models.Expense, error) {
	expense, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, ErrInvalidAmount
		}
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}

	if err := s.expenses.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.expenses.Delete(ctx, id)
}
