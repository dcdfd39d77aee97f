package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// incomeService handles income tracking.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// RecordIncome records the user's income for a month, in cents. The month is
// normalized to its first day; recording a month twice updates the existing
// record rather than stacking entries.
func (s *incomeService) RecordIncome(userID uint, amount int64, month time.Time) (*models.Income, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income amount must be positive")
	}

	normalized := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	var income models.Income
	err := s.db.Where("user_id = ? AND month = ?", userID, normalized).First(&income).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		income = models.Income{UserID: userID, Amount: amount, Month: normalized}
		if err := s.db.Create(&income).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		income.Amount = amount
		if err := s.db.Save(&income).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &income, nil
}

// GetLatestIncome returns the most recent income record for the user.
func (s *incomeService) GetLatestIncome(userID uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("user_id = ?", userID).Order("month DESC").First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "No income recorded")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// GetUserIncomes returns a paginated income history, newest first.
func (s *incomeService) GetUserIncomes(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Order("month DESC").Scopes(pagination.Paginate(page)).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}
