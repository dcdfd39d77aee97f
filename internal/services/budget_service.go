package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"fintrack/internal/budget"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// budgetService handles budget allocation business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetAllocation returns the user's saved allocation, or the default
// allocation if the user has never saved one.
func (s *budgetService) GetAllocation(userID uint) (budget.Allocation, error) {
	var userBudget models.UserBudget
	if err := s.db.Where("user_id = ?", userID).First(&userBudget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return budget.DefaultAllocation(), nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget.Allocation(userBudget.Allocation), nil
}

// SaveAllocation validates and persists the user's allocation, replacing any
// previous one. Invalid allocations are rejected with the specific rule that
// failed.
func (s *budgetService) SaveAllocation(userID uint, allocation budget.Allocation) (budget.Allocation, error) {
	result := budget.Validate(allocation)
	if !result.Valid {
		return nil, allocationError(allocation, result)
	}

	var userBudget models.UserBudget
	err := s.db.Where("user_id = ?", userID).First(&userBudget).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		userBudget = models.UserBudget{
			UserID:     userID,
			Allocation: models.AllocationColumn(allocation),
		}
		if err := s.db.Create(&userBudget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		userBudget.Allocation = models.AllocationColumn(allocation)
		if err := s.db.Save(&userBudget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return allocation, nil
}

// ValidateAllocation checks an allocation without persisting anything.
func (s *budgetService) ValidateAllocation(allocation budget.Allocation) budget.ValidationResult {
	return budget.Validate(allocation)
}

// ListTemplates returns the static template catalog.
func (s *budgetService) ListTemplates() []budget.Template {
	return budget.Templates
}

// ApplyTemplate projects a template onto the recognized category set and
// saves it as the user's allocation. Template allocations bypass the policy
// minimums since the catalog is curated.
func (s *budgetService) ApplyTemplate(userID uint, templateID string) (budget.Allocation, error) {
	allocation, ok := budget.ApplyTemplate(templateID, budget.Categories)
	if !ok {
		return nil, apperrors.ErrTemplateNotFound
	}

	var userBudget models.UserBudget
	err := s.db.Where("user_id = ?", userID).First(&userBudget).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		userBudget = models.UserBudget{
			UserID:     userID,
			Allocation: models.AllocationColumn(allocation),
		}
		if err := s.db.Create(&userBudget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err != nil:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	default:
		userBudget.Allocation = models.AllocationColumn(allocation)
		if err := s.db.Save(&userBudget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return allocation, nil
}

// allocationError picks the most specific error for an invalid allocation.
func allocationError(allocation budget.Allocation, result budget.ValidationResult) error {
	if math.Abs(result.Difference) >= 0.01 {
		return apperrors.ErrInvalidAllocation
	}
	if allocation[budget.CategoryInvestment] < budget.MinInvestmentPct {
		return apperrors.ErrInvestmentTooLow
	}
	if allocation[budget.CategorySavings] < budget.MinSavingsPct {
		return apperrors.ErrSavingsTooLow
	}
	return apperrors.ErrInvalidAllocation
}
