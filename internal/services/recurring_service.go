package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/recurrence"
)

// recurringService handles recurring expense rules and scheduled generation.
type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

// CreateRecurring creates a recurring expense rule. The first occurrence is
// the start date itself.
func (s *recurringService) CreateRecurring(
	userID, categoryID uint,
	amount int64,
	description, frequency string,
	startDate time.Time,
	endDate *time.Time,
) (*models.RecurringExpense, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	freq, ok := recurrence.ParseFrequency(frequency)
	if !ok {
		return nil, apperrors.ErrInvalidFrequency
	}

	if endDate != nil && endDate.Before(startDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not be before start date")
	}

	// Verify category exists in the catalog
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense := &models.RecurringExpense{
		UserID:         userID,
		CategoryID:     categoryID,
		Amount:         amount,
		Description:    description,
		Frequency:      freq,
		StartDate:      startDate,
		EndDate:        endDate,
		NextOccurrence: startDate,
		IsActive:       true,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense.Category = category
	return expense, nil
}

// GetUserRecurring returns a paginated list of the user's recurring expenses.
func (s *recurringService) GetUserRecurring(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.RecurringExpense], error) {
	page.Defaults()

	base := s.db.Model(&models.RecurringExpense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.RecurringExpense
	if err := base.Preload("Category").Order("next_occurrence").
		Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetRecurringByID returns a recurring expense by ID if it belongs to the user.
func (s *recurringService) GetRecurringByID(userID, recurringID uint) (*models.RecurringExpense, error) {
	var expense models.RecurringExpense
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", recurringID, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateRecurring updates a recurring expense's mutable fields. Frequency and
// start date are fixed once created; delete and recreate to change them.
func (s *recurringService) UpdateRecurring(
	userID, recurringID uint,
	amount *int64,
	description string,
	endDate *time.Time,
) (*models.RecurringExpense, error) {
	expense, err := s.GetRecurringByID(userID, recurringID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		updates["amount"] = *amount
	}
	if description != "" {
		updates["description"] = description
	}
	if endDate != nil {
		updates["end_date"] = endDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return expense, nil
}

// DeleteRecurring soft-deletes a recurring expense rule. Transactions already
// generated from it are kept.
func (s *recurringService) DeleteRecurring(userID, recurringID uint) error {
	expense, err := s.GetRecurringByID(userID, recurringID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ToggleRecurring flips the active flag. Pausing freezes NextOccurrence, so
// reactivating catches up any occurrences that came due while paused.
func (s *recurringService) ToggleRecurring(userID, recurringID uint) (*models.RecurringExpense, error) {
	expense, err := s.GetRecurringByID(userID, recurringID)
	if err != nil {
		return nil, err
	}

	expense.IsActive = !expense.IsActive
	if err := s.db.Model(expense).Update("is_active", expense.IsActive).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GenerateDue materializes expense transactions for every active recurring
// rule whose next occurrence is due as of the given time, advancing each
// rule's schedule past asOf. Generation and schedule advancement happen in a
// single database transaction so a crash cannot double-post. Returns the
// number of transactions created.
func (s *recurringService) GenerateDue(asOf time.Time) (int, error) {
	return s.generate(0, asOf)
}

// GenerateDueForUser is GenerateDue restricted to one user's rules.
func (s *recurringService) GenerateDueForUser(userID uint, asOf time.Time) (int, error) {
	return s.generate(userID, asOf)
}

func (s *recurringService) generate(userID uint, asOf time.Time) (int, error) {
	// Due-ness is day-granular, so the pre-filter must pick up rules whose
	// next occurrence falls anywhere on asOf's calendar day.
	dayEnd := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location()).AddDate(0, 0, 1)

	query := s.db.Where("is_active = ? AND next_occurrence < ?", true, dayEnd)
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var due []models.RecurringExpense
	if err := query.Find(&due).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range due {
			expense := &due[i]
			next := expense.NextOccurrence

			// A rule overdue by several periods generates one transaction
			// per missed occurrence.
			for recurrence.IsDue(next, expense.EndDate, asOf) {
				transaction := &models.Transaction{
					UserID:      expense.UserID,
					CategoryID:  expense.CategoryID,
					Type:        models.TransactionTypeExpense,
					Amount:      expense.Amount,
					Description: fmt.Sprintf("%s (Auto-generated)", expense.Description),
					Date:        next,
				}
				if err := tx.Create(transaction).Error; err != nil {
					return err
				}
				created++
				next = recurrence.Next(next, expense.Frequency)
			}

			if err := tx.Model(expense).Update("next_occurrence", next).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if created > 0 {
		logger.Get().Infow("generated recurring transactions", "count", created, "as_of", asOf)
	}
	return created, nil
}
