package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// goalService handles savings goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a savings goal.
func (s *goalService) CreateGoal(
	userID uint,
	name string,
	targetAmount int64,
	deadline time.Time,
	category, description string,
) (*models.Goal, error) {
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		Deadline:     deadline,
		Category:     category,
		Description:  description,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns a paginated list of goals with progress data,
// nearest deadline first.
func (s *goalService) GetUserGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[GoalProgress], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Order("deadline").Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	progress := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, withProgress(goal))
	}

	result := pagination.NewPageResponse(progress, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal with progress data if it belongs to the user.
func (s *goalService) GetGoalByID(userID, goalID uint) (*GoalProgress, error) {
	goal, err := s.findGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	gp := withProgress(*goal)
	return &gp, nil
}

// UpdateGoal updates a goal's mutable fields.
func (s *goalService) UpdateGoal(
	userID, goalID uint,
	name string,
	targetAmount *int64,
	deadline *time.Time,
	description string,
) (*models.Goal, error) {
	goal, err := s.findGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if targetAmount != nil {
		if *targetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
		}
		updates["target_amount"] = *targetAmount
	}
	if deadline != nil {
		updates["deadline"] = *deadline
	}
	if description != "" {
		updates["description"] = description
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return goal, nil
}

// Contribute adds an amount toward the goal's current total.
func (s *goalService) Contribute(userID, goalID uint, amount int64) (*GoalProgress, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contribution must be positive")
	}

	goal, err := s.findGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount += amount
	if err := s.db.Model(goal).Update("current_amount", goal.CurrentAmount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	gp := withProgress(*goal)
	return &gp, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(userID, goalID uint) error {
	goal, err := s.findGoal(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *goalService) findGoal(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// withProgress derives completion data. Progress is capped at 100 and
// DaysRemaining floors at 0 for past deadlines.
func withProgress(goal models.Goal) GoalProgress {
	var progress float64
	if goal.TargetAmount > 0 {
		progress = float64(goal.CurrentAmount) / float64(goal.TargetAmount) * 100
		if progress > 100 {
			progress = 100
		}
	}

	remaining := goal.TargetAmount - goal.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	days := int(time.Until(goal.Deadline).Hours() / 24)
	if days < 0 {
		days = 0
	}

	return GoalProgress{
		Goal:          goal,
		Progress:      progress,
		Remaining:     remaining,
		DaysRemaining: days,
	}
}
