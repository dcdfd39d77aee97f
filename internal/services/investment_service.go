package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"fintrack/internal/advisor"
	"fintrack/internal/budget"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// investmentService handles portfolio tracking and investment recommendations.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// AddPosition records a new holding and its initial buy transaction in one
// database transaction. The current price starts at the buy price.
func (s *investmentService) AddPosition(
	userID uint,
	investmentType, name string,
	units float64,
	buyPrice int64,
	purchaseDate time.Time,
) (*models.PortfolioEntry, error) {
	if units <= 0 || buyPrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "units and buy price must be positive")
	}

	entry := &models.PortfolioEntry{
		UserID:         userID,
		InvestmentType: investmentType,
		Name:           name,
		Units:          units,
		BuyPrice:       buyPrice,
		CurrentPrice:   buyPrice,
		PurchaseDate:   purchaseDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		buy := &models.InvestmentTransaction{
			UserID:           userID,
			PortfolioEntryID: entry.ID,
			Type:             models.InvestmentTransactionBuy,
			Units:            units,
			PricePerUnit:     buyPrice,
			TotalAmount:      int64(math.Round(units * float64(buyPrice))),
			Date:             purchaseDate,
		}
		return tx.Create(buy).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// GetPortfolio returns every position with per-position and aggregate
// valuation derived from the last known prices.
func (s *investmentService) GetPortfolio(userID uint) (*PortfolioView, error) {
	var entries []models.PortfolioEntry
	if err := s.db.Where("user_id = ?", userID).Order("purchase_date").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	view := &PortfolioView{Positions: make([]PositionView, 0, len(entries))}
	for _, entry := range entries {
		invested := int64(math.Round(entry.Units * float64(entry.BuyPrice)))
		current := int64(math.Round(entry.Units * float64(entry.CurrentPrice)))
		roi := advisor.CalculateROI(invested, current)

		view.Positions = append(view.Positions, PositionView{
			PortfolioEntry: entry,
			Invested:       invested,
			CurrentValue:   current,
			Profit:         roi.Profit,
			ROI:            roi.ROI,
		})

		view.Summary.TotalInvested += invested
		view.Summary.CurrentValue += current
	}

	summaryROI := advisor.CalculateROI(view.Summary.TotalInvested, view.Summary.CurrentValue)
	view.Summary.Profit = summaryROI.Profit
	view.Summary.ROI = summaryROI.ROI
	view.Summary.Positions = len(entries)

	return view, nil
}

// GetPositionByID returns a position by ID if it belongs to the user.
func (s *investmentService) GetPositionByID(userID, positionID uint) (*models.PortfolioEntry, error) {
	var entry models.PortfolioEntry
	if err := s.db.Where("id = ? AND user_id = ?", positionID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// UpdatePositionPrice sets the last known price per unit for a position.
func (s *investmentService) UpdatePositionPrice(userID, positionID uint, currentPrice int64) (*models.PortfolioEntry, error) {
	if currentPrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be positive")
	}

	entry, err := s.GetPositionByID(userID, positionID)
	if err != nil {
		return nil, err
	}

	entry.CurrentPrice = currentPrice
	if err := s.db.Model(entry).Update("current_price", currentPrice).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// DeletePosition soft-deletes a position and its trade history.
func (s *investmentService) DeletePosition(userID, positionID uint) error {
	entry, err := s.GetPositionByID(userID, positionID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_entry_id = ?", entry.ID).
			Delete(&models.InvestmentTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(entry).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRecommendations builds the full recommendation response for a user:
// investment capacity from the latest income and the budget's investment
// percentage, options filtered and weighted for the user's risk tolerance
// and optional goal, and concrete amounts per option.
func (s *investmentService) GetRecommendations(userID uint, goal advisor.Goal) (*RecommendationResult, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	riskTolerance := user.RiskTolerance
	if riskTolerance == "" {
		riskTolerance = advisor.Moderate
	}

	// Latest recorded income; zero when none exists, which still yields a
	// valid (empty-capacity) recommendation.
	var income models.Income
	var monthlyIncome int64
	err := s.db.Where("user_id = ?", userID).Order("month DESC").First(&income).Error
	switch {
	case err == nil:
		monthlyIncome = income.Amount
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Investment percentage from the saved allocation, or the default.
	investmentPct := budget.DefaultAllocation()[budget.CategoryInvestment]
	var userBudget models.UserBudget
	err = s.db.Where("user_id = ?", userID).First(&userBudget).Error
	switch {
	case err == nil:
		if pct, ok := userBudget.Allocation[budget.CategoryInvestment]; ok {
			investmentPct = pct
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Sum of cost basis across current positions.
	var invested int64
	if err := s.db.Model(&models.PortfolioEntry{}).
		Select("COALESCE(SUM(ROUND(units * buy_price)), 0)").
		Where("user_id = ?", userID).
		Scan(&invested).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	capacity := advisor.CalculateCapacity(monthlyIncome, investmentPct, invested)
	recommendations := advisor.RecommendForGoal(riskTolerance, capacity.AvailableToInvest, goal)
	profile, _ := advisor.Profile(riskTolerance)

	return &RecommendationResult{
		RiskTolerance:   riskTolerance,
		Profile:         profile,
		Capacity:        capacity,
		Recommendations: recommendations,
		Amounts:         advisor.RecommendedAmounts(recommendations, capacity.AvailableToInvest),
	}, nil
}

// UpdateRiskTolerance sets the user's risk tolerance tier.
func (s *investmentService) UpdateRiskTolerance(userID uint, riskTolerance string) (*models.User, error) {
	tier, ok := advisor.ParseRiskTolerance(riskTolerance)
	if !ok {
		return nil, apperrors.ErrInvalidRiskTolerance
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.RiskTolerance = tier
	if err := s.db.Model(&user).Update("risk_tolerance", tier).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, nil
}

// ProjectSIP projects the value of fixed monthly contributions.
func (s *investmentService) ProjectSIP(monthlyAmount int64, annualRatePct float64, years int) advisor.SIPResult {
	return advisor.CalculateSIP(monthlyAmount, annualRatePct, years)
}

// ProjectLumpSum projects the value of a one-time investment.
func (s *investmentService) ProjectLumpSum(amount int64, annualRatePct float64, years int) advisor.LumpSumResult {
	return advisor.CalculateLumpSum(amount, annualRatePct, years)
}
