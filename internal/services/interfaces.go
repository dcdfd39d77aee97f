package services

import (
	"time"

	"fintrack/internal/advisor"
	"fintrack/internal/budget"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	UpdateProfile(userID uint, firstName, lastName string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// CategoryServicer defines the contract for the global category catalog.
type CategoryServicer interface {
	GetCategories() ([]models.Category, error)
	GetCategoryByID(categoryID uint) (*models.Category, error)
}

// BudgetServicer defines the contract for budget allocation business logic.
type BudgetServicer interface {
	GetAllocation(userID uint) (budget.Allocation, error)
	SaveAllocation(userID uint, allocation budget.Allocation) (budget.Allocation, error)
	ValidateAllocation(allocation budget.Allocation) budget.ValidationResult
	ListTemplates() []budget.Template
	ApplyTemplate(userID uint, templateID string) (budget.Allocation, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *uint
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, categoryID uint, transactionType models.TransactionType, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// IncomeServicer defines the contract for income tracking.
type IncomeServicer interface {
	RecordIncome(userID uint, amount int64, month time.Time) (*models.Income, error)
	GetLatestIncome(userID uint) (*models.Income, error)
	GetUserIncomes(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
}

// RecurringServicer defines the contract for recurring expense rules.
type RecurringServicer interface {
	CreateRecurring(userID, categoryID uint, amount int64, description, frequency string, startDate time.Time, endDate *time.Time) (*models.RecurringExpense, error)
	GetUserRecurring(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.RecurringExpense], error)
	GetRecurringByID(userID, recurringID uint) (*models.RecurringExpense, error)
	UpdateRecurring(userID, recurringID uint, amount *int64, description string, endDate *time.Time) (*models.RecurringExpense, error)
	DeleteRecurring(userID, recurringID uint) error
	ToggleRecurring(userID, recurringID uint) (*models.RecurringExpense, error)
	GenerateDue(asOf time.Time) (int, error)
	GenerateDueForUser(userID uint, asOf time.Time) (int, error)
}

// PositionView is a portfolio entry enriched with derived valuation data.
type PositionView struct {
	models.PortfolioEntry
	Invested     int64   `json:"invested"`
	CurrentValue int64   `json:"current_value"`
	Profit       int64   `json:"profit"`
	ROI          float64 `json:"roi"`
}

// PortfolioSummary aggregates valuation across all positions.
type PortfolioSummary struct {
	TotalInvested int64   `json:"total_invested"`
	CurrentValue  int64   `json:"current_value"`
	Profit        int64   `json:"profit"`
	ROI           float64 `json:"roi"`
	Positions     int     `json:"positions"`
}

// PortfolioView combines per-position and aggregate valuation.
type PortfolioView struct {
	Positions []PositionView   `json:"positions"`
	Summary   PortfolioSummary `json:"summary"`
}

// RecommendationResult is the full investment recommendation response.
type RecommendationResult struct {
	RiskTolerance   advisor.RiskTolerance `json:"risk_tolerance"`
	Profile         advisor.RiskProfile   `json:"profile"`
	Capacity        advisor.Capacity      `json:"capacity"`
	Recommendations []advisor.Option      `json:"recommendations"`
	Amounts         map[string]int64      `json:"recommended_amounts"`
}

// InvestmentServicer defines the contract for portfolio and recommendation logic.
type InvestmentServicer interface {
	AddPosition(userID uint, investmentType, name string, units float64, buyPrice int64, purchaseDate time.Time) (*models.PortfolioEntry, error)
	GetPortfolio(userID uint) (*PortfolioView, error)
	GetPositionByID(userID, positionID uint) (*models.PortfolioEntry, error)
	UpdatePositionPrice(userID, positionID uint, currentPrice int64) (*models.PortfolioEntry, error)
	DeletePosition(userID, positionID uint) error
	GetRecommendations(userID uint, goal advisor.Goal) (*RecommendationResult, error)
	UpdateRiskTolerance(userID uint, riskTolerance string) (*models.User, error)
	ProjectSIP(monthlyAmount int64, annualRatePct float64, years int) advisor.SIPResult
	ProjectLumpSum(amount int64, annualRatePct float64, years int) advisor.LumpSumResult
}

// GoalProgress is a goal enriched with completion data.
type GoalProgress struct {
	models.Goal
	Progress      float64 `json:"progress"`
	Remaining     int64   `json:"remaining"`
	DaysRemaining int     `json:"days_remaining"`
}

// GoalServicer defines the contract for savings goal business logic.
type GoalServicer interface {
	CreateGoal(userID uint, name string, targetAmount int64, deadline time.Time, category, description string) (*models.Goal, error)
	GetUserGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[GoalProgress], error)
	GetGoalByID(userID, goalID uint) (*GoalProgress, error)
	UpdateGoal(userID, goalID uint, name string, targetAmount *int64, deadline *time.Time, description string) (*models.Goal, error)
	Contribute(userID, goalID uint, amount int64) (*GoalProgress, error)
	DeleteGoal(userID, goalID uint) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
