package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/recurrence"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:         email,
		Password:      string(hash),
		RiskTolerance: "moderate",
		IsActive:      true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a catalog category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestIncome records an income of the given amount (in cents) for the month.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount int64, month time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Amount: amount,
		Month:  time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestTransaction creates a transaction of the given type and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID uint, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Type:       txType,
		Amount:     amount,
		Date:       time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestRecurring creates an active monthly recurring expense starting at startDate.
func CreateTestRecurring(t *testing.T, db *gorm.DB, userID, categoryID uint, amount int64, startDate time.Time) *models.RecurringExpense {
	t.Helper()

	expense := &models.RecurringExpense{
		UserID:         userID,
		CategoryID:     categoryID,
		Amount:         amount,
		Description:    fmt.Sprintf("Test Recurring %d", nextID()),
		Frequency:      recurrence.Monthly,
		StartDate:      startDate,
		NextOccurrence: startDate,
		IsActive:       true,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return expense
}

// CreateTestPosition creates a portfolio entry with the given cost basis
// (units at buyPrice cents per unit).
func CreateTestPosition(t *testing.T, db *gorm.DB, userID uint, investmentType string, units float64, buyPrice int64) *models.PortfolioEntry {
	t.Helper()

	entry := &models.PortfolioEntry{
		UserID:         userID,
		InvestmentType: investmentType,
		Name:           fmt.Sprintf("Test Position %d", nextID()),
		Units:          units,
		BuyPrice:       buyPrice,
		CurrentPrice:   buyPrice,
		PurchaseDate:   time.Now(),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test position: %v", err)
	}
	return entry
}

// CreateTestGoal creates a savings goal with the given target (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, targetAmount int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: targetAmount,
		Deadline:     time.Now().AddDate(1, 0, 0),
		Category:     "savings",
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
