package services

import (
	"strings"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestCreateRecurring(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		expense, err := svc.CreateRecurring(user.ID, cat.ID, 120000, "Rent", "monthly", start, nil)
		testutil.AssertNoError(t, err)

		if expense.ID == 0 {
			t.Fatal("expected non-zero expense ID")
		}
		if !expense.NextOccurrence.Equal(start) {
			t.Errorf("expected first occurrence at start date, got %v", expense.NextOccurrence)
		}
		if !expense.IsActive {
			t.Error("expected expense to be active")
		}
	})

	t.Run("invalid_frequency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		_, err := svc.CreateRecurring(user.ID, cat.ID, 1000, "Bad", "fortnightly", time.Now(), nil)
		testutil.AssertAppError(t, err, "INVALID_FREQUENCY")
	})

	t.Run("invalid_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateRecurring(user.ID, 9999, 1000, "Bad", "monthly", time.Now(), nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("end_before_start", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		start := time.Now()
		end := start.AddDate(0, -1, 0)
		_, err := svc.CreateRecurring(user.ID, cat.ID, 1000, "Bad", "monthly", start, &end)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestToggleRecurring(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRecurringService(db)
	user := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db)
	expense := testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, time.Now())

	toggled, err := svc.ToggleRecurring(user.ID, expense.ID)
	testutil.AssertNoError(t, err)
	if toggled.IsActive {
		t.Error("expected expense to be paused after toggle")
	}

	toggled, err = svc.ToggleRecurring(user.ID, expense.ID)
	testutil.AssertNoError(t, err)
	if !toggled.IsActive {
		t.Error("expected expense to be active after second toggle")
	}
}

func TestGetUserRecurring(t *testing.T) {
	t.Run("returns_user_rules_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		testutil.CreateTestRecurring(t, db, user1.ID, cat.ID, 1000, time.Now())
		testutil.CreateTestRecurring(t, db, user1.ID, cat.ID, 2000, time.Now())
		testutil.CreateTestRecurring(t, db, user2.ID, cat.ID, 3000, time.Now())

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserRecurring(user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 rules, got %d", result.TotalItems)
		}
	})
}

func TestDeleteRecurring(t *testing.T) {
	t.Run("keeps_generated_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		start := time.Now().AddDate(0, 0, -1)
		expense := testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, start)

		created, err := svc.GenerateDue(time.Now())
		testutil.AssertNoError(t, err)
		if created == 0 {
			t.Fatal("expected at least one generated transaction")
		}

		err = svc.DeleteRecurring(user.ID, expense.ID)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count)
		if count == 0 {
			t.Error("expected generated transactions to survive rule deletion")
		}
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)
		expense := testutil.CreateTestRecurring(t, db, user1.ID, cat.ID, 5000, time.Now())

		err := svc.DeleteRecurring(user2.ID, expense.ID)
		testutil.AssertAppError(t, err, "RECURRING_NOT_FOUND")
	})
}

func TestGenerateDue(t *testing.T) {
	t.Run("creates_expense_transaction_and_advances", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		start := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
		expense := testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, start)

		created, err := svc.GenerateDue(start)
		testutil.AssertNoError(t, err)
		if created != 1 {
			t.Fatalf("expected 1 transaction, got %d", created)
		}

		var tx models.Transaction
		if err := db.Where("user_id = ?", user.ID).First(&tx).Error; err != nil {
			t.Fatalf("failed to load generated transaction: %v", err)
		}
		if tx.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense type, got %s", tx.Type)
		}
		if tx.Amount != 5000 {
			t.Errorf("expected amount 5000, got %d", tx.Amount)
		}
		if !strings.Contains(tx.Description, "(Auto-generated)") {
			t.Errorf("expected auto-generated marker in description, got %q", tx.Description)
		}

		refreshed, err := svc.GetRecurringByID(user.ID, expense.ID)
		testutil.AssertNoError(t, err)
		expectedNext := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
		if !refreshed.NextOccurrence.Equal(expectedNext) {
			t.Errorf("expected next occurrence %v, got %v", expectedNext, refreshed.NextOccurrence)
		}
	})

	t.Run("catches_up_missed_occurrences", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		// Three months behind
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, start)

		created, err := svc.GenerateDue(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		if created != 3 {
			t.Errorf("expected 3 catch-up transactions, got %d", created)
		}
	})

	t.Run("due_later_the_same_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		// Due-ness is day-granular: a rule scheduled for the evening is
		// picked up by a morning run on the same day.
		start := time.Date(2026, 2, 13, 18, 0, 0, 0, time.UTC)
		testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, start)

		created, err := svc.GenerateDue(time.Date(2026, 2, 13, 8, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		if created != 1 {
			t.Errorf("expected 1 transaction for a rule due later the same day, got %d", created)
		}
	})

	t.Run("skips_inactive_rules", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		expense := testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, time.Now().AddDate(0, 0, -1))
		_, err := svc.ToggleRecurring(user.ID, expense.ID)
		testutil.AssertNoError(t, err)

		created, err := svc.GenerateDue(time.Now())
		testutil.AssertNoError(t, err)
		if created != 0 {
			t.Errorf("expected 0 transactions for paused rule, got %d", created)
		}
	})

	t.Run("respects_end_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
		expense := testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, start)
		if err := db.Model(expense).Update("end_date", end).Error; err != nil {
			t.Fatalf("failed to set end date: %v", err)
		}

		// Jan 1 and Feb 1 fall before the end date; Mar 1 does not.
		created, err := svc.GenerateDue(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		if created != 2 {
			t.Errorf("expected 2 transactions before end date, got %d", created)
		}
	})

	t.Run("scoped_to_one_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestRecurring(t, db, user1.ID, cat.ID, 5000, start)
		testutil.CreateTestRecurring(t, db, user2.ID, cat.ID, 7000, start)

		created, err := svc.GenerateDueForUser(user1.ID, start)
		testutil.AssertNoError(t, err)
		if created != 1 {
			t.Fatalf("expected 1 transaction for user1, got %d", created)
		}

		var count int64
		db.Model(&models.Transaction{}).Where("user_id = ?", user2.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected user2's rule to be untouched, got %d transactions", count)
		}

		// The unscoped run still covers everyone with a due rule.
		created, err = svc.GenerateDue(start)
		testutil.AssertNoError(t, err)
		if created != 1 {
			t.Errorf("expected 1 transaction for user2 on the unscoped run, got %d", created)
		}
	})

	t.Run("nothing_due", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db)

		testutil.CreateTestRecurring(t, db, user.ID, cat.ID, 5000, time.Now().AddDate(0, 1, 0))

		created, err := svc.GenerateDue(time.Now())
		testutil.AssertNoError(t, err)
		if created != 0 {
			t.Errorf("expected 0 transactions, got %d", created)
		}
	})
}
