package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestRecurringFlow_GenerateCatchUp(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "recurring@test.com", "password123")
	foodID := app.categoryID(t, "food")

	// A weekly rule that started 15 days ago has three due occurrences:
	// the start date and the two weekly steps since.
	startDate := time.Now().AddDate(0, 0, -15).UTC()
	rec := app.request("POST", "/api/v1/recurring",
		fmt.Sprintf(`{"category_id":%d,"amount":2500,"description":"Meal kit","frequency":"weekly","start_date":%q}`,
			foodID, startDate.Format(time.RFC3339)), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["recurring_expense"].(map[string]interface{})
	expenseID := expense["id"].(float64)

	rec = app.request("POST", "/api/v1/recurring/generate", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["generated"].(float64) != 3 {
		t.Errorf("expected 3 generated transactions, got %v", result["generated"])
	}

	// Each occurrence materialized as an expense transaction.
	var transactions []models.Transaction
	if err := app.DB.Where("user_id = ?", uint(userID)).Order("date ASC").Find(&transactions).Error; err != nil {
		t.Fatalf("failed to load transactions: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(transactions))
	}
	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense type, got %s", tx.Type)
		}
		if tx.Amount != 2500 {
			t.Errorf("expected amount 2500, got %d", tx.Amount)
		}
	}

	// A second run generates nothing: the rule's next occurrence is in the future.
	rec = app.request("POST", "/api/v1/recurring/generate", "", token)
	result = parseJSON(t, rec)
	if result["generated"].(float64) != 0 {
		t.Errorf("expected 0 generated on second run, got %v", result["generated"])
	}

	// The rule's next occurrence advanced past today.
	rec = app.request("GET", fmt.Sprintf("/api/v1/recurring/%.0f", expenseID), "", token)
	expense = parseJSON(t, rec)["recurring_expense"].(map[string]interface{})
	next, err := time.Parse(time.RFC3339, expense["next_occurrence"].(string))
	if err != nil {
		t.Fatalf("failed to parse next_occurrence: %v", err)
	}
	if !next.After(time.Now()) {
		t.Errorf("expected next occurrence in the future, got %v", next)
	}
}

func TestRecurringFlow_PausedRuleSkipsGeneration(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "paused@test.com", "password123")
	healthID := app.categoryID(t, "health")

	startDate := time.Now().AddDate(0, 0, -3).UTC()
	rec := app.request("POST", "/api/v1/recurring",
		fmt.Sprintf(`{"category_id":%d,"amount":9900,"description":"Gym","frequency":"daily","start_date":%q}`,
			healthID, startDate.Format(time.RFC3339)), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expenseID := parseJSON(t, rec)["recurring_expense"].(map[string]interface{})["id"].(float64)

	// Pause the rule before anything is generated.
	rec = app.request("POST", fmt.Sprintf("/api/v1/recurring/%.0f/toggle", expenseID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["recurring_expense"].(map[string]interface{})
	if expense["is_active"] != false {
		t.Fatalf("expected rule to be paused, got is_active=%v", expense["is_active"])
	}

	rec = app.request("POST", "/api/v1/recurring/generate", "", token)
	result := parseJSON(t, rec)
	if result["generated"].(float64) != 0 {
		t.Errorf("expected 0 generated for a paused rule, got %v", result["generated"])
	}

	var count int64
	app.DB.Model(&models.Transaction{}).Where("user_id = ?", uint(userID)).Count(&count)
	if count != 0 {
		t.Errorf("expected no transactions for a paused rule, got %d", count)
	}

	// Resuming picks the backlog up on the next run.
	app.request("POST", fmt.Sprintf("/api/v1/recurring/%.0f/toggle", expenseID), "", token)
	rec = app.request("POST", "/api/v1/recurring/generate", "", token)
	result = parseJSON(t, rec)
	if result["generated"].(float64) != 4 {
		t.Errorf("expected 4 generated after resume (start plus 3 days), got %v", result["generated"])
	}
}

func TestRecurringFlow_GenerateScopedToSessionUser(t *testing.T) {
	app := setupApp(t)
	ownerToken, _, ownerID := app.registerUser(t, "owner@test.com", "password123")
	otherToken, _, _ := app.registerUser(t, "other@test.com", "password123")
	foodID := app.categoryID(t, "food")

	startDate := time.Now().AddDate(0, 0, -1).UTC()
	rec := app.request("POST", "/api/v1/recurring",
		fmt.Sprintf(`{"category_id":%d,"amount":2500,"description":"Meal kit","frequency":"weekly","start_date":%q}`,
			foodID, startDate.Format(time.RFC3339)), ownerToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Another user's generate run does not touch the owner's rule.
	rec = app.request("POST", "/api/v1/recurring/generate", "", otherToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if generated := parseJSON(t, rec)["generated"].(float64); generated != 0 {
		t.Errorf("expected 0 generated for another user, got %v", generated)
	}
	var count int64
	app.DB.Model(&models.Transaction{}).Where("user_id = ?", uint(ownerID)).Count(&count)
	if count != 0 {
		t.Fatalf("expected no transactions for the owner yet, got %d", count)
	}

	// The owner's own run picks it up.
	rec = app.request("POST", "/api/v1/recurring/generate", "", ownerToken)
	if generated := parseJSON(t, rec)["generated"].(float64); generated != 1 {
		t.Errorf("expected 1 generated for the owner, got %v", generated)
	}
}

func TestRecurringFlow_DeleteKeepsHistory(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "delete-recurring@test.com", "password123")
	travelID := app.categoryID(t, "travel")

	startDate := time.Now().AddDate(0, 0, -1).UTC()
	rec := app.request("POST", "/api/v1/recurring",
		fmt.Sprintf(`{"category_id":%d,"amount":12000,"description":"Commuter pass","frequency":"weekly","start_date":%q}`,
			travelID, startDate.Format(time.RFC3339)), token)
	expenseID := parseJSON(t, rec)["recurring_expense"].(map[string]interface{})["id"].(float64)

	app.request("POST", "/api/v1/recurring/generate", "", token)

	rec = app.request("DELETE", fmt.Sprintf("/api/v1/recurring/%.0f", expenseID), "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	// The rule is gone but its generated transaction survives.
	rec = app.request("GET", fmt.Sprintf("/api/v1/recurring/%.0f", expenseID), "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}

	var count int64
	app.DB.Model(&models.Transaction{}).Where("user_id = ?", uint(userID)).Count(&count)
	if count != 1 {
		t.Errorf("expected the generated transaction to survive, got %d", count)
	}
}
