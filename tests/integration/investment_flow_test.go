package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestInvestmentFlow_PortfolioLifecycle(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "portfolio@test.com", "password123")

	// Add a position: 10 units of an index fund at $150 per unit.
	rec := app.request("POST", "/api/v1/investments",
		fmt.Sprintf(`{"investment_type":"index_funds","name":"Total Market Index","units":10,"buy_price":15000,"purchase_date":%q}`,
			time.Now().AddDate(0, -6, 0).UTC().Format(time.RFC3339)), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	position := parseJSON(t, rec)["position"].(map[string]interface{})
	positionID := position["id"].(float64)

	// Until a price update, the portfolio is valued at cost.
	rec = app.request("GET", "/api/v1/investments/portfolio", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_invested"].(float64) != 150000 {
		t.Errorf("expected 150000 invested, got %v", summary["total_invested"])
	}
	if summary["roi"].(float64) != 0 {
		t.Errorf("expected 0%% ROI at cost, got %v", summary["roi"])
	}

	// Mark the price up 20% and check the derived valuation.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/investments/%.0f/price", positionID),
		`{"current_price":18000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/investments/portfolio", "", token)
	summary = parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["current_value"].(float64) != 180000 {
		t.Errorf("expected current value 180000, got %v", summary["current_value"])
	}
	if summary["profit"].(float64) != 30000 {
		t.Errorf("expected profit 30000, got %v", summary["profit"])
	}
	if summary["roi"].(float64) != 20 {
		t.Errorf("expected 20%% ROI, got %v", summary["roi"])
	}

	// Deleting the position empties the portfolio.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/investments/%.0f", positionID), "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/investments/portfolio", "", token)
	summary = parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["positions"].(float64) != 0 {
		t.Errorf("expected empty portfolio after delete, got %v positions", summary["positions"])
	}
}

func TestInvestmentFlow_Recommendations(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "recommend@test.com", "password123")

	// Record a monthly income of $10,000.
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rec := app.request("POST", "/api/v1/income",
		fmt.Sprintf(`{"amount":1000000,"month":%q}`, month.Format(time.RFC3339)), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Allocate 20% of income to investment.
	rec = app.request("PUT", "/api/v1/budget",
		`{"allocation":{"mortgage":30,"food":20,"entertainment":10,"travel":10,"investment":20,"savings":10}}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Recommendations reflect the moderate default tier and the 20% budget.
	rec = app.request("GET", "/api/v1/investments/recommendations", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["risk_tolerance"] != "moderate" {
		t.Errorf("expected moderate risk tolerance, got %v", result["risk_tolerance"])
	}
	capacity := result["capacity"].(map[string]interface{})
	if capacity["monthly_investment_capacity"].(float64) != 200000 {
		t.Errorf("expected monthly capacity 200000, got %v", capacity["monthly_investment_capacity"])
	}
	if capacity["available_to_invest"].(float64) != 200000 {
		t.Errorf("expected 200000 available with nothing invested, got %v", capacity["available_to_invest"])
	}
	recommendations := result["recommendations"].([]interface{})
	if len(recommendations) == 0 {
		t.Fatal("expected recommendations for an affordable budget")
	}

	// Switching to conservative drops high-risk options.
	rec = app.request("PUT", "/api/v1/investments/risk-tolerance",
		`{"risk_tolerance":"conservative"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/investments/recommendations", "", token)
	result = parseJSON(t, rec)
	for _, raw := range result["recommendations"].([]interface{}) {
		option := raw.(map[string]interface{})
		if option["risk_level"] == "high" {
			t.Errorf("conservative recommendations must not include high risk, got %v", option["name"])
		}
	}

	// An unknown goal is rejected.
	rec = app.request("GET", "/api/v1/investments/recommendations?goal=moonshot", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown goal, got %d", rec.Code)
	}
}

func TestInvestmentFlow_Projection(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "projection@test.com", "password123")

	// Monthly contributions compound monthly.
	rec := app.request("POST", "/api/v1/investments/projection",
		`{"monthly_amount":10000,"annual_rate_pct":12,"years":10}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_invested"].(float64) != 1200000 {
		t.Errorf("expected total invested 1200000, got %v", result["total_invested"])
	}
	if result["total_value"].(float64) <= result["total_invested"].(float64) {
		t.Errorf("expected compounding to beat contributions, got %v", result["total_value"])
	}

	// A lump sum compounds annually: $1,000 at 10% over 2 years is $1,210.
	rec = app.request("POST", "/api/v1/investments/projection",
		`{"lump_sum_amount":100000,"annual_rate_pct":10,"years":2}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	if result["total_invested"].(float64) != 100000 {
		t.Errorf("expected total invested 100000, got %v", result["total_invested"])
	}
	if result["total_value"].(float64) != 121000 {
		t.Errorf("expected total value 121000, got %v", result["total_value"])
	}
	if result["estimated_returns"].(float64) != 21000 {
		t.Errorf("expected estimated returns 21000, got %v", result["estimated_returns"])
	}

	// The two modes are mutually exclusive, and one is required.
	rec = app.request("POST", "/api/v1/investments/projection",
		`{"monthly_amount":10000,"lump_sum_amount":100000,"annual_rate_pct":10,"years":2}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when both amounts are set, got %d", rec.Code)
	}
	rec = app.request("POST", "/api/v1/investments/projection",
		`{"annual_rate_pct":10,"years":2}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when no amount is set, got %d", rec.Code)
	}
}
