package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/recurrence"
	"fintrack/internal/services"
)

type mockRecurringService struct {
	createFn      func(userID, categoryID uint, amount int64, description, frequency string, startDate time.Time, endDate *time.Time) (*models.RecurringExpense, error)
	toggleFn      func(userID, recurringID uint) (*models.RecurringExpense, error)
	generateDueFn func(userID uint, asOf time.Time) (int, error)
}

func (m *mockRecurringService) CreateRecurring(userID, categoryID uint, amount int64, description, frequency string, startDate time.Time, endDate *time.Time) (*models.RecurringExpense, error) {
	if m.createFn != nil {
		return m.createFn(userID, categoryID, amount, description, frequency, startDate, endDate)
	}
	return &models.RecurringExpense{}, nil
}

func (m *mockRecurringService) GetUserRecurring(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.RecurringExpense], error) {
	page.Defaults()
	resp := pagination.NewPageResponse([]models.RecurringExpense{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockRecurringService) GetRecurringByID(userID, recurringID uint) (*models.RecurringExpense, error) {
	return &models.RecurringExpense{Base: models.Base{ID: recurringID}, UserID: userID}, nil
}

func (m *mockRecurringService) UpdateRecurring(userID, recurringID uint, amount *int64, description string, endDate *time.Time) (*models.RecurringExpense, error) {
	return &models.RecurringExpense{Base: models.Base{ID: recurringID}, UserID: userID}, nil
}

func (m *mockRecurringService) DeleteRecurring(userID, recurringID uint) error { return nil }

func (m *mockRecurringService) ToggleRecurring(userID, recurringID uint) (*models.RecurringExpense, error) {
	if m.toggleFn != nil {
		return m.toggleFn(userID, recurringID)
	}
	return &models.RecurringExpense{Base: models.Base{ID: recurringID}, UserID: userID}, nil
}

func (m *mockRecurringService) GenerateDue(asOf time.Time) (int, error) {
	if m.generateDueFn != nil {
		return m.generateDueFn(0, asOf)
	}
	return 0, nil
}

func (m *mockRecurringService) GenerateDueForUser(userID uint, asOf time.Time) (int, error) {
	if m.generateDueFn != nil {
		return m.generateDueFn(userID, asOf)
	}
	return 0, nil
}

var _ services.RecurringServicer = (*mockRecurringService)(nil)

func setupRecurringRouter(handler *RecurringHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/recurring", handler.CreateRecurring)
	auth.GET("/recurring", handler.GetRecurring)
	auth.GET("/recurring/:id", handler.GetRecurringByID)
	auth.PUT("/recurring/:id", handler.UpdateRecurring)
	auth.POST("/recurring/:id/toggle", handler.ToggleRecurring)
	auth.DELETE("/recurring/:id", handler.DeleteRecurring)
	auth.POST("/recurring/generate", handler.GenerateDue)
	return r
}

func TestRecurringHandler_CreateRecurring(t *testing.T) {
	t.Run("returns 201 and audits", func(t *testing.T) {
		svc := &mockRecurringService{
			createFn: func(userID, categoryID uint, amount int64, description, frequency string, startDate time.Time, _ *time.Time) (*models.RecurringExpense, error) {
				return &models.RecurringExpense{
					Base:           models.Base{ID: 42},
					UserID:         userID,
					CategoryID:     categoryID,
					Amount:         amount,
					Description:    description,
					Frequency:      recurrence.Frequency(frequency),
					StartDate:      startDate,
					NextOccurrence: startDate,
					IsActive:       true,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupRecurringRouter(NewRecurringHandler(svc, audit))

		rec := doRequest(r, "POST", "/recurring",
			`{"category_id":3,"amount":150000,"description":"Gym membership","frequency":"monthly","start_date":"2026-03-01T00:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["recurring_expense"].(map[string]interface{})
		if expense["frequency"] != "monthly" {
			t.Errorf("expected monthly frequency, got %v", expense["frequency"])
		}
		if len(audit.actions) != 1 || audit.actions[0] != "CREATE_RECURRING" {
			t.Errorf("expected a CREATE_RECURRING audit entry, got %v", audit.actions)
		}
	})

	t.Run("returns 400 on unknown frequency", func(t *testing.T) {
		r := setupRecurringRouter(NewRecurringHandler(&mockRecurringService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recurring",
			`{"category_id":3,"amount":150000,"description":"Gym","frequency":"fortnightly","start_date":"2026-03-01T00:00:00Z"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when the category does not exist", func(t *testing.T) {
		svc := &mockRecurringService{
			createFn: func(_, _ uint, _ int64, _, _ string, _ time.Time, _ *time.Time) (*models.RecurringExpense, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupRecurringRouter(NewRecurringHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recurring",
			`{"category_id":999,"amount":150000,"description":"Gym","frequency":"monthly","start_date":"2026-03-01T00:00:00Z"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestRecurringHandler_ToggleRecurring(t *testing.T) {
	t.Run("returns the toggled rule", func(t *testing.T) {
		svc := &mockRecurringService{
			toggleFn: func(userID, recurringID uint) (*models.RecurringExpense, error) {
				return &models.RecurringExpense{Base: models.Base{ID: recurringID}, UserID: userID, IsActive: false}, nil
			},
		}
		r := setupRecurringRouter(NewRecurringHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recurring/5/toggle", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["recurring_expense"].(map[string]interface{})
		if expense["is_active"] != false {
			t.Errorf("expected is_active=false, got %v", expense["is_active"])
		}
	})

	t.Run("returns 404 for another user's rule", func(t *testing.T) {
		svc := &mockRecurringService{
			toggleFn: func(_, _ uint) (*models.RecurringExpense, error) {
				return nil, apperrors.ErrRecurringNotFound
			},
		}
		r := setupRecurringRouter(NewRecurringHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recurring/5/toggle", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RECURRING_NOT_FOUND")
	})

	t.Run("returns 400 on a non-numeric id", func(t *testing.T) {
		r := setupRecurringRouter(NewRecurringHandler(&mockRecurringService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recurring/abc/toggle", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecurringHandler_GenerateDue(t *testing.T) {
	svc := &mockRecurringService{
		generateDueFn: func(userID uint, asOf time.Time) (int, error) {
			if userID != 1 {
				t.Errorf("expected generation scoped to user 1, got %d", userID)
			}
			if asOf.IsZero() {
				t.Error("expected a non-zero asOf time")
			}
			return 3, nil
		},
	}
	r := setupRecurringRouter(NewRecurringHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "POST", "/recurring/generate", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["generated"] != 3.0 {
		t.Errorf("expected 3 generated transactions, got %v", result["generated"])
	}
}
