package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/budget"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// BudgetHandler handles budget allocation requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// SaveBudgetRequest represents the request payload for saving an allocation.
type SaveBudgetRequest struct {
	Allocation budget.Allocation `json:"allocation" binding:"required"`
}

// ValidateBudgetRequest represents the request payload for a dry-run validation.
type ValidateBudgetRequest struct {
	Allocation budget.Allocation `json:"allocation" binding:"required"`
}

// GetBudget returns the user's allocation.
// @Summary     Get budget allocation
// @Description Get the authenticated user's budget allocation, or the default when none is saved
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} budget.Allocation "Budget allocation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	allocation, err := h.budgetService.GetAllocation(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocation": allocation})
}

// SaveBudget validates and persists the user's allocation.
// @Summary     Save budget allocation
// @Description Save the authenticated user's allocation; it must total 100% with investment >= 10% and savings >= 5%
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveBudgetRequest true "Allocation percentages by category"
// @Success     200 {object} budget.Allocation "Saved allocation"
// @Failure     400 {object} ErrorResponse "Invalid allocation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [put]
func (h *BudgetHandler) SaveBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	allocation, err := h.budgetService.SaveAllocation(userID, req.Allocation)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SAVE_BUDGET", "budget", userID, c.ClientIP(),
		map[string]interface{}{"allocation": allocation})

	c.JSON(http.StatusOK, gin.H{"allocation": allocation})
}

// ValidateBudget checks an allocation without persisting it.
// @Summary     Validate budget allocation
// @Description Dry-run validation of an allocation against the 100% total and policy minimums
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ValidateBudgetRequest true "Allocation percentages by category"
// @Success     200 {object} budget.ValidationResult "Validation result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budget/validate [post]
func (h *BudgetHandler) ValidateBudget(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req ValidateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result := h.budgetService.ValidateAllocation(req.Allocation)
	c.JSON(http.StatusOK, result)
}

// GetTemplates returns the budget template catalog.
// @Summary     List budget templates
// @Description Get the catalog of predefined budget allocation templates
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} budget.Template "Templates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budget/templates [get]
func (h *BudgetHandler) GetTemplates(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": h.budgetService.ListTemplates()})
}

// GetTemplate returns a single budget template.
// @Summary     Get a budget template
// @Description Get one predefined budget allocation template by ID
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Template ID"
// @Success     200 {object} budget.Template "Template"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Router      /budget/templates/{id} [get]
func (h *BudgetHandler) GetTemplate(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	template, ok := budget.TemplateByID(c.Param("id"))
	if !ok {
		respondWithError(c, apperrors.ErrTemplateNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// ApplyTemplate saves a template as the user's allocation.
// @Summary     Apply a budget template
// @Description Apply a predefined template as the authenticated user's allocation
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Template ID"
// @Success     200 {object} budget.Allocation "Applied allocation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/templates/{id}/apply [post]
func (h *BudgetHandler) ApplyTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID := c.Param("id")
	allocation, err := h.budgetService.ApplyTemplate(userID, templateID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "APPLY_TEMPLATE", "budget", userID, c.ClientIP(),
		map[string]interface{}{"template_id": templateID})

	c.JSON(http.StatusOK, gin.H{"allocation": allocation})
}
