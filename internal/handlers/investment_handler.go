package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/advisor"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// InvestmentHandler handles portfolio and recommendation requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
	auditService      services.AuditServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer, auditService services.AuditServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, auditService: auditService}
}

// AddPositionRequest represents the request payload for adding a position.
type AddPositionRequest struct {
	InvestmentType string    `json:"investment_type" binding:"required,investment_type"`
	Name           string    `json:"name" binding:"required,min=1,max=200"`
	Units          float64   `json:"units" binding:"required,gt=0"`
	BuyPrice       int64     `json:"buy_price" binding:"required,gt=0"`
	PurchaseDate   time.Time `json:"purchase_date" binding:"required"`
}

// UpdatePriceRequest represents the request payload for updating a position's price.
type UpdatePriceRequest struct {
	CurrentPrice int64 `json:"current_price" binding:"required,gt=0"`
}

// RiskToleranceRequest represents the request payload for setting risk tolerance.
type RiskToleranceRequest struct {
	RiskTolerance string `json:"risk_tolerance" binding:"required,risk_tolerance"`
}

// ProjectionRequest represents the request payload for a projection. Exactly
// one of monthly_amount (SIP) or lump_sum_amount must be set.
type ProjectionRequest struct {
	MonthlyAmount int64   `json:"monthly_amount" binding:"omitempty,gt=0"`
	LumpSumAmount int64   `json:"lump_sum_amount" binding:"omitempty,gt=0"`
	AnnualRatePct float64 `json:"annual_rate_pct" binding:"required,gt=0"`
	Years         int     `json:"years" binding:"required,gt=0,max=50"`
}

// AddPosition records a new holding.
// @Summary     Add a position
// @Description Add a portfolio position; records the initial buy transaction (prices in cents per unit)
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddPositionRequest true "Position details"
// @Success     201 {object} models.PortfolioEntry "Position created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) AddPosition(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.investmentService.AddPosition(
		userID, req.InvestmentType, req.Name, req.Units, req.BuyPrice, req.PurchaseDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_POSITION", "portfolio_entry", entry.ID, c.ClientIP(),
		map[string]interface{}{"type": req.InvestmentType, "units": req.Units, "buy_price": req.BuyPrice})

	c.JSON(http.StatusCreated, gin.H{"position": entry})
}

// GetPortfolio returns the user's portfolio with valuation.
// @Summary     Get portfolio
// @Description Get all positions with per-position and aggregate ROI
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioView "Portfolio"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/portfolio [get]
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.investmentService.GetPortfolio(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdatePrice sets a position's last known price.
// @Summary     Update position price
// @Description Update the last known price per unit for a position
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Position ID"
// @Param       request body UpdatePriceRequest true "New price per unit (cents)"
// @Success     200 {object} models.PortfolioEntry "Updated position"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Position not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id}/price [put]
func (h *InvestmentHandler) UpdatePrice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	positionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.investmentService.UpdatePositionPrice(userID, positionID, req.CurrentPrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"position": entry})
}

// DeletePosition removes a position.
// @Summary     Delete a position
// @Description Soft-delete a position and its trade history
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Position ID"
// @Success     204 "Position deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Position not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeletePosition(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	positionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.investmentService.DeletePosition(userID, positionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetRecommendations returns risk-tiered investment recommendations.
// @Summary     Get investment recommendations
// @Description Get recommendations for the user's risk tolerance, capacity, and optional goal
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       goal query string false "Investment goal (wealth_creation/retirement/short_term/balanced)"
// @Success     200 {object} services.RecommendationResult "Recommendations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/recommendations [get]
func (h *InvestmentHandler) GetRecommendations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal := advisor.Goal(c.Query("goal"))
	switch goal {
	case advisor.GoalNone, advisor.GoalWealthCreation, advisor.GoalRetirement, advisor.GoalShortTerm, advisor.GoalBalanced:
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid goal"))
		return
	}

	result, err := h.investmentService.GetRecommendations(userID, goal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateRiskTolerance sets the user's risk tolerance tier.
// @Summary     Update risk tolerance
// @Description Set the authenticated user's risk tolerance (conservative/moderate/aggressive)
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RiskToleranceRequest true "Risk tolerance"
// @Success     200 {object} UserResponse "Updated user"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/risk-tolerance [put]
func (h *InvestmentHandler) UpdateRiskTolerance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RiskToleranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.investmentService.UpdateRiskTolerance(userID, req.RiskTolerance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_RISK_TOLERANCE", "user", userID, c.ClientIP(),
		map[string]interface{}{"risk_tolerance": req.RiskTolerance})

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// GetProjection projects an investment plan: fixed monthly contributions
// with monthly compounding, or a lump sum with annual compounding.
// @Summary     Project an investment plan
// @Description Project the future value of fixed monthly contributions (monthly_amount) or a one-time investment (lump_sum_amount)
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ProjectionRequest true "Projection parameters"
// @Success     200 {object} advisor.SIPResult "Projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investments/projection [post]
func (h *InvestmentHandler) GetProjection(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	switch {
	case req.MonthlyAmount > 0 && req.LumpSumAmount > 0:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"provide either monthly_amount or lump_sum_amount, not both"))
	case req.LumpSumAmount > 0:
		c.JSON(http.StatusOK, h.investmentService.ProjectLumpSum(req.LumpSumAmount, req.AnnualRatePct, req.Years))
	case req.MonthlyAmount > 0:
		c.JSON(http.StatusOK, h.investmentService.ProjectSIP(req.MonthlyAmount, req.AnnualRatePct, req.Years))
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"either monthly_amount or lump_sum_amount is required"))
	}
}
