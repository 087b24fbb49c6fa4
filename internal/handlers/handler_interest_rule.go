package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/dto"
	"github.com/awesomegic/bank_account_system/internal/middleware"
	"github.com/gin-gonic/gin"
)

// interestRuleHandler handles HTTP requests related to interest rules and
// batch accrual runs.
type interestRuleHandler struct {
	interestService portssvc.InterestSvc
}

// newInterestRuleHandler creates a new interestRuleHandler.
func newInterestRuleHandler(is portssvc.InterestSvc) *interestRuleHandler {
	return &interestRuleHandler{
		interestService: is,
	}
}

// registerInterestRuleRoutes registers routes related to interest rules.
func registerInterestRuleRoutes(rg *gin.RouterGroup, interestService portssvc.InterestSvc) {
	h := newInterestRuleHandler(interestService)

	rules := rg.Group("/interest-rules")
	{
		rules.POST("", h.defineRule)
		rules.GET("", h.listRules)
		rules.GET("/:ruleID", h.getRule)
	}
	rg.POST("/interest-runs", h.runAccrual)
}

// defineRule validates and stores a new interest rule.
func (h *interestRuleHandler) defineRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DefineInterestRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DefineRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.interestService.DefineRule(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to define interest rule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to define interest rule"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInterestRuleResponse(rule))
}

// getRule retrieves an interest rule by id.
func (h *interestRuleHandler) getRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")

	rule, err := h.interestService.GetRuleByID(c.Request.Context(), ruleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interest rule not found"})
		} else {
			logger.Error("Failed to get interest rule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve interest rule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInterestRuleResponse(rule))
}

// listRules retrieves every interest rule in definition order.
func (h *interestRuleHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rules, err := h.interestService.ListRules(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list interest rules", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list interest rules"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInterestRuleResponse(rules))
}

// runAccrual triggers a batch accrual run over every registered account.
func (h *interestRuleHandler) runAccrual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	processed, err := h.interestService.RunAccrual(c.Request.Context())
	if err != nil {
		logger.Error("Accrual run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Accrual run failed"})
		return
	}

	c.JSON(http.StatusOK, dto.InterestRunResponse{AccountsProcessed: processed})
}
