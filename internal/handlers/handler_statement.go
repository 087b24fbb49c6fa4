package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/awesomegic/bank_account_system/internal/apperrors"
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/awesomegic/bank_account_system/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler handles HTTP requests for account statements.
type statementHandler struct {
	statementService portssvc.StatementSvc
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvc) *statementHandler {
	return &statementHandler{
		statementService: ss,
	}
}

// getStatement renders the ledger plus interest line for one account and
// month, as text/plain.
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month: expected an integer between 1 and 12"})
		return
	}

	statement, err := h.statementService.GenerateStatement(c.Request.Context(), accountID, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate statement"})
		}
		return
	}

	c.String(http.StatusOK, statement)
}
