package handlers

import (
	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer, apiMiddleware ...gin.HandlerFunc) {
	// Health check stays outside the rate-limited API group.
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1", apiMiddleware...)

	registerAccountRoutes(v1, services.Account, services.Transaction, services.Statement)
	registerTransactionRoutes(v1, services.Transaction)
	registerInterestRuleRoutes(v1, services.Interest)
}
