package server

import (
	"log/slog"

	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the employee API route table.
func NewRouter(log *slog.Logger, appMetrics *metrics.Metrics, handler *EmployeeHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	if appMetrics != nil {
		router.Use(prometheusMiddleware(appMetrics))
	}

	employeesGroup := router.Group("/employees")
	{
		employeesGroup.GET("", handler.FindAll)
		employeesGroup.GET("/:id", handler.FindByID)
		employeesGroup.POST("", handler.Create)
		employeesGroup.PUT("", handler.Update)
		employeesGroup.DELETE("", handler.Delete)
	}

	return router
}
