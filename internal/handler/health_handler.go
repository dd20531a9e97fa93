package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zykorwx/dapp/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and, with ?check=db, database reachability
type HealthHandler struct {
	serviceName string
	db          *gorm.DB
}

func NewHealthHandler(serviceName string, db *gorm.DB) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, db: db}
}

// HealthCheck handles the health check endpoint
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := map[string]interface{}{
		"status":  "healthy",
		"service": h.serviceName,
	}

	if c.QueryParam("check") == "db" {
		log := logger.FromEcho(c)
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			log.Error("Database ping error", zap.Error(err))
			response["status"] = "unhealthy"
			response["db_status"] = "error"
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		response["db_status"] = "ok"
	}

	return c.JSON(http.StatusOK, response)
}
