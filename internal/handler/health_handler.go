package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/gerai/catalog-api/internal/cache"
	"github.com/gerai/catalog-api/internal/utils"
)

// HealthHandler reports liveness of the service and its dependencies.
type HealthHandler struct {
	db    *sqlx.DB
	redis *cache.RedisClient
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *sqlx.DB, redis *cache.RedisClient) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// GetHealth handles GET /api/health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"database": "ok",
		"redis":    "ok",
	}
	code := http.StatusOK

	if err := h.db.PingContext(pingCtx); err != nil {
		status["database"] = "unreachable"
		code = http.StatusServiceUnavailable
	}
	if err := h.redis.Ping(pingCtx); err != nil {
		status["redis"] = "unreachable"
		code = http.StatusServiceUnavailable
	}

	if code == http.StatusOK {
		utils.Success(c, code, "Service healthy", status)
		return
	}
	c.JSON(code, utils.Response{Success: false, Message: "Service degraded", Data: status})
}
