// Package admin exposes the operational HTTP surface of the email service:
// health, Prometheus metrics, and a read-only view of the delivery log.
package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/orderpost/orderpost/internal/deliverylog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Config holds admin server configuration.
type Config struct {
	AdminSecret string   // HS256 signing secret for admin tokens
	CORSOrigins []string // allowed origins for browser dashboards
}

// Handler serves the admin API.
type Handler struct {
	log    deliverylog.Log
	logger *zap.Logger
}

// NewRouter builds the admin Gin engine. /healthz and /metrics are open;
// everything under /api/v1 requires an admin token.
func NewRouter(cfg Config, dlog deliverylog.Log, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestMetrics())

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "emailservice"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &Handler{log: dlog, logger: logger}
	api := r.Group("/api/v1", RequireAdmin(cfg.AdminSecret))
	api.GET("/deliveries", h.listDeliveries)
	api.GET("/deliveries/stats", h.deliveryStats)

	return r
}

// listDeliveries returns the newest delivery-log entries.
// GET /api/v1/deliveries?limit=N (default 50, capped at 500).
func (h *Handler) listDeliveries(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	if limit > 500 {
		limit = 500
	}

	entries, err := h.log.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("list deliveries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delivery log unavailable"})
		return
	}
	if entries == nil {
		entries = []*deliverylog.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"deliveries": entries})
}

// deliveryStats returns send counts grouped by status.
// GET /api/v1/deliveries/stats.
func (h *Handler) deliveryStats(c *gin.Context) {
	counts, err := h.log.Count(c.Request.Context())
	if err != nil {
		h.logger.Error("delivery stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delivery log unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}
