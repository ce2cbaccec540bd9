package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleetflow/internal/config"
)

// Analytics responses are expensive fleet-wide scans, so they are cached in
// Redis for a short window when a client is configured.
const analyticsCacheTTL = 30 * time.Second

func GetDashboardStats(c *gin.Context) {
	const cacheKey = "analytics:dashboard"
	if payload, ok := cachedJSON(c, cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	stats, err := analyticsSvc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondAndCache(c, cacheKey, stats)
}

func GetFinancialReport(c *gin.Context) {
	const cacheKey = "analytics:financials"
	if payload, ok := cachedJSON(c, cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	report, err := analyticsSvc.Financials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondAndCache(c, cacheKey, report)
}

func cachedJSON(c *gin.Context, key string) ([]byte, bool) {
	if config.Cache == nil {
		return nil, false
	}
	payload, err := config.Cache.Get(c.Request.Context(), key).Bytes()
	if err != nil {
		// Cache miss and cache failure both fall through to a fresh compute.
		return nil, false
	}
	return payload, true
}

func respondAndCache(c *gin.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		respondError(c, err)
		return
	}
	if config.Cache != nil {
		if err := config.Cache.Set(c.Request.Context(), key, payload, analyticsCacheTTL).Err(); err != nil {
			logrus.WithError(err).Warn("failed to cache analytics payload")
		}
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
