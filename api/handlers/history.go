package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tauheed-akhtar/diabetes-predictor/pkg/database/queries"
)

// HistoryHandler serves the prediction audit trail. All routes are JWT
// protected and return 503 when the audit trail is disabled.
type HistoryHandler struct {
	audit *queries.PredictionRepository
}

func NewHistoryHandler(audit *queries.PredictionRepository) *HistoryHandler {
	return &HistoryHandler{audit: audit}
}

// List godoc
// @Summary Recent predictions
// @Description Lists recent audit-trail entries, newest first
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string "Audit trail disabled"
// @Router /predictions [get]
func (h *HistoryHandler) List(c *gin.Context) {
	if h.audit == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit trail is disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.audit.ListRecent(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch predictions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predictions": records,
		"count":       len(records),
	})
}

// Stats godoc
// @Summary Prediction statistics
// @Description Summarizes the audit trail
// @Tags History
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.Stats
// @Failure 503 {object} map[string]string "Audit trail disabled"
// @Router /predictions/stats [get]
func (h *HistoryHandler) Stats(c *gin.Context) {
	if h.audit == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit trail is disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.audit.GetStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
