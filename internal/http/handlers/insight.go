package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/mindpulse-backend/internal/http/response"
	"github.com/yungbote/mindpulse-backend/internal/modules/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/services"
)

type InsightHandler struct {
	log            *logger.Logger
	insightService services.InsightService
}

func NewInsightHandler(log *logger.Logger, insightService services.InsightService) *InsightHandler {
	return &InsightHandler{log: log.With("handler", "InsightHandler"), insightService: insightService}
}

func userIDParam(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		response.Text(c, http.StatusBadRequest, "User ID is required")
		return "", false
	}
	return userID, true
}

// GET /api/ai/insights/:userId
func (ih *InsightHandler) Insights(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	data, err := ih.insightService.Insights(c.Request.Context(), userID)
	if err != nil {
		ih.log.Error("Error in insights endpoint", "error", err)
		response.Text(c, http.StatusInternalServerError, "Failed to process mental health data")
		return
	}
	response.RespondOK(c, data)
}

// GET /api/ai/metrics/:userId
func (ih *InsightHandler) Metrics(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	m, err := ih.insightService.Metrics(c.Request.Context(), userID)
	if errors.Is(err, wellbeing.ErrNoRecords) {
		response.Text(c, http.StatusNotFound, "No data found for this user")
		return
	}
	if err != nil {
		ih.log.Error("Error in metrics endpoint", "error", err)
		response.Text(c, http.StatusInternalServerError, "Failed to process metrics data")
		return
	}
	response.RespondOK(c, m)
}

// GET /api/ai/recommendations/:userId
func (ih *InsightHandler) Recommendations(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	view, err := ih.insightService.Recommendations(c.Request.Context(), userID)
	if err != nil {
		ih.log.Error("Error in recommendations endpoint", "error", err)
		response.Text(c, http.StatusInternalServerError, "Failed to process recommendations")
		return
	}
	response.RespondOK(c, view)
}

// GET /api/advanced-metrics/:userId
func (ih *InsightHandler) AdvancedMetrics(c *gin.Context) {
	userID, ok := intParam(c, "userId")
	if !ok {
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	response.RespondOK(c, ih.insightService.AdvancedMetrics(c.Request.Context(), userID))
}
