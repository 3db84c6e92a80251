package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/mindpulse-backend/internal/http/response"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/services"
)

type MetricHandler struct {
	log           *logger.Logger
	metricService services.MetricService
}

func NewMetricHandler(log *logger.Logger, metricService services.MetricService) *MetricHandler {
	return &MetricHandler{log: log.With("handler", "MetricHandler"), metricService: metricService}
}

// GET /api/metrics/:userId
func (mh *MetricHandler) List(c *gin.Context) {
	userID, ok := intParam(c, "userId")
	if !ok {
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	rows, err := mh.metricService.List(c.Request.Context(), userID)
	if err != nil {
		mh.internal(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/metrics/:userId/latest
func (mh *MetricHandler) Latest(c *gin.Context) {
	userID, ok := intParam(c, "userId")
	if !ok {
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	row, err := mh.metricService.Latest(c.Request.Context(), userID)
	if isNotFound(err) {
		response.Message(c, http.StatusNotFound, "No metrics found for this user")
		return
	}
	if err != nil {
		mh.internal(c, err)
		return
	}
	response.RespondOK(c, row)
}

// GET /api/metrics/:userId/weekly
func (mh *MetricHandler) Weekly(c *gin.Context) {
	userID, ok := intParam(c, "userId")
	if !ok {
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	rows, err := mh.metricService.Weekly(c.Request.Context(), userID)
	if err != nil {
		mh.internal(c, err)
		return
	}
	response.RespondOK(c, rows)
}

func (mh *MetricHandler) internal(c *gin.Context, err error) {
	mh.log.Error("Metric request failed", "path", c.FullPath(), "error", err)
	response.Message(c, http.StatusInternalServerError, "Internal server error")
}
