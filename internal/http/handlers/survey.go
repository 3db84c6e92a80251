package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/http/response"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/services"
)

type SurveyHandler struct {
	log           *logger.Logger
	surveyService services.SurveyService
}

func NewSurveyHandler(log *logger.Logger, surveyService services.SurveyService) *SurveyHandler {
	response.UseJSONFieldNames()
	return &SurveyHandler{log: log.With("handler", "SurveyHandler"), surveyService: surveyService}
}

type createSurveyRequest struct {
	UserID      *string  `json:"userId" binding:"required"`
	Mood        *string  `json:"mood" binding:"required"`
	StressLevel *float64 `json:"stressLevel" binding:"required,min=0,max=10"`
	Notes       *string  `json:"notes"`
}

type patchSurveyRequest struct {
	UserID      *string  `json:"userId"`
	Mood        *string  `json:"mood"`
	StressLevel *float64 `json:"stressLevel" binding:"omitempty,min=0,max=10"`
	Notes       *string  `json:"notes"`
}

func invalidSurvey(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Invalid survey data",
		"errors":  response.FieldErrors(err),
	})
}

// GET /api/survey/:userId/latest
func (sh *SurveyHandler) Latest(c *gin.Context) {
	userID, ok := intParam(c, "userId")
	if !ok {
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	row, err := sh.surveyService.Latest(c.Request.Context(), userID)
	if isNotFound(err) {
		response.Message(c, http.StatusNotFound, "No survey found for this user")
		return
	}
	if err != nil {
		sh.internal(c, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /api/survey
// body: { "userId": "1", "mood": "...", "stressLevel": 0..10, "notes"?: "..." }
func (sh *SurveyHandler) Create(c *gin.Context) {
	var req createSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidSurvey(c, err)
		return
	}
	row, err := sh.surveyService.Create(c.Request.Context(), services.SurveyInput{
		UserID:      *req.UserID,
		Mood:        *req.Mood,
		StressLevel: *req.StressLevel,
		Notes:       req.Notes,
	})
	if err != nil {
		sh.internal(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PATCH /api/survey/:id
// body: any subset of the create fields
func (sh *SurveyHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.Message(c, http.StatusBadRequest, "Invalid survey ID")
		return
	}
	// An empty body is an empty patch.
	var req patchSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		invalidSurvey(c, err)
		return
	}
	row, err := sh.surveyService.Update(c.Request.Context(), id, types.SurveyPatch{
		UserID:      req.UserID,
		Mood:        req.Mood,
		StressLevel: req.StressLevel,
		Notes:       req.Notes,
	})
	if isNotFound(err) {
		response.Message(c, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		sh.internal(c, err)
		return
	}
	response.RespondOK(c, row)
}

func (sh *SurveyHandler) internal(c *gin.Context, err error) {
	sh.log.Error("Survey request failed", "path", c.FullPath(), "error", err)
	response.Message(c, http.StatusInternalServerError, "Internal server error")
}
