package delivery

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recoverylink-backend/internal/schedule/domain"
	"recoverylink-backend/internal/schedule/usecase"
	"recoverylink-backend/pkg/apperror"
)

// ScheduleHandler handles exercise schedule HTTP requests
type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUsecase: scheduleUsecase}
}

// CreateScheduleRequest is the expansion trigger payload
type CreateScheduleRequest struct {
	SessionID    string                    `json:"session_id" binding:"required"`
	Exercises    []domain.ExerciseSchedule `json:"exercises" binding:"required"`
	AnalysisDate string                    `json:"analysis_date" binding:"required"`
	Timezone     string                    `json:"timezone" binding:"required"`
	Weeks        int                       `json:"weeks"`
}

// CreateSchedule expands a prescription into recurring calendar events
// POST /api/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	patientID := c.GetString("patientID")

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysisDate, err := parseAnalysisDate(req.AnalysisDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis_date must be RFC3339 or YYYY-MM-DD"})
		return
	}

	weeks := req.Weeks
	if weeks == 0 {
		weeks = 4
	}

	instances, err := h.scheduleUsecase.CreateSchedule(c.Request.Context(), patientID, req.SessionID, req.Exercises, analysisDate, req.Timezone, weeks)
	if err != nil {
		if submission, ok := err.(*apperror.CalendarSubmissionError); ok {
			c.JSON(apperror.HTTPStatus(err), gin.H{
				"error":     submission.Error(),
				"succeeded": submission.Succeeded,
				"attempted": submission.Attempted,
			})
			return
		}
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"events": instances,
		"total":  len(instances),
	})
}

func parseAnalysisDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
