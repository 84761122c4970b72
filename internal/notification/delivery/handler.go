package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recoverylink-backend/internal/notification/usecase"
	"recoverylink-backend/pkg/apperror"
)

const defaultHistoryLimit = 50

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// BroadcastRequest is the trigger payload for a notification fan-out
type BroadcastRequest struct {
	Type    string `json:"type" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Broadcast fans a notification out to the patient's care team
// POST /api/notifications/broadcast
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	patientID := c.GetString("patientID")

	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.notificationUsecase.Broadcast(c.Request.Context(), patientID, req.Type, req.Subject, req.Message)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	// The broadcast itself succeeds even when every send failed; callers
	// inspect the per-attempt records.
	c.JSON(http.StatusOK, gin.H{
		"notifications": records,
		"total":         len(records),
	})
}

// GetHistory lists the patient's delivery ledger, newest first
// GET /api/notifications?limit=50
func (h *NotificationHandler) GetHistory(c *gin.Context) {
	patientID := c.GetString("patientID")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := h.notificationUsecase.History(patientID, limit)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": records,
		"total":         len(records),
	})
}
