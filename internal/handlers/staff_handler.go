package handlers

import (
	"net/http"
	"table_order/internal/services"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves the notification badge shared by cooks and waiters.
type StaffHandler struct {
	notificationService services.NotificationService
}

func NewStaffHandler(notificationService services.NotificationService) *StaffHandler {
	return &StaffHandler{notificationService: notificationService}
}

func (h *StaffHandler) GetNotifications(c *gin.Context) {
	unpaid, err := h.notificationService.GetUnpaid()
	if err != nil {
		respondError(c, err)
		return
	}
	unseen, err := h.notificationService.GetUnseen()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": unpaid,
		"unseen_count":  len(unseen),
	})
}

func (h *StaffHandler) MarkSeen(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.notificationService.MarkSeen(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *StaffHandler) MarkAllSeen(c *gin.Context) {
	if err := h.notificationService.MarkAllSeen(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
