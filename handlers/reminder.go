package handlers

import (
	"errors"
	"net/http"

	reminderRepo "dermacare/database/repository/reminder"
	"dermacare/models"
	"dermacare/services/reminder"
	"dermacare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the reminder CRUD endpoints.
type ReminderHandler struct {
	Service reminder.ReminderService
}

// NewReminderHandler returns a handler wired to the given service.
func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

// CreateReminderHandler handles POST /api/reminders.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateCreateReminder(req); msg != "" {
		utils.ErrorResponse(c, http.StatusBadRequest, msg)
		return
	}

	created, err := h.Service.CreateReminder(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to create reminder", zap.String("userId", userID), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Reminder created successfully", created)
}

// GetRemindersHandler handles GET /api/reminders.
func (h *ReminderHandler) GetRemindersHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	reminders, err := h.Service.GetReminders(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list reminders", zap.String("userId", userID), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	utils.SuccessResponse(c, http.StatusOK, "Reminders retrieved successfully", gin.H{"reminders": reminders})
}

// GetReminderByIDHandler handles GET /api/reminders/:id.
func (h *ReminderHandler) GetReminderByIDHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	r, err := h.Service.GetReminderByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, reminderRepo.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Reminder not found or you do not have permission to access it")
			return
		}
		utils.GetLogger().Error("Failed to get reminder", zap.String("id", id), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve reminder")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Reminder retrieved successfully", r)
}

// UpdateReminderHandler handles PUT /api/reminders/:id.
func (h *ReminderHandler) UpdateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req models.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateUpdateReminder(req); msg != "" {
		utils.ErrorResponse(c, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.Service.UpdateReminder(c.Request.Context(), id, userID, req)
	if err != nil {
		if errors.Is(err, reminderRepo.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Reminder not found or you do not have permission to update it")
			return
		}
		logger.Error("Failed to update reminder", zap.String("id", id), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Reminder updated successfully", updated)
}

// DeleteReminderHandler handles DELETE /api/reminders/:id.
func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.Service.DeleteReminder(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, reminderRepo.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Reminder not found or you do not have permission to delete it")
			return
		}
		utils.GetLogger().Error("Failed to delete reminder", zap.String("id", id), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Reminder deleted successfully", nil)
}
