package handlers

import (
	"errors"
	"net/http"

	symptomRepo "dermacare/database/repository/symptom"
	"dermacare/models"
	"dermacare/services/symptom"
	"dermacare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SymptomHandler exposes the symptom log CRUD endpoints.
type SymptomHandler struct {
	Service symptom.SymptomService
}

// NewSymptomHandler returns a handler wired to the given service.
func NewSymptomHandler(svc symptom.SymptomService) *SymptomHandler {
	return &SymptomHandler{Service: svc}
}

// CreateSymptomLogHandler handles POST /api/symptoms.
func (h *SymptomHandler) CreateSymptomLogHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.CreateSymptomLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateCreateSymptomLog(req); msg != "" {
		utils.ErrorResponse(c, http.StatusBadRequest, msg)
		return
	}

	created, err := h.Service.CreateLog(c.Request.Context(), userID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create symptom log", zap.String("userId", userID), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create symptom log")
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Symptom log created successfully", created)
}

// GetSymptomLogsHandler handles GET /api/symptoms.
func (h *SymptomHandler) GetSymptomLogsHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	logs, err := h.Service.GetLogs(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list symptom logs", zap.String("userId", userID), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve symptom logs")
		return
	}
	if logs == nil {
		logs = []models.SymptomLog{}
	}
	utils.SuccessResponse(c, http.StatusOK, "Symptom logs retrieved successfully", gin.H{"logs": logs})
}

// GetSymptomLogByIDHandler handles GET /api/symptoms/:id.
func (h *SymptomHandler) GetSymptomLogByIDHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	log, err := h.Service.GetLogByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, symptomRepo.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Symptom log not found")
			return
		}
		utils.GetLogger().Error("Failed to get symptom log", zap.String("id", id), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve symptom log")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Symptom log retrieved successfully", log)
}

// UpdateSymptomLogHandler handles PUT /api/symptoms/:id.
func (h *SymptomHandler) UpdateSymptomLogHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req models.UpdateSymptomLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ItchinessLevel != nil && (*req.ItchinessLevel < 1 || *req.ItchinessLevel > 10) {
		utils.ErrorResponse(c, http.StatusBadRequest, "Itchiness level must be between 1 and 10")
		return
	}

	updated, err := h.Service.UpdateLog(c.Request.Context(), id, userID, req)
	if err != nil {
		if errors.Is(err, symptomRepo.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Symptom log not found")
			return
		}
		utils.GetLogger().Error("Failed to update symptom log", zap.String("id", id), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update symptom log")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Symptom log updated successfully", updated)
}

// DeleteSymptomLogHandler handles DELETE /api/symptoms/:id.
func (h *SymptomHandler) DeleteSymptomLogHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.Service.DeleteLog(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, symptomRepo.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Symptom log not found")
			return
		}
		utils.GetLogger().Error("Failed to delete symptom log", zap.String("id", id), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete symptom log")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Symptom log deleted successfully", nil)
}
