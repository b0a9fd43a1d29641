package handlers

import (
	"net/http"

	"dermacare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestUserID pulls the authenticated user ID set by the auth middleware.
func requestUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Insufficient authorization")
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		utils.GetLogger().Error("Invalid user ID type in context", zap.Any("userID", id))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Invalid user ID type")
		return "", false
	}
	return idStr, true
}
