package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"dermacare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AuthMiddleware validates the bearer token and attaches the caller's user ID
// to the request context. Token issuance belongs to the external auth
// service; this middleware only verifies signature, expiry, and that the
// token has not been revoked.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, utils.APIResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}

		// Revoked-token check. A missing cache is treated as a pass so auth
		// does not hard-depend on Redis availability.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			key := utils.RevokedTokenPrefix + utils.HashToken(tokenString)
			_, err := authCache.Get(context.Background(), key).Result()
			if err == nil {
				abortUnauthorized(c)
				return
			}
			if err != redis.Nil {
				log.Printf("WARNING: Error checking token revocation: %v. Allowing request.", err)
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
		Success: false,
		Message: "Insufficient authorization",
	})
}
