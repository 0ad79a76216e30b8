package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"wanderly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ActorKey is the gin context key holding the authenticated caller's user ID.
const ActorKey = "userID"

// JWTAuthMiddleware validates the bearer token and threads the caller's user
// ID into the request context. When the auth cache holds a token hash for the
// user it must match; a cache miss falls back to accepting any validly signed
// token so an unavailable Redis does not lock everyone out.
func JWTAuthMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if authCache != nil {
			ctx := context.Background()
			key := utils.AuthCachePrefix + userID
			cachedHash, err := authCache.Get(ctx, key).Result()
			switch {
			case err == nil:
				if cachedHash != utils.HashToken(tokenString) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = authCache.Expire(ctx, key, time.Hour).Err()
			case err != redis.Nil:
				zap.L().Warn("auth cache lookup failed, accepting signed token", zap.Error(err))
			}
		}

		c.Set(ActorKey, userID)
		c.Next()
	}
}

// Actor returns the authenticated caller's user ID from the gin context.
func Actor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
