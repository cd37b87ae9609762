package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tutorly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	authCachePrefix = "auth:token:"
	authCacheTTL    = 15 * time.Minute
)

// roleTeacher is the role claim required for availability management.
const roleTeacher = "TEACHER"

// JWTAuthTeacherMiddleware validates the bearer token, requires the TEACHER
// role and sets "teacherID" on the context. Validated token hashes are cached
// in Redis with a sliding TTL so repeated requests skip signature checks.
func JWTAuthTeacherMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		// Check the authorization cache first.
		authCache := utils.GetAuthCacheClient()
		if teacherID, err := authCache.Get(ctx, cacheKey).Result(); err == nil && teacherID != "" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("teacherID", teacherID)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: validate the token signature and claims.
		subject, role, err := utils.ExtractSubjectAndRole(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if role != roleTeacher {
			logger.Warn("Non-teacher token on availability endpoint",
				zap.String("subject", subject), zap.String("role", role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Teacher role required"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, subject, authCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		c.Set("teacherID", subject)
		c.Next()
	}
}
