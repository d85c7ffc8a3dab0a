package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/procrm-api/pkg/helpers"
	"github.com/oksasatya/procrm-api/pkg/response"
)

const (
	CtxUserEmailKey = "userEmail"
	CtxUserRoleKey  = "userRole"
)

// Auth validates the bearer token from the Authorization header.
// When Redis is configured and reachable it additionally requires an
// active session record, so revoked sessions are rejected before token
// expiry; a Redis error never locks out a valid token.
// Sets userEmail and userRole in the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortErr(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "invalid access token")
			return
		}

		if rdb != nil {
			key := "user:session:" + claims.Email
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err == nil && len(data) == 0 {
				response.AbortErr(c, http.StatusUnauthorized, "session not found")
				return
			}
			// Redis errors fall through to JWT-only auth, same fail-open
			// policy as the rate limiter.
		}

		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
