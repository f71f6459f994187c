package middleware

import (
	"crypto/subtle"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"neuraflow/internal/utils"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware configures CORS headers. The review form and webhook are
// called from the browser, so preflight OPTIONS requests are answered here.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	origins := "*"
	if len(allowedOrigins) > 0 {
		origins = strings.Join(allowedOrigins, ", ")
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origins)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, x-webhook-secret, x-admin-secret")
		c.Header("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware adds a request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(utils.HeaderRequestID)
		if requestID == "" {
			requestID = fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Intn(10000))
		}
		c.Set("request_id", requestID)
		c.Header(utils.HeaderRequestID, requestID)
		c.Next()
	}
}

// AdminSecretRequired gates moderation routes behind a shared secret
// header. With no secret configured the routes are disabled outright.
func AdminSecretRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		provided := c.GetHeader(utils.HeaderAdminSecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
