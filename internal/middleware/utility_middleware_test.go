package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"neuraflow/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware([]string{"https://neuraflow.example"}))
	router.POST("/api/v1/webhooks/review", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/api/v1/webhooks/review", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://neuraflow.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-webhook-secret")
}

func TestCORSMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(nil))
	router.GET("/api/v1/reviews", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/reviews", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.NotEmpty(t, w.Header().Get(utils.HeaderRequestID))

	// An incoming request ID is echoed back unchanged.
	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(utils.HeaderRequestID, "req-42")
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(utils.HeaderRequestID))
}

func TestAdminSecretRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adminRouter := func(secret string) *gin.Engine {
		router := gin.New()
		group := router.Group("/admin")
		group.Use(AdminSecretRequired(secret))
		group.PUT("/reviews/1/approve", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("no secret configured disables route", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/admin/reviews/1/approve", nil)
		req.Header.Set(utils.HeaderAdminSecret, "anything")
		adminRouter("").ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		adminRouter("topsecret").ServeHTTP(w, httptest.NewRequest("PUT", "/admin/reviews/1/approve", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/admin/reviews/1/approve", nil)
		req.Header.Set(utils.HeaderAdminSecret, "guess")
		adminRouter("topsecret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("correct secret", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/admin/reviews/1/approve", nil)
		req.Header.Set(utils.HeaderAdminSecret, "topsecret")
		adminRouter("topsecret").ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
