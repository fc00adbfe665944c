package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCorrelationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CorrelationIDMiddleware())
	router.GET("/compute", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"handler_id": GetCorrelationID(c),
			"context_id": CorrelationIDFromContext(c.Request.Context()),
		})
	})
	return router
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := newCorrelationRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/compute", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(CorrelationIDHeader)
	assert.Len(t, id, 36) // uuid format
}

func TestCorrelationIDMiddleware_PreservesCallerID(t *testing.T) {
	router := newCorrelationRouter()

	req := httptest.NewRequest(http.MethodGet, "/compute", nil)
	req.Header.Set(CorrelationIDHeader, "return-7f2a-request-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "return-7f2a-request-1", w.Header().Get(CorrelationIDHeader))
	assert.Contains(t, w.Body.String(), `"handler_id":"return-7f2a-request-1"`)
	assert.Contains(t, w.Body.String(), `"context_id":"return-7f2a-request-1"`)
}
