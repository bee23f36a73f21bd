package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newScopedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RepScope())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, RepID(c))
	})
	return r
}

func TestRepScopeRequiresHeader(t *testing.T) {
	router := newScopedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-Rep-ID")
}

func TestRepScopePassesRepID(t *testing.T) {
	router := newScopedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Rep-ID", "rep-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rep-42", w.Body.String())
}
