package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type createWidgetRequest struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count" binding:"min=1"`
}

func newValidationTestRouter() *gin.Engine {
	SetupValidator()
	r := gin.New()
	r.POST("/widgets", BindJSON[createWidgetRequest](), func(c *gin.Context) {
		body := BoundBody[createWidgetRequest](c)
		c.JSON(http.StatusOK, gin.H{"name": body.Name, "count": body.Count})
	})
	return r
}

func TestBindJSON(t *testing.T) {
	router := newValidationTestRouter()

	t.Run("valid body reaches handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/widgets", strings.NewReader(`{"name":"gear","count":2}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "gear")
	})

	t.Run("validation failure reports field details", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/widgets", strings.NewReader(`{"count":0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
		assert.Contains(t, w.Body.String(), "name")
	})

	t.Run("malformed json is rejected as invalid json", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/widgets", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_JSON")
	})
}
