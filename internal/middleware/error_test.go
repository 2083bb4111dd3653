package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/bytebites/backend/internal/errors"
	"github.com/bytebites/backend/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithError(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(err)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return rr, body
}

func TestErrorHandler_NotFoundWithDetails(t *testing.T) {
	err := ierr.NewError("recipe not found").
		WithHint("Recipe was not found").
		WithReportableDetails(map[string]any{"id": "abc"}).
		Mark(ierr.ErrNotFound)

	rr, body := serveWithError(t, err)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Recipe was not found", body.Error.Display)
	assert.Equal(t, "abc", body.Error.Details["id"])
}

func TestErrorHandler_HidesInternalMessages(t *testing.T) {
	rr, body := serveWithError(t, fmt.Errorf("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "An unexpected error occurred", body.Error.Display)
	assert.Empty(t, body.Error.Details)
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
}
