package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	ierr "github.com/bytebites/backend/internal/errors"
	"github.com/bytebites/backend/internal/logger"
	"github.com/bytebites/backend/internal/types"
)

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*types.TokenClaims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

func authRouter(v TokenValidator) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop()))
	router.GET("/me", AuthMiddleware(v), func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "name": actor.Name})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	v := new(mockValidator)
	v.On("ValidateToken", "good").Return(&types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Name:             "Alice",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	authRouter(v).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"user-1","name":"Alice"}`, rr.Body.String())
	v.AssertExpectations(t)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	v := new(mockValidator)
	v.On("ValidateToken", "bad").Return(nil, ierr.NewError("expired").Mark(ierr.ErrUnauthorized))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer "},
		{"invalid token", "Bearer bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			authRouter(v).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestActorFromContext_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := ActorFromContext(c)

	assert.False(t, ok)
}
