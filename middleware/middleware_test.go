package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kino/database/repository/memory"
	"kino/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func issue(t *testing.T, tokens utils.TokenStore, subject, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(subject, role, time.Minute)
	require.NoError(t, err)
	require.NoError(t, tokens.Save(context.Background(), subject, utils.HashToken(token), time.Minute))
	return token
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthCustomerMiddleware(t *testing.T) {
	tokens := memory.NewStore().TokenStore()
	r := gin.New()
	r.GET("/", JWTAuthCustomerMiddleware(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CustomerIDKey)+"/"+c.GetString(RoleKey))
	})

	token := issue(t, tokens, "c1", utils.RoleCustomer)
	w := do(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "c1/customer", w.Body.String())

	require.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	require.Equal(t, http.StatusUnauthorized, do(r, "garbage").Code)

	require.NoError(t, tokens.Revoke(context.Background(), "c1", utils.HashToken(token)))
	require.Equal(t, http.StatusUnauthorized, do(r, token).Code)
}

func TestAdminOnlyMiddleware(t *testing.T) {
	tokens := memory.NewStore().TokenStore()
	r := gin.New()
	r.GET("/", JWTAuthCustomerMiddleware(tokens), AdminOnlyMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	require.Equal(t, http.StatusForbidden, do(r, issue(t, tokens, "c1", utils.RoleCustomer)).Code)
	require.Equal(t, http.StatusNoContent, do(r, issue(t, tokens, "a1", utils.RoleAdmin)).Code)
}

func TestAnonymousOnlyMiddleware(t *testing.T) {
	tokens := memory.NewStore().TokenStore()
	r := gin.New()
	r.GET("/", AnonymousOnlyMiddleware(tokens), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	require.Equal(t, http.StatusNoContent, do(r, "").Code)
	require.Equal(t, http.StatusNoContent, do(r, "stale-or-bogus").Code)
	require.Equal(t, http.StatusForbidden, do(r, issue(t, tokens, "c1", utils.RoleCustomer)).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimitMiddleware(2), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	require.Equal(t, http.StatusNoContent, do(r, "").Code)
	require.Equal(t, http.StatusNoContent, do(r, "").Code)
	require.Equal(t, http.StatusTooManyRequests, do(r, "").Code)
}

func TestGetClientIP(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, getClientIP(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "10.0.0.1", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", " 10.0.0.9 ")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "10.0.0.9", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "192.0.2.7", w.Body.String())
}
