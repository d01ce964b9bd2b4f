package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testSecret = "middleware-test-secret"
	testIssuer = "nimo-dms"
)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, roles []string) string {
	t.Helper()
	return signTokenFrom(t, testIssuer, method, key, roles)
}

func signTokenFrom(t *testing.T, issuer string, method jwt.SigningMethod, key interface{}, roles []string) string {
	t.Helper()
	claims := JWTClaims{
		UserID:   "u-001",
		Name:     "Test Sales",
		DealerID: "DLR-001",
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString("user_id"),
			"dealer_id": c.GetString("dealer_id"),
		})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := newRouter(JWTAuth(testSecret, testIssuer))

	w := get(r, "/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "40100")

	w = get(r, "/ping", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-001"`)
	assert.Contains(t, w.Body.String(), `"dealer_id":"DLR-001"`)

	w = get(r, "/ping", signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/ping", signToken(t, jwt.SigningMethodHS384, []byte(testSecret), nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_Issuer(t *testing.T) {
	foreign := signTokenFrom(t, "nimo-plm", jwt.SigningMethodHS256, []byte(testSecret), nil)

	w := get(newRouter(JWTAuth(testSecret, testIssuer)), "/ping", foreign)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 未配置签发方时不校验
	w = get(newRouter(JWTAuth(testSecret, "")), "/ping", foreign)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_QueryToken(t *testing.T) {
	r := newRouter(JWTAuth(testSecret, testIssuer))
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), nil)

	w := get(r, "/ping?token="+token, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := newRouter(JWTAuth(testSecret, testIssuer), RequireRole("dms_manager"))

	cases := []struct {
		roles []string
		want  int
	}{
		{[]string{"dms_sales"}, http.StatusForbidden},
		{[]string{"dms_sales", "dms_manager"}, http.StatusOK},
		{[]string{"dms_admin"}, http.StatusOK},
		{nil, http.StatusForbidden},
	}
	for _, tc := range cases {
		w := get(r, "/ping", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), tc.roles))
		assert.Equal(t, tc.want, w.Code, "roles %v", tc.roles)
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	w := get(r, "/ping", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	r := newRouter(CORS())
	req := httptest.NewRequest("OPTIONS", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newRouter(Logger(zap.New(core)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	get(r, "/ping", "")
	get(r, "/missing", "")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Request", entries[0].Message)
	assert.Equal(t, "Client error", entries[1].Message)
	assert.Equal(t, int64(http.StatusNotFound), entries[1].ContextMap()["status"])
}

func TestLogger_IncludesClaims(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newRouter(Logger(zap.New(core)), JWTAuth(testSecret, testIssuer))

	get(r, "/ping", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "u-001", fields["user_id"])
	assert.Equal(t, "DLR-001", fields["dealer_id"])
}
