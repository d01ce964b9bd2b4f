package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-dms/internal/dms/seed"
	"github.com/bitfantasy/nimo-dms/internal/dms/service"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const JWTSecret = "nimo-dms-test-secret"

// Today 测试中固定的当前时间
var Today = time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)

// TestEnv holds test environment resources
type TestEnv struct {
	Services *service.Services
	Router   *gin.Engine
	T        *testing.T
}

// SetupServices 创建加载内置演示数据的服务集合，时钟固定为 Today
func SetupServices(t *testing.T, policy store.MissingPolicy) *service.Services {
	t.Helper()
	svc := service.NewServices(service.Options{
		Policy: policy,
		Clock:  func() time.Time { return Today },
	}, zap.NewNop())
	if err := svc.Seed(context.Background(), seed.Builtin()); err != nil {
		t.Fatalf("Failed to seed services: %v", err)
	}
	return svc
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup creates an API group with JWT auth middleware for testing
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret, "nimo-dms"))
}

// GenerateTestToken creates a valid JWT token for testing
func GenerateTestToken(userID, name string, roles []string) string {
	if roles == nil {
		roles = []string{}
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       userID,
		"uid":       userID,
		"name":      name,
		"dealer_id": "DLR-001",
		"roles":     roles,
		"iss":       "nimo-dms",
		"iat":       now.Unix(),
		"exp":       now.Add(24 * time.Hour).Unix(),
		"jti":       fmt.Sprintf("test-jti-%d", now.UnixNano()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// DefaultTestToken returns a token for a sales executive without manager rights
func DefaultTestToken() string {
	return GenerateTestToken("test-user-001", "Test Sales", []string{"dms_sales"})
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response envelope into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
