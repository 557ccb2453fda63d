package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelagency/internal/utils"

	"github.com/gin-gonic/gin"
)

func newAuthEngine(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", RequireAuth(secret), func(c *gin.Context) {
		rc := RequestContextFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": rc.UserID, "role": rc.Role})
	})
	r.GET("/admin", RequireAuth(secret), RequireRoles("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	secret := []byte("s3cret")
	r := newAuthEngine(secret)

	if w := doRequest(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d", w.Code)
	}
	if w := doRequest(r, "/me", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d", w.Code)
	}

	tok, _ := utils.GenerateToken(secret, 7, "user", time.Hour)
	w := doRequest(r, "/me", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d body %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
}

func TestRequireRoles(t *testing.T) {
	secret := []byte("s3cret")
	r := newAuthEngine(secret)

	userTok, _ := utils.GenerateToken(secret, 7, "user", time.Hour)
	if w := doRequest(r, "/admin", userTok); w.Code != http.StatusForbidden {
		t.Fatalf("user on admin route: status %d", w.Code)
	}
	adminTok, _ := utils.GenerateToken(secret, 1, "Admin", time.Hour)
	if w := doRequest(r, "/admin", adminTok); w.Code != http.StatusNoContent {
		t.Fatalf("admin on admin route: status %d", w.Code)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "abc-123" {
		t.Fatalf("request id = %q", w.Body.String())
	}
}
