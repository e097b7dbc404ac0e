package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/api/handler"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/auth"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/config"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/notify"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:        "development",
		UserName:      "Ruu",
		UserPassword:  "ruupass",
		AdminName:     "Aditya",
		AdminPassword: "adminpass",
		SessionSecret: "test-secret",
	}
}

// newTestEnv builds a full router with real auth, an empty notification
// dispatcher and a mocked storage.
func newTestEnv(t *testing.T) (*gin.Engine, *MockStorage, *auth.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	store := new(MockStorage)
	authSvc := auth.NewService(cfg)

	h := handler.NewHandler(store, authSvc, notify.NewDispatcher(cfg), cfg)

	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")
	h.RegisterRoutes(r)

	return r, store, authSvc
}

func sessionCookie(t *testing.T, authSvc *auth.Service, role auth.Role) *http.Cookie {
	t.Helper()
	token, err := authSvc.IssueToken(role)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func hasCookie(w *httptest.ResponseRecorder, name string) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == name && c.Value != "" && c.MaxAge >= 0 {
			return true
		}
	}
	return false
}
