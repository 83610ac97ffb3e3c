package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authhandler "stock_dashboard/internal/feature/auth/transport/handler"
	companyhandler "stock_dashboard/internal/feature/companies/transport/handler"
	dividendhandler "stock_dashboard/internal/feature/dividends/transport/handler"
	quotehandler "stock_dashboard/internal/feature/quotes/transport/handler"
	jwtmw "stock_dashboard/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestRouter builds the router with handlers whose usecases are never
// reached by these tests.
func newTestRouter(secret string) *gin.Engine {
	return NewRouter(
		authhandler.NewAuthHandler(nil),
		dividendhandler.NewDividendHandler(nil),
		quotehandler.NewQuoteHandler(nil),
		companyhandler.NewCompanyHandler(nil, nil),
		secret,
	)
}

func TestRouter_DashboardPage(t *testing.T) {
	r := newTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<select id=\"kr-year\">")
	assert.Contains(t, body, "/static/app.js")
	// The current year appears in the year selector
	assert.Contains(t, body, time.Now().Format("2006"))
}

func TestRouter_StaticAssets(t *testing.T) {
	r := newTestRouter("test-secret")

	for _, path := range []string{"/static/app.js", "/static/style.css"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotZero(t, w.Body.Len())
		})
	}
}

func TestRouter_Healthz(t *testing.T) {
	r := newTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestRouter_AdminRequiresAuth(t *testing.T) {
	r := newTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/companies/refresh", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminAcceptsValidToken(t *testing.T) {
	gen := jwtmw.NewGenerator("test-secret", time.Hour)
	token, err := gen.GenerateToken(1, "admin@example.com")
	require.NoError(t, err)

	refresh := &stubRefreshUsecase{}
	r := NewRouter(
		authhandler.NewAuthHandler(nil),
		dividendhandler.NewDividendHandler(nil),
		quotehandler.NewQuoteHandler(nil),
		companyhandler.NewCompanyHandler(nil, refresh),
		"test-secret",
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/companies/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, refresh.called)
}

type stubRefreshUsecase struct {
	called bool
}

func (s *stubRefreshUsecase) RefreshDirectory(ctx context.Context) (int, error) {
	s.called = true
	return 42, nil
}
