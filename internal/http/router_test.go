package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-front/internal/api"
	"finance-front/internal/domain"
	"finance-front/internal/service"
	"finance-front/web"
)

type routerFixture struct {
	router   *gin.Engine
	mock     *api.Mock
	sessions *service.SessionService
	store    service.TokenStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templates, err := web.Templates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	mock := api.NewMock()
	store := service.NewMemoryTokenStore()
	sessions := service.NewSessionService(zap.NewNop(), mock, store, time.Hour)
	cookies := CookieOptions{MaxAge: 3600}

	authH := NewAuthHandler(zap.NewNop(), sessions, cookies)
	dashH := NewDashboardHandler(zap.NewNop(), sessions, mock, mock.Txs(), cookies)
	accountH := NewAccountHandler(zap.NewNop(), sessions, mock, cookies)
	transactionH := NewTransactionHandler(zap.NewNop(), sessions, mock, mock.Txs(), cookies)

	return &routerFixture{
		router:   NewRouter(zap.NewNop(), sessions, templates, authH, dashH, accountH, transactionH),
		mock:     mock,
		sessions: sessions,
		store:    store,
	}
}

// signIn deja una sesión válida lista para usar y devuelve su sid.
func (f *routerFixture) signIn(t *testing.T) string {
	t.Helper()
	f.mock.SeedUser(domain.User{
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     "ana@example.com",
		Enabled:   true,
	}, "secret99")
	f.mock.SeedToken("T", "ana@example.com")
	if err := f.store.Store("sid-1", "T", time.Hour); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return "sid-1"
}

func (f *routerFixture) get(path, sid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sid})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *routerFixture) postForm(path, sid string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sid})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
