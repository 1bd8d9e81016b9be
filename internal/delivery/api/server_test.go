package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshelf/config"
	apimiddleware "bookshelf/internal/delivery/api/middleware"
	"bookshelf/internal/delivery/api/router"
	"bookshelf/internal/delivery/api/router/handler"
	"bookshelf/internal/delivery/middleware"
	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/infra/metrics"
	"bookshelf/internal/infra/ratelimit"
	mockSvc "bookshelf/internal/mocks/service"
	mockUC "bookshelf/internal/mocks/usecase"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo     *echo.Echo
	authUC   *mockUC.MockAuthUsecase
	bookUC   *mockUC.MockBookUsecase
	tokenSvc *mockSvc.MockTokenService
}

func newServerFixture(t *testing.T, burst int) *serverFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	limiter := ratelimit.New(0.001, burst)
	t.Cleanup(limiter.Stop)

	f := &serverFixture{
		authUC:   mockUC.NewMockAuthUsecase(t),
		bookUC:   mockUC.NewMockBookUsecase(t),
		tokenSvc: mockSvc.NewMockTokenService(t),
	}

	f.echo = newEcho(ServerParams{
		Cfg:               cfg,
		Logger:            logger,
		MetricsMiddleware: middleware.NewMetricsMiddleware(m),
		RouterParams: router.RouterParams{
			AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Logger: logger}),
			BookHandler:         handler.NewBookHandler(handler.BookHandlerParams{BookUC: f.bookUC, Logger: logger}),
			ReviewHandler:       handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: mockUC.NewMockReviewUsecase(t), Logger: logger}),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(f.tokenSvc),
			RateLimitMiddleware: middleware.NewRateLimitMiddleware(limiter, logger),
			Metrics:             m,
			Config:              cfg,
		},
	})

	return f
}

func (f *serverFixture) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthCheck(t *testing.T) {
	f := newServerFixture(t, 5)

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_BooksRequireToken(t *testing.T) {
	f := newServerFixture(t, 5)

	rec := f.do(http.MethodGet, "/api/books/all", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}

func TestServer_AuthenticatedListing(t *testing.T) {
	f := newServerFixture(t, 5)
	userID := uuid.New()

	f.tokenSvc.EXPECT().ValidateToken("token").Return(&service.Claims{UserID: userID, Email: "ana@example.com"}, nil)
	f.bookUC.EXPECT().ListBooks(mock.Anything, usecase.PageInput{Page: 2, Limit: 10}).
		Return(usecase.NewBookPage([]*entity.Book{}, 11, usecase.PageInput{Page: 2, Limit: 10}), nil)

	rec := f.do(http.MethodGet, "/api/books/all?page=2", "", http.Header{
		echo.HeaderAuthorization: []string{"Bearer token"},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"books":[],"total":11,"page":2,"pages":2}`, rec.Body.String())
}

func TestServer_AuthRoutesAreRateLimited(t *testing.T) {
	f := newServerFixture(t, 1)

	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(&usecase.AuthOutput{Token: "signed", User: &entity.User{Username: "ana"}}, nil).Once()

	body := `{"email":"ana@example.com","password":"secret"}`
	first := f.do(http.MethodPost, "/api/auth/login", body, nil)
	second := f.do(http.MethodPost, "/api/auth/login", body, nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "TOO_MANY_REQUESTS")
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t, 5)

	rec := f.do(http.MethodGet, "/api/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	f := newServerFixture(t, 5)

	f.do(http.MethodGet, "/health", "", nil)
	rec := f.do(http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bookshelf_http_requests_total")
}
