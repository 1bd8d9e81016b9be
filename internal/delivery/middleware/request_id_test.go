package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "bookshelf/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, logger *slog.Logger, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/books/all", nil)
	if header != "" {
		req.Header.Set(echo.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")

		return nil
	})(c)
	require.NoError(t, err)

	return c, rec
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	var buf bytes.Buffer
	c, rec := runRequestID(t, slog.New(slog.NewJSONHandler(&buf, nil)), "client-req.42")

	assert.Equal(t, "client-req.42", deliverycontext.GetRequestID(c))
	assert.Equal(t, "client-req.42", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"client-req.42"`)
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, header := range []string{"", "has spaces", "line\nbreak", strings.Repeat("a", maxRequestIDLength+1)} {
		c, rec := runRequestID(t, logger, header)

		id := deliverycontext.GetRequestID(c)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "header %q", header)
		assert.Equal(t, id, rec.Header().Get(echo.HeaderXRequestID))
	}
}
