package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RequestLifecycle(t *testing.T) {
	m := New()

	done := m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpInFlight))

	done(http.MethodGet, "/api/books/all", "200", 20*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/books/all", "200")))
}

func TestMetrics_ObserveReviewMutation(t *testing.T) {
	m := New()

	m.ObserveReviewMutation("add", nil)
	m.ObserveReviewMutation("add", nil)
	m.ObserveReviewMutation("delete", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reviewMutations.WithLabelValues("add", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reviewMutations.WithLabelValues("delete", "error")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveReviewMutation("update", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bookshelf_reviews_mutations_total")
}
