package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	limiter := newVisitorLimiter(1, 3)

	// Create a simple handler that returns 200 OK
	handler := limiter.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/bill", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	// 1 request per second with a burst of 3
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest("192.0.2.1:1234"), "request %d", i+1)
	}

	// Same host from another port shares the bucket
	assert.Equal(t, http.StatusTooManyRequests, doRequest("192.0.2.1:5678"))

	// Another visitor is unaffected
	assert.Equal(t, http.StatusOK, doRequest("192.0.2.2:1234"))

	time.Sleep(1 * time.Second)
	assert.Equal(t, http.StatusOK, doRequest("192.0.2.1:1234"), "bucket refills")
}

func TestNewVisitorLimiterDefaults(t *testing.T) {
	limiter := newVisitorLimiter(0, 0)

	assert.Equal(t, 1, limiter.burst)
	assert.EqualValues(t, 1, limiter.limit)
}
