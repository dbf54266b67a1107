package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxi-booking/internal/logging"
)

func newTestSendGrid(baseURL, key string, logs *bytes.Buffer) *SendGridSender {
	return NewSendGridSender(SendGridConfig{
		BaseURL: baseURL,
		APIKey:  func() string { return key },
		Sender:  Recipient{Email: "booking@example.com", Name: "Booking"},
		Admin:   Recipient{Email: "admin@example.com", Name: "Admin"},
	}, nil, logging.NewWithWriter(logs, "info"))
}

func TestSendGridNotifySuccess(t *testing.T) {
	var got *http.Request
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	d := testBooking()
	d.Email = "asha@example.com"

	var logs bytes.Buffer
	ok := newTestSendGrid(server.URL, "sg-key", &logs).Notify(context.Background(), d)

	require.True(t, ok)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v3/mail/send", got.URL.Path)
	assert.Equal(t, "Bearer sg-key", got.Header.Get("Authorization"))
	assert.Equal(t, "New Ride Booking: Airport to Hotel", body["subject"])

	personalizations := body["personalizations"].([]any)
	require.Len(t, personalizations, 1)
	tos := personalizations[0].(map[string]any)["to"].([]any)
	assert.Len(t, tos, 2)
}

func TestSendGridNotifyMissingCredential(t *testing.T) {
	var logs bytes.Buffer
	ok := newTestSendGrid("http://127.0.0.1:1", "", &logs).Notify(context.Background(), testBooking())

	assert.False(t, ok)
	assert.Contains(t, logs.String(), "missing credential")
}

func TestSendGridNotifyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"errors":[{"message":"forbidden"}]}`))
	}))
	defer server.Close()

	var logs bytes.Buffer
	ok := newTestSendGrid(server.URL, "sg-key", &logs).Notify(context.Background(), testBooking())

	assert.False(t, ok)
	assert.Contains(t, logs.String(), "forbidden")
}

func TestSendGridNotifyTimesOut(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	var logs bytes.Buffer
	s := NewSendGridSender(SendGridConfig{
		BaseURL: server.URL,
		APIKey:  func() string { return "sg-key" },
		Admin:   Recipient{Email: "admin@example.com", Name: "Admin"},
		Timeout: 50 * time.Millisecond,
	}, nil, logging.NewWithWriter(&logs, "info"))

	start := time.Now()
	ok := s.Notify(context.WithoutCancel(context.Background()), testBooking())

	assert.False(t, ok)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Contains(t, logs.String(), "network error")
}
