package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agency-backend/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() contact.Message {
	return contact.Message{
		ID:          "abc123",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Company:     "Acme <Labs>",
		ProjectType: "mobile-app",
		Message:     "We would like an app for our clinics.",
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewBrevoClientDisabledWithoutConfig(t *testing.T) {
	assert.Nil(t, NewBrevoClient("", "from@example.com", "", "inbox@example.com", false))
	assert.Nil(t, NewBrevoClient("key", "", "", "inbox@example.com", false))
	assert.Nil(t, NewBrevoClient("key", "from@example.com", "", "", false))
}

func TestSendContactNotification(t *testing.T) {
	var received brevoSendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messageId":"<id@brevo>"}`))
	}))
	defer server.Close()

	client := NewBrevoClient("key", "site@example.com", "Website", "hello@example.com", true)
	require.NotNil(t, client)
	client.endpoint = server.URL

	id, err := client.SendContactNotification(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, "<id@brevo>", id)
	require.Len(t, received.To, 1)
	assert.Equal(t, "hello@example.com", received.To[0].Email)
	require.NotNil(t, received.ReplyTo)
	assert.Equal(t, "jane@example.com", received.ReplyTo.Email)
	assert.Equal(t, "drop", received.Headers["X-Sib-Sandbox"])
	assert.Contains(t, received.Subject, "Jane Doe")
	assert.Contains(t, received.HtmlContent, "Acme &lt;Labs&gt;")
}

func TestSendContactNotificationUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewBrevoClient("key", "site@example.com", "", "hello@example.com", false)
	client.endpoint = server.URL

	_, err := client.SendContactNotification(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestNilClient(t *testing.T) {
	var client *BrevoClient
	_, err := client.SendContactNotification(context.Background(), testMessage())
	assert.Error(t, err)
}
