package storefront

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-tracker/internal/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_Get_ForwardsSessionCookie verifies the session cookie is sent upstream.
func TestClient_Get_ForwardsSessionCookie(t *testing.T) {
	var gotCookie string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	c := NewClient(config.StorefrontConfig{
		URL:            ts.URL,
		SessionCookie:  "session=abc123",
		TimeoutSeconds: 1,
	})

	var out struct {
		OK bool `json:"ok"`
	}
	err := c.Get(context.Background(), "/api/orders/", &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "session=abc123", gotCookie)
}

// TestClient_Get_ErrorMessageFromBody verifies the body "message" field enriches errors.
func TestClient_Get_ErrorMessageFromBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "invalid order id"}`))
	}))
	defer ts.Close()

	c := NewClient(config.StorefrontConfig{URL: ts.URL, TimeoutSeconds: 1})

	err := c.Get(context.Background(), "/api/orders/bad", nil)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid order id", apiErr.Message)
}

// TestClient_Get_GenericErrorWithoutMessage verifies the fallback error text.
func TestClient_Get_GenericErrorWithoutMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	c := NewClient(config.StorefrontConfig{URL: ts.URL, TimeoutSeconds: 1})

	err := c.Get(context.Background(), "/api/orders/", nil)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "request failed")
}

// TestIsNotFound verifies 404 detection through wrapped errors.
func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: http.StatusNotFound, Message: "nope"}))
	assert.False(t, IsNotFound(&APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}))
	assert.False(t, IsNotFound(nil))
}

// TestClient_Post_SendsJSONBody verifies the request body and method.
func TestClient_Post_SendsJSONBody(t *testing.T) {
	var gotMethod, gotBody, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(config.StorefrontConfig{URL: ts.URL, TimeoutSeconds: 1})

	err := c.Post(context.Background(), "/api/track/add", map[string]string{"order_id": "o1"}, nil)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"order_id": "o1"}`, gotBody)
}

// TestClient_ContextCancellation verifies a cancelled context aborts the call.
func TestClient_ContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient(config.StorefrontConfig{URL: ts.URL, TimeoutSeconds: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "/api/orders/", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
