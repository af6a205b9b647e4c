package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/buildtrack/internal/config"
)

func TestSendText(t *testing.T) {
	var got textMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v20.0/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(config.WhatsAppConfig{AccessToken: "token", PhoneNumberID: "12345", BaseURL: srv.URL + "/", APIVersion: "v20.0"})

	id, err := c.SendText(context.Background(), "224600000000", "Low stock: Sand")
	require.NoError(t, err)
	assert.Equal(t, "wamid.1", id)
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "224600000000", got.To)
	assert.Equal(t, "Low stock: Sand", got.Text.Body)
}

func TestSendTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid parameter","code":100}}`))
	}))
	defer srv.Close()

	c := NewClient(config.WhatsAppConfig{AccessToken: "token", PhoneNumberID: "1", BaseURL: srv.URL, APIVersion: "v20.0"})

	_, err := c.SendText(context.Background(), "2246", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=100")
	assert.Contains(t, err.Error(), "Invalid parameter")
}

func TestSendTextRequiresRecipient(t *testing.T) {
	c := NewClient(config.WhatsAppConfig{BaseURL: "http://unused", APIVersion: "v20.0"})

	_, err := c.SendText(context.Background(), "", "hello")
	assert.Error(t, err)
}
