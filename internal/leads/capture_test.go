package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

func TestMemoryCapturer(t *testing.T) {
	c := NewMemoryCapturer()

	r, err := c.Capture(context.Background(), "Asha", "asha@example.com", "YouTube")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "success", r.Status)
	assert.False(t, r.CapturedAt.IsZero())

	receipts := c.Receipts()
	require.Len(t, receipts, 1)
	assert.Equal(t, r.ID, receipts[0].ID)
}

func TestCaptureValidatesFields(t *testing.T) {
	c := NewMemoryCapturer()

	cases := []struct {
		name, email, platform string
		wantField             string
	}{
		{"", "asha@example.com", "YouTube", "name"},
		{"Asha", "", "YouTube", "email"},
		{"Asha", "asha@example.com", "", "platform"},
	}
	for _, tc := range cases {
		_, err := c.Capture(context.Background(), tc.name, tc.email, tc.platform)
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, tc.wantField, verr.Field)
	}
	assert.Empty(t, c.Receipts())
}

func TestWebhookCapturerPostsReceipt(t *testing.T) {
	var got model.Receipt
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewWebhookCapturer(srv.URL)
	r, err := c.Capture(context.Background(), "Asha", "asha@example.com", "YouTube")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "Asha", got.Name)
}

func TestWebhookCapturerNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWebhookCapturer(srv.URL)
	_, err := c.Capture(context.Background(), "Asha", "asha@example.com", "YouTube")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
