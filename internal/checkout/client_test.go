package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyhorne/coload/internal/circuitbreaker"
	"github.com/kyhorne/coload/internal/domain/model"
)

func testCart() model.Cart {
	return model.Cart{Items: []model.CartItem{
		{Quantity: 20, ProductRef: "price_raw_m"},
		{Quantity: 300, ProductRef: "price_seal_m"},
	}}
}

// TestClientCreateSession tests the happy path against a fake provider.
func TestClientCreateSession(t *testing.T) {
	var gotAuth string
	var gotCart model.Cart

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCart))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":  "cs_test_abc",
			"url": "https://pay.example.com/cs_test_abc",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")

	session, err := client.CreateSession(context.Background(), testCart())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_abc", session.ID)
	assert.Equal(t, "https://pay.example.com/cs_test_abc", session.URL)
	assert.Equal(t, "Bearer sk_test_key", gotAuth)
	assert.Equal(t, testCart(), gotCart)
}

// TestClientCreateSessionEmptyCart tests the empty-cart short circuit.
func TestClientCreateSessionEmptyCart(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")

	session, err := client.CreateSession(context.Background(), model.Cart{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, session)
	assert.False(t, called, "an empty cart must never reach the provider")
}

// TestClientCreateSessionProviderErrors tests the two failure shapes the
// provider uses: HTTP status and a statusCode field in the payload.
func TestClientCreateSessionProviderErrors(t *testing.T) {
	tests := []struct {
		name           string
		httpStatus     int
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "http error status",
			httpStatus:     http.StatusInternalServerError,
			body:           map[string]interface{}{"message": "boom"},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "error in payload with 200 status",
			httpStatus:     http.StatusOK,
			body:           map[string]interface{}{"statusCode": 402, "message": "card declined"},
			expectedStatus: 402,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.httpStatus)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL, "sk_test_key")

			session, err := client.CreateSession(context.Background(), testCart())
			assert.Nil(t, session)

			var provErr *ProviderError
			require.ErrorAs(t, err, &provErr)
			assert.Equal(t, tt.expectedStatus, provErr.StatusCode)
		})
	}
}

// TestClientCreateSessionNoSessionID tests rejection of a success payload
// without a session id.
func TestClientCreateSessionNoSessionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/x"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")

	session, err := client.CreateSession(context.Background(), testCart())
	assert.Error(t, err)
	assert.Nil(t, session)
}

// TestClientCircuitBreaker tests that repeated provider failures open
// the breaker and shed subsequent calls.
func TestClientCircuitBreaker(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "down"})
	}))
	defer server.Close()

	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "checkout-test",
	})
	client := NewClient(server.URL, "sk_test_key", WithBreaker(breaker))

	for i := 0; i < 2; i++ {
		_, err := client.CreateSession(context.Background(), testCart())
		assert.Error(t, err)
	}
	assert.True(t, breaker.IsOpen())

	_, err := client.CreateSession(context.Background(), testCart())
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 2, calls, "open breaker must not reach the provider")
}

// TestClientContextCancellation tests that a cancelled context aborts
// the request.
func TestClientContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.CreateSession(ctx, testCart())
	assert.Error(t, err)
}
