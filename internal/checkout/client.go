// Package checkout implements the client for the payment provider's
// checkout-session endpoint.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kyhorne/coload/internal/circuitbreaker"
	"github.com/kyhorne/coload/internal/domain/model"
)

// ErrEmptyCart is returned when a session is requested for a cart with
// no billable lines.
var ErrEmptyCart = errors.New("checkout: cart has no items")

// ProviderError is a structured failure returned by the payment
// provider. The status code and message come from the provider's error
// payload; they are logged for the operator, never shown verbatim to
// the end user.
type ProviderError struct {
	StatusCode int
	Message    string
}

// Error returns the error message for ProviderError.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("checkout provider error (status %d): %s", e.StatusCode, e.Message)
}

// sessionResponse is the provider's wire format for both success and
// error payloads.
type sessionResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Option configures a Client.
type Option func(*Client)

// Client creates checkout sessions over HTTP. Calls are wrapped in a
// circuit breaker so a failing provider is shed quickly instead of
// tying up request handlers.
type Client struct {
	endpoint   string
	secretKey  string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a checkout client for the given endpoint.
func NewClient(endpoint, secretKey string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBreaker overrides the circuit breaker.
func WithBreaker(breaker *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = breaker
	}
}

// Breaker exposes the circuit breaker for health reporting.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// CreateSession POSTs the cart to the provider and returns the created
// session. Provider failures are returned as *ProviderError; transport
// faults are returned as-is. Either way the caller's flow stays
// re-enterable.
func (c *Client) CreateSession(ctx context.Context, cart model.Cart) (*model.CheckoutSession, error) {
	if cart.Empty() {
		return nil, ErrEmptyCart
	}

	var session *model.CheckoutSession
	err := c.breaker.Execute(ctx, func() error {
		var execErr error
		session, execErr = c.createSession(ctx, cart)
		return execErr
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Client) createSession(ctx context.Context, cart model.Cart) (*model.CheckoutSession, error) {
	body, err := json.Marshal(cart)
	if err != nil {
		return nil, fmt.Errorf("checkout: encode cart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("checkout: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secretKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.secretKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("checkout: read response: %w", err)
	}

	var decoded sessionResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("checkout: decode response: %w", err)
	}

	// The provider reports failures both via HTTP status and via a
	// statusCode field in the payload.
	if resp.StatusCode >= http.StatusBadRequest || decoded.StatusCode >= http.StatusBadRequest {
		status := decoded.StatusCode
		if status == 0 {
			status = resp.StatusCode
		}
		provErr := &ProviderError{StatusCode: status, Message: decoded.Message}
		log.Error().
			Int("status", status).
			Str("message", decoded.Message).
			Msg("Checkout session rejected by provider")
		return nil, provErr
	}

	if decoded.ID == "" {
		return nil, errors.New("checkout: provider returned no session id")
	}

	return &model.CheckoutSession{ID: decoded.ID, URL: decoded.URL}, nil
}
