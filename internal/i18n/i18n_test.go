package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestTranslate tests message lookup and fallbacks.
func TestTranslate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      ErrKeyLoginRequired,
			locale:   "en",
			expected: "Sign in to start a subscription",
		},
		{
			name:     "portuguese message",
			key:      ErrKeyEmptyCart,
			locale:   "pt",
			expected: "Nada para assinar ainda",
		},
		{
			name:     "dutch message",
			key:      ErrKeyCheckoutFailed,
			locale:   "nl",
			expected: "Betaling kon niet worden gestart, probeer opnieuw",
		},
		{
			name:     "unknown locale falls back to english",
			key:      ErrKeyInvalidRequest,
			locale:   "fr",
			expected: "Invalid request",
		},
		{
			name:     "empty locale falls back to english",
			key:      ErrKeyInvalidRequest,
			locale:   "",
			expected: "Invalid request",
		},
		{
			name:     "unknown key returns the key",
			key:      "error.nope",
			locale:   "en",
			expected: "error.nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

// TestGetLocale tests Accept-Language parsing.
func TestGetLocale(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "en"},
		{name: "simple", header: "pt", expected: "pt"},
		{name: "region variant", header: "pt-BR", expected: "pt"},
		{name: "weighted list", header: "nl-NL,nl;q=0.9,en;q=0.8", expected: "nl"},
		{name: "unsupported language", header: "de-DE", expected: "en"},
		{name: "uppercase", header: "PT", expected: "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

// TestGetTranslatorSingleton tests that the default translator is reused.
func TestGetTranslatorSingleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}
