// Package config provides configuration management for the coload service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/kyhorne/coload/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Checkout CheckoutConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	// ShutdownTimeout bounds the graceful drain on SIGTERM. Keep it
	// below the orchestrator's kill grace period.
	ShutdownTimeout time.Duration
	LogLevel        string
	LogPretty       bool
	RateLimit       int
	RateWindow      time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
}

// PricingConfig holds the rate table and validation limits. The matrix
// is selected once at load time from APP_ENV; the calculators receive
// it by injection and never read the environment themselves.
type PricingConfig struct {
	Environment string
	Matrix      model.PriceMatrix
	Limits      model.PricingLimits
}

// CheckoutConfig holds the payment provider collaborator configuration.
type CheckoutConfig struct {
	// EndpointURL is the provider's create-checkout-session endpoint.
	EndpointURL string
	// SecretKey authenticates this service to the provider.
	SecretKey string
	// Timeout bounds the collaborator round trip.
	Timeout time.Duration
	// Circuit breaker settings for the collaborator call.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds the auth collaborator configuration. The service
// only verifies tokens issued elsewhere.
type AuthConfig struct {
	Enabled      bool
	JWTSecretKey string
}

// DatabaseConfig holds MongoDB configuration for the checkout audit trail.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
}

// Load creates a Config from the environment. A .env file in the
// working directory is read first when present.
func Load() Config {
	_ = godotenv.Load()

	environment := getEnv("APP_ENV", "development")

	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			LogPretty:       getEnvBool("LOG_PRETTY", environment == "development"),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		Pricing: PricingConfig{
			Environment: environment,
			Matrix:      priceMatrix(environment),
			Limits: model.PricingLimits{
				MaxInput:        getEnvFloat("MAX_INPUT", 10000),
				MinSealedVolume: getEnvFloat("MIN_SEALED_VOLUME", 550),
				MinSealedPrice: map[model.Term]float64{
					model.TermMonthly: getEnvFloat("MIN_MONTHLY_SEALED_PRICE", 3),
					model.TermYearly:  getEnvFloat("MIN_YEARLY_SEALED_PRICE", 30),
				},
			},
		},
		Checkout: CheckoutConfig{
			EndpointURL:                    getEnv("CHECKOUT_ENDPOINT_URL", "https://api.stripe.com/v1/checkout/sessions"),
			SecretKey:                      getEnv("CHECKOUT_SECRET_KEY", ""),
			Timeout:                        getEnvDuration("CHECKOUT_TIMEOUT", 15*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "coload"),
			LogsTTL:      getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
		},
	}
}

// priceMatrix returns the environment's rate table. Development and
// production point at distinct product references at the payment
// provider; unit prices are the same. Yearly rates carry the bulk
// discount (10x monthly, not 12x).
func priceMatrix(environment string) model.PriceMatrix {
	if environment == "development" {
		return model.PriceMatrix{
			model.TermMonthly: {
				model.CategoryRaw:     {ProductRef: "price_1J50FiLaNzAt04pey0bvgYK3", UnitPrice: 0.7},
				model.CategorySlabbed: {ProductRef: "price_1J50EGLaNzAt04pe1WWIS6JE", UnitPrice: 1},
				model.CategorySealed:  {ProductRef: "price_1J59XmLaNzAt04pejLMrJpys", UnitPrice: 0.0025},
			},
			model.TermYearly: {
				model.CategoryRaw:     {ProductRef: "price_1J50GRLaNzAt04peS9wBCpzV", UnitPrice: 7},
				model.CategorySlabbed: {ProductRef: "price_1J50GvLaNzAt04peBRAn2CFc", UnitPrice: 10},
				model.CategorySealed:  {ProductRef: "price_1J59ceLaNzAt04pedGHrC09U", UnitPrice: 0.025},
			},
		}
	}

	return model.PriceMatrix{
		model.TermMonthly: {
			model.CategoryRaw:     {ProductRef: "price_1J4vEeLaNzAt04peroSwdckq", UnitPrice: 0.7},
			model.CategorySlabbed: {ProductRef: "price_1J5Go0LaNzAt04pe6UY60G6z", UnitPrice: 1},
			model.CategorySealed:  {ProductRef: "price_1J5GpULaNzAt04peIx6NzC3k", UnitPrice: 0.0025},
		},
		model.TermYearly: {
			model.CategoryRaw:     {ProductRef: "price_1J5GmuLaNzAt04peuzokm58V", UnitPrice: 7},
			model.CategorySlabbed: {ProductRef: "price_1J5GnULaNzAt04pex3Cr60o4", UnitPrice: 10},
			model.CategorySealed:  {ProductRef: "price_1J5GqTLaNzAt04pevYwcLb7X", UnitPrice: 0.025},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development of the marketing site.
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
