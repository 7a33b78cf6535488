// Package app provides service initialization.
package app

import (
	"net/http"

	"github.com/kyhorne/coload/config"
	"github.com/kyhorne/coload/internal/checkout"
	"github.com/kyhorne/coload/internal/circuitbreaker"
	"github.com/kyhorne/coload/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Validator      *service.Validator
	Pricer         service.PriceCalculator
	CartBuilder    *service.CartBuilder
	CheckoutClient *checkout.Client
}

// InitializeServices initializes the pricing engine and the checkout
// provider client.
func InitializeServices(cfg config.Config) *ServiceComponents {
	validator := service.NewValidator(cfg.Pricing.Limits)

	pricer := service.NewPricingService(
		service.WithMatrix(cfg.Pricing.Matrix),
		service.WithLimits(cfg.Pricing.Limits),
	)

	cartBuilder := service.NewCartBuilder(cfg.Pricing.Matrix, pricer)

	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Checkout.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Checkout.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Checkout.CircuitBreakerTimeout,
		Name:             "checkout",
	})

	client := checkout.NewClient(
		cfg.Checkout.EndpointURL,
		cfg.Checkout.SecretKey,
		checkout.WithHTTPClient(&http.Client{Timeout: cfg.Checkout.Timeout}),
		checkout.WithBreaker(breaker),
	)

	return &ServiceComponents{
		Validator:      validator,
		Pricer:         pricer,
		CartBuilder:    cartBuilder,
		CheckoutClient: client,
	}
}
