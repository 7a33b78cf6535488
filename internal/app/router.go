// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/kyhorne/coload/config"
	"github.com/kyhorne/coload/internal/http"
	"github.com/kyhorne/coload/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var auditService service.CheckoutAuditService
	if dbComponents != nil {
		auditService = dbComponents.AuditService
	}

	handler := http.NewHandler(
		services.Validator,
		services.Pricer,
		services.CartBuilder,
		services.CheckoutClient,
		auditService,
		cfg.Pricing.Matrix,
		cfg.Pricing.Limits,
	)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterCircuitBreaker("checkout", services.CheckoutClient.Breaker())
	if dbComponents != nil && dbComponents.DB != nil {
		db := dbComponents.DB
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.HealthCheck(ctx)
		}))
	}

	routerCfg := http.RouterConfig{
		RateLimit:    cfg.Server.RateLimit,
		RateWindow:   cfg.Server.RateWindow,
		CORSOrigins:  cfg.Server.CORSOrigins,
		SwaggerUser:  cfg.Server.SwaggerUser,
		SwaggerPass:  cfg.Server.SwaggerPass,
		AuthEnabled:  cfg.Auth.Enabled,
		JWTSecretKey: cfg.Auth.JWTSecretKey,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
